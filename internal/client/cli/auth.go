package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/services"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
	"github.com/dmitrijs2005/travelmate/internal/common"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getConfirm = GetConfirm

// errMsg translates an operation error into a user-facing localized message.
// Validation sentinels and connectivity errors map to dictionary keys; a
// server-provided message is shown as-is.
func (a *App) errMsg(err error, fallbackKey string) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return a.lang.T("server_connection_error")
	case errors.Is(err, services.ErrFieldRequired):
		return a.lang.T("field_required")
	case errors.Is(err, services.ErrPasswordMismatch):
		return a.lang.T("passwords_do_not_match")
	case errors.Is(err, services.ErrPasswordTooShort):
		return a.lang.T("password_too_short")
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return a.lang.T(fallbackKey) + ": " + err.Error()
}

// Login prompts for credentials and authenticates against the backend.
//
// The email prompt is prefilled with the remembered address when one exists;
// submitting an empty line accepts it. On success the auth service persists
// the session and every mounted view repaints through the store notifier.
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	saved := a.store.Get(ctx, session.KeySavedEmail)
	prompt := a.lang.T("email_address")
	if saved != "" {
		prompt = fmt.Sprintf("%s [%s]", prompt, saved)
	}

	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = saved
	}

	password, err := getPassword(a.lang.T("password"), os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rememberMe, err := getConfirm(a.reader, a.lang.T("remember_me"), os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, email, password, rememberMe); err != nil {
		fmt.Println(a.errMsg(err, "login_failed"))
		return err
	}

	fmt.Println(a.lang.T("login_success"))
	return nil
}

// Register prompts for the signup fields and creates a new account.
//
// Passwords are validated locally first: a mismatch or a too-short password
// is reported without any request leaving the client. On success the user is
// told to log in; nothing is persisted.
func (a *App) Register(ctx context.Context) error {
	fullname, err := getSimpleText(a.reader, a.lang.T("fullname"), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, a.lang.T("email_address"), os.Stdout)
	if err != nil {
		return err
	}
	phone, err := getSimpleText(a.reader, a.lang.T("phone"), os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(a.lang.T("password"), os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.lang.T("confirm_password"), os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.authService.Register(ctx, fullname, email, phone, password, confirm); err != nil {
		fmt.Println(a.errMsg(err, "signup_failed"))
		return err
	}

	fmt.Println(a.lang.T("signup_success"))
	return nil
}

// resetStep enumerates the two stages of the forgot-password flow.
type resetStep int

const (
	stepRequestCode resetStep = iota
	stepVerifyAndReset
	stepDone
)

// ForgotPassword walks the two-step reset flow: request a code for an email
// address, then submit the code with a new password. The flow always starts
// from the first step; an empty input or an error abandons it, and the next
// invocation starts clean. A successful reset drops into the login prompt.
func (a *App) ForgotPassword(ctx context.Context) error {
	step := stepRequestCode
	var email string

	for step != stepDone {
		switch step {
		case stepRequestCode:
			var err error
			email, err = getSimpleText(a.reader, a.lang.T("forgot_password_instruction"), os.Stdout)
			if err != nil {
				return err
			}
			if email == "" {
				fmt.Println(a.lang.T("cancel"))
				return nil
			}

			message, code, err := a.authService.RequestResetCode(ctx, email)
			if err != nil {
				fmt.Println(a.errMsg(err, "reset_code_failed"))
				return err
			}
			if message != "" {
				fmt.Println(message)
			}
			if code != "" {
				fmt.Println(a.lang.T("reset_code") + ": " + code)
			}
			step = stepVerifyAndReset

		case stepVerifyAndReset:
			code, err := getSimpleText(a.reader, a.lang.T("reset_code"), os.Stdout)
			if err != nil {
				return err
			}
			if code == "" {
				fmt.Println(a.lang.T("cancel"))
				return nil
			}

			newPassword, err := getPassword(a.lang.T("new_password"), os.Stdout)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(newPassword)

			confirm, err := getPassword(a.lang.T("confirm_new_password"), os.Stdout)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(confirm)

			if err := a.authService.ResetPassword(ctx, email, code, newPassword, confirm); err != nil {
				fmt.Println(a.errMsg(err, "reset_failed"))
				return err
			}

			fmt.Println(a.lang.T("reset_success"))
			step = stepDone
		}
	}

	return a.Login(ctx)
}

// Logout asks for confirmation, then clears the authenticated identity. The
// remembered email survives so the next login is prefilled.
func (a *App) Logout(ctx context.Context) error {
	confirmed, err := getConfirm(a.reader, a.lang.T("logout_confirm"), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println(a.lang.T("logout_success"))
	return nil
}
