package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/travelmate/internal/client/i18n"
)

// Language switches the interface language. Unknown codes are rejected and
// the current selection stays in effect; valid codes persist across restarts
// and repaint every mounted view.
func (a *App) Language(ctx context.Context, code string) error {
	if err := a.lang.SetLanguage(ctx, code); err != nil {
		if errors.Is(err, i18n.ErrUnknownLocale) {
			fmt.Printf("%s: %s (%s)\n", a.lang.T("language"), code,
				strings.Join(a.lang.Supported(), ", "))
			return nil
		}
		return err
	}
	return nil
}
