package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/travelmate/internal/client/session"
)

// Profile shows the stored profile values and lets the user update the
// display name. An empty input keeps the current name.
func (a *App) Profile(ctx context.Context) error {
	snap := a.store.Snapshot(ctx)

	fmt.Println(a.lang.T("my_profile"))
	fmt.Printf("%s: %s\n", a.lang.T("fullname"), snap.Name)
	fmt.Printf("%s: %s\n", a.lang.T("email"), snap.Email)

	name, err := getSimpleText(a.reader, a.lang.T("update_profile"), os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		a.store.Set(ctx, session.KeyUserName, name)
		fmt.Println(a.lang.T("success"))
	}
	return nil
}

// Avatar reads an image file and stores it as a data URI. Mounted views swap
// their menu icon for the avatar marker on the next repaint.
func (a *App) Avatar(ctx context.Context) error {
	path, err := getSimpleText(a.reader, a.lang.T("upload_image"), os.Stdout)
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(a.lang.T("cancel"))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("%s: %s\n", a.lang.T("error"), err.Error())
		return err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	uri := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	a.store.Set(ctx, session.KeyUserAvatar, uri)
	fmt.Println(a.lang.T("success"))
	return nil
}
