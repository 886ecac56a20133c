package cli

import (
	"context"
	"fmt"
	"os"
)

// Albums lists the user's photo albums. When the server is unreachable the
// list comes from the local cache and a notice says so.
func (a *App) Albums(ctx context.Context) error {
	list, fromCache, err := a.albumService.List(ctx)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}

	fmt.Println(a.lang.T("my_albums"))
	if fromCache {
		fmt.Println(a.lang.T("album_cached"))
	}
	if len(list) == 0 {
		fmt.Println(a.lang.T("no_results"))
		return nil
	}
	for _, album := range list {
		fmt.Printf("  %s (%d)\n", album.Name, album.ImageCount)
	}
	return nil
}

// NewAlbum prompts for a name and creates an empty album.
func (a *App) NewAlbum(ctx context.Context) error {
	name, err := getSimpleText(a.reader, a.lang.T("album_name"), os.Stdout)
	if err != nil {
		return err
	}
	if err := a.albumService.Create(ctx, name); err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	fmt.Println(a.lang.T("success"))
	return nil
}

// DeleteAlbum prompts for a name, asks for confirmation, and deletes the
// album together with its cached entry.
func (a *App) DeleteAlbum(ctx context.Context) error {
	name, err := getSimpleText(a.reader, a.lang.T("album_name"), os.Stdout)
	if err != nil {
		return err
	}

	confirmed, err := getConfirm(a.reader, a.lang.T("delete_album"), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.albumService.Delete(ctx, name); err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	fmt.Println(a.lang.T("success"))
	return nil
}

// Images prompts for an album name and lists its images with their ids, so
// a specific image can be addressed by delimage.
func (a *App) Images(ctx context.Context) error {
	album, err := getSimpleText(a.reader, a.lang.T("album_name"), os.Stdout)
	if err != nil {
		return err
	}

	images, err := a.albumService.ListImages(ctx, album)
	if err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}

	fmt.Println(a.lang.T("all_images"))
	if len(images) == 0 {
		fmt.Println(a.lang.T("no_results"))
		return nil
	}
	for _, img := range images {
		fmt.Printf("  %s  %s", img.ID, img.Filename)
		if img.Landmark != "" {
			fmt.Printf("  (%s)", img.Landmark)
		}
		fmt.Println()
	}
	return nil
}

// AddImage prompts for an album name and a local file path and uploads the
// image into the album.
func (a *App) AddImage(ctx context.Context) error {
	album, err := getSimpleText(a.reader, a.lang.T("album_name"), os.Stdout)
	if err != nil {
		return err
	}
	path, err := getSimpleText(a.reader, a.lang.T("upload_image"), os.Stdout)
	if err != nil {
		return err
	}

	if err := a.albumService.AddImage(ctx, album, path); err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	fmt.Println(a.lang.T("success"))
	return nil
}

// DeleteImage prompts for an album name and an image id and removes that
// image from the album.
func (a *App) DeleteImage(ctx context.Context) error {
	album, err := getSimpleText(a.reader, a.lang.T("album_name"), os.Stdout)
	if err != nil {
		return err
	}
	imageID, err := getSimpleText(a.reader, a.lang.T("all_images"), os.Stdout)
	if err != nil {
		return err
	}

	if err := a.albumService.DeleteImage(ctx, album, imageID); err != nil {
		fmt.Println(a.errMsg(err, "error"))
		return err
	}
	fmt.Println(a.lang.T("success"))
	return nil
}
