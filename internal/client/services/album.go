package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/models"
	"github.com/dmitrijs2005/travelmate/internal/client/repositories/albums"
	"github.com/dmitrijs2005/travelmate/internal/logging"
)

// AlbumService manages the user's photo albums against the remote API, with
// a local read cache so the last fetched list survives the server being
// unreachable.
type AlbumService interface {
	// List returns the albums, fromCache=true when served from the local
	// cache because the server could not be reached.
	List(ctx context.Context) (list []models.Album, fromCache bool, err error)
	Create(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	ListImages(ctx context.Context, album string) ([]models.AlbumImage, error)
	// AddImage uploads the image file at path into the album.
	AddImage(ctx context.Context, album, path string) error
	DeleteImage(ctx context.Context, album, imageID string) error
}

type albumService struct {
	client api.Client
	cache  albums.Repository
	log    logging.Logger
}

func NewAlbumService(client api.Client, cache albums.Repository, log logging.Logger) AlbumService {
	return &albumService{client: client, cache: cache, log: log}
}

func (s *albumService) List(ctx context.Context) ([]models.Album, bool, error) {
	list, err := s.client.ListAlbums(ctx)
	if err == nil {
		// cache refresh is best-effort
		if cerr := s.cache.Replace(ctx, list); cerr != nil {
			s.log.Warn(ctx, "album cache refresh failed", "error", cerr)
		}
		return list, false, nil
	}

	if errors.Is(err, api.ErrUnavailable) {
		cached, cerr := s.cache.GetAll(ctx)
		if cerr == nil && len(cached) > 0 {
			return cached, true, nil
		}
	}
	return nil, false, err
}

func (s *albumService) Create(ctx context.Context, name string) error {
	if name == "" {
		return ErrFieldRequired
	}
	return s.client.CreateAlbum(ctx, name)
}

func (s *albumService) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrFieldRequired
	}
	if err := s.client.DeleteAlbum(ctx, name); err != nil {
		return err
	}
	if cerr := s.cache.Delete(ctx, name); cerr != nil {
		s.log.Warn(ctx, "album cache delete failed", "album", name, "error", cerr)
	}
	return nil
}

func (s *albumService) ListImages(ctx context.Context, album string) ([]models.AlbumImage, error) {
	if album == "" {
		return nil, ErrFieldRequired
	}
	return s.client.ListImages(ctx, album)
}

func (s *albumService) AddImage(ctx context.Context, album, path string) error {
	if album == "" || path == "" {
		return ErrFieldRequired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.client.UploadImage(ctx, album, filepath.Base(path), data)
}

func (s *albumService) DeleteImage(ctx context.Context, album, imageID string) error {
	if album == "" || imageID == "" {
		return ErrFieldRequired
	}
	return s.client.DeleteImage(ctx, album, imageID)
}
