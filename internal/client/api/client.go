package api

import (
	"context"

	"github.com/dmitrijs2005/travelmate/internal/client/models"
)

// Client is the remote travel-service surface the travelmate client consumes.
// Every call is a single attempt; there is no retry policy at this layer.
//
// Implementations must map transport failures to ErrUnavailable, HTTP 401 to
// ErrUnauthorized, and API-level failures (success=false) to *Error carrying
// the server-supplied message.
type Client interface {
	Login(ctx context.Context, email string, password []byte) (token string, err error)
	Register(ctx context.Context, fullname, email, phone string, password []byte) error
	RequestResetCode(ctx context.Context, email string) (message, resetCode string, err error)
	ResetPassword(ctx context.Context, email, resetCode string, newPassword []byte) error

	ListAlbums(ctx context.Context) ([]models.Album, error)
	CreateAlbum(ctx context.Context, name string) error
	DeleteAlbum(ctx context.Context, name string) error
	ListImages(ctx context.Context, album string) ([]models.AlbumImage, error)
	UploadImage(ctx context.Context, album, filename string, image []byte) error
	DeleteImage(ctx context.Context, album, imageID string) error

	RecommendByInterest(ctx context.Context, interest string) ([]models.Destination, error)
	RecommendNearby(ctx context.Context, lat, lon, radius float64) ([]models.Destination, error)
	RecommendAI(ctx context.Context, interest string) ([]models.Destination, error)
	RecognizeLandmark(ctx context.Context, filename string, image []byte) (*models.Recognition, error)

	Chat(ctx context.Context, sessionID, message string) (reply string, err error)
}

// TokenSource supplies the current auth token for outbound requests.
// An empty string means the request goes out unauthenticated.
type TokenSource func() string
