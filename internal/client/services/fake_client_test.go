package services

import (
	"context"
	"log/slog"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/models"
	"github.com/dmitrijs2005/travelmate/internal/client/repositories/settings"
	"github.com/dmitrijs2005/travelmate/internal/client/session"
	"github.com/dmitrijs2005/travelmate/internal/logging"
)

// fakeClient records calls and returns canned results; tests can stub
// individual behaviors per field.
type fakeClient struct {
	calls []string

	loginToken string
	loginErr   error

	registerErr error

	resetMessage string
	resetCode    string
	resetReqErr  error
	resetErr     error

	albums     []models.Album
	albumsErr  error
	createErr  error
	deleteErr  error
	images     []models.AlbumImage
	imagesErr  error
	uploadErr  error
	delImgErr  error

	lastUploadAlbum    string
	lastUploadFilename string
	recommends []models.Destination
	recErr     error
	recog      *models.Recognition
	recogErr   error
	chatReply  string
	chatErr    error

	lastChatSession string
}

func (f *fakeClient) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeClient) Login(_ context.Context, email string, _ []byte) (string, error) {
	f.record("login")
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, fullname, email, phone string, _ []byte) error {
	f.record("register")
	return f.registerErr
}

func (f *fakeClient) RequestResetCode(_ context.Context, email string) (string, string, error) {
	f.record("request-reset")
	return f.resetMessage, f.resetCode, f.resetReqErr
}

func (f *fakeClient) ResetPassword(_ context.Context, email, code string, _ []byte) error {
	f.record("reset-password")
	return f.resetErr
}

func (f *fakeClient) ListAlbums(_ context.Context) ([]models.Album, error) {
	f.record("list-albums")
	return f.albums, f.albumsErr
}

func (f *fakeClient) CreateAlbum(_ context.Context, name string) error {
	f.record("create-album")
	return f.createErr
}

func (f *fakeClient) DeleteAlbum(_ context.Context, name string) error {
	f.record("delete-album")
	return f.deleteErr
}

func (f *fakeClient) ListImages(_ context.Context, album string) ([]models.AlbumImage, error) {
	f.record("list-images")
	return f.images, f.imagesErr
}

func (f *fakeClient) UploadImage(_ context.Context, album, filename string, _ []byte) error {
	f.record("upload-image")
	f.lastUploadAlbum, f.lastUploadFilename = album, filename
	return f.uploadErr
}

func (f *fakeClient) DeleteImage(_ context.Context, album, imageID string) error {
	f.record("delete-image")
	return f.delImgErr
}

func (f *fakeClient) RecommendByInterest(_ context.Context, interest string) ([]models.Destination, error) {
	f.record("recommend-interest")
	return f.recommends, f.recErr
}

func (f *fakeClient) RecommendNearby(_ context.Context, lat, lon, radius float64) ([]models.Destination, error) {
	f.record("recommend-nearby")
	return f.recommends, f.recErr
}

func (f *fakeClient) RecommendAI(_ context.Context, interest string) ([]models.Destination, error) {
	f.record("recommend-ai")
	return f.recommends, f.recErr
}

func (f *fakeClient) RecognizeLandmark(_ context.Context, filename string, _ []byte) (*models.Recognition, error) {
	f.record("recognize")
	return f.recog, f.recogErr
}

func (f *fakeClient) Chat(_ context.Context, sessionID, message string) (string, error) {
	f.record("chat")
	f.lastChatSession = sessionID
	return f.chatReply, f.chatErr
}

var _ api.Client = (*fakeClient)(nil)

// memRepo is a trivial in-memory settings repository.
type memRepo struct {
	data map[string]string
}

func (m *memRepo) Get(_ context.Context, key string) (string, error) { return m.data[key], nil }
func (m *memRepo) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}
func (m *memRepo) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}
func (m *memRepo) List(_ context.Context) (map[string]string, error) { return m.data, nil }

var _ settings.Repository = (*memRepo)(nil)

func newTestStore() (*session.Store, *memRepo) {
	repo := &memRepo{data: map[string]string{}}
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return session.NewStore(repo, session.NewNotifier(), log), repo
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.DiscardHandler))
}
