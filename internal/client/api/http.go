// Package api implements the HTTP client for the remote travel service.
// The service speaks plain JSON over REST; every response carries a success
// flag and an optional user-facing message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/travelmate/internal/client/models"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API at baseURL. The base URL comes
// from configuration; it is never hardcoded by callers. token may be nil for
// a client that only performs unauthenticated calls.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

// envelope is the common part of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *envelope) apiErr() error {
	return &Error{Message: e.Message}
}

// result lets do() inspect the success flag regardless of the concrete
// response type.
type result interface {
	ok() bool
	apiErr() error
}

func (e *envelope) ok() bool { return e.Success }

func (c *HTTPClient) do(req *http.Request, out result) error {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	if !out.ok() {
		return out.apiErr()
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, body any, out result) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out result) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) deleteJSON(ctx context.Context, path string, out result) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	body := map[string]string{"email": email, "password": string(password)}
	var resp struct {
		envelope
		Token string `json:"token"`
	}
	if err := c.postJSON(ctx, "/api/login", body, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, fullname, email, phone string, password []byte) error {
	body := map[string]string{
		"fullname": fullname,
		"email":    email,
		"phone":    phone,
		"password": string(password),
	}
	var resp envelope
	return c.postJSON(ctx, "/api/register", body, &resp)
}

func (c *HTTPClient) RequestResetCode(ctx context.Context, email string) (string, string, error) {
	body := map[string]string{"email": email}
	var resp struct {
		envelope
		ResetCode string `json:"reset_code"`
	}
	if err := c.postJSON(ctx, "/api/forgot-password", body, &resp); err != nil {
		return "", "", err
	}
	return resp.Message, resp.ResetCode, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, resetCode string, newPassword []byte) error {
	body := map[string]string{
		"email":        email,
		"reset_code":   resetCode,
		"new_password": string(newPassword),
	}
	var resp envelope
	return c.postJSON(ctx, "/api/reset-password", body, &resp)
}

func (c *HTTPClient) ListAlbums(ctx context.Context) ([]models.Album, error) {
	var resp struct {
		envelope
		Albums []models.Album `json:"albums"`
	}
	if err := c.getJSON(ctx, "/api/albums", &resp); err != nil {
		return nil, err
	}
	return resp.Albums, nil
}

func (c *HTTPClient) CreateAlbum(ctx context.Context, name string) error {
	var resp envelope
	return c.postJSON(ctx, "/api/albums", map[string]string{"name": name}, &resp)
}

func (c *HTTPClient) DeleteAlbum(ctx context.Context, name string) error {
	var resp envelope
	return c.deleteJSON(ctx, "/api/albums/"+url.PathEscape(name), &resp)
}

func (c *HTTPClient) ListImages(ctx context.Context, album string) ([]models.AlbumImage, error) {
	var resp struct {
		envelope
		Images []models.AlbumImage `json:"images"`
	}
	if err := c.getJSON(ctx, "/api/albums/"+url.PathEscape(album)+"/images", &resp); err != nil {
		return nil, err
	}
	return resp.Images, nil
}

func (c *HTTPClient) UploadImage(ctx context.Context, album, filename string, image []byte) error {
	var resp envelope
	return c.postImage(ctx, "/api/albums/"+url.PathEscape(album)+"/images", filename, image, &resp)
}

func (c *HTTPClient) DeleteImage(ctx context.Context, album, imageID string) error {
	var resp envelope
	path := "/api/albums/" + url.PathEscape(album) + "/images/" + url.PathEscape(imageID)
	return c.deleteJSON(ctx, path, &resp)
}

// recommendResponse accepts both field names the service uses: the interest
// and AI endpoints answer with "recommendations", nearby with "destinations".
type recommendResponse struct {
	envelope
	Recommendations []models.Destination `json:"recommendations"`
	Destinations    []models.Destination `json:"destinations"`
}

func (r *recommendResponse) items() []models.Destination {
	if len(r.Recommendations) > 0 {
		return r.Recommendations
	}
	return r.Destinations
}

func (c *HTTPClient) RecommendByInterest(ctx context.Context, interest string) ([]models.Destination, error) {
	var resp recommendResponse
	if err := c.postJSON(ctx, "/api/recommend/interest", map[string]string{"interest": interest}, &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

func (c *HTTPClient) RecommendNearby(ctx context.Context, lat, lon, radius float64) ([]models.Destination, error) {
	body := map[string]float64{"lat": lat, "lon": lon, "radius": radius}
	var resp recommendResponse
	if err := c.postJSON(ctx, "/api/recommend/nearby", body, &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

func (c *HTTPClient) RecommendAI(ctx context.Context, interest string) ([]models.Destination, error) {
	var resp recommendResponse
	if err := c.postJSON(ctx, "/api/recommend/ai", map[string]string{"interest": interest}, &resp); err != nil {
		return nil, err
	}
	return resp.items(), nil
}

// postImage sends image as a multipart form under the "image" field, the
// upload shape the service expects for both recognition and album uploads.
func (c *HTTPClient) postImage(ctx context.Context, path, filename string, image []byte, out result) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, bytes.NewReader(image)); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func (c *HTTPClient) RecognizeLandmark(ctx context.Context, filename string, image []byte) (*models.Recognition, error) {
	var resp struct {
		envelope
		Data models.Recognition `json:"data"`
	}
	if err := c.postImage(ctx, "/api/recognize/landmark", filename, image, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) Chat(ctx context.Context, sessionID, message string) (string, error) {
	body := map[string]string{"message": message, "session_id": sessionID}
	var resp struct {
		envelope
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/api/chatbot", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
