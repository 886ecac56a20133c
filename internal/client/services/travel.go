package services

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/travelmate/internal/client/api"
	"github.com/dmitrijs2005/travelmate/internal/client/models"
)

// TravelService covers the discovery features: recommendations and landmark
// recognition. All calls are single-attempt pass-throughs to the remote
// service; there is no client-side ranking.
type TravelService interface {
	RecommendByInterest(ctx context.Context, interest string) ([]models.Destination, error)
	RecommendNearby(ctx context.Context, lat, lon, radius float64) ([]models.Destination, error)
	RecommendAI(ctx context.Context, interest string) ([]models.Destination, error)
	// Recognize uploads the image file at path and returns the recognized
	// landmark.
	Recognize(ctx context.Context, path string) (*models.Recognition, error)
}

type travelService struct {
	client api.Client
}

func NewTravelService(client api.Client) TravelService {
	return &travelService{client: client}
}

func (s *travelService) RecommendByInterest(ctx context.Context, interest string) ([]models.Destination, error) {
	if interest == "" {
		return nil, ErrFieldRequired
	}
	return s.client.RecommendByInterest(ctx, interest)
}

func (s *travelService) RecommendNearby(ctx context.Context, lat, lon, radius float64) ([]models.Destination, error) {
	return s.client.RecommendNearby(ctx, lat, lon, radius)
}

func (s *travelService) RecommendAI(ctx context.Context, interest string) ([]models.Destination, error) {
	if interest == "" {
		return nil, ErrFieldRequired
	}
	return s.client.RecommendAI(ctx, interest)
}

func (s *travelService) Recognize(ctx context.Context, path string) (*models.Recognition, error) {
	if path == "" {
		return nil, ErrFieldRequired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.client.RecognizeLandmark(ctx, filepath.Base(path), data)
}
