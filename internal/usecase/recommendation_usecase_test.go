package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-microservice/internal/domain"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"github.com/places-microservice/internal/usecase"
	"github.com/places-microservice/internal/usecase/dto"
)

// MockPlacesRepository is a mock of PlacesRepository
type MockPlacesRepository struct {
	mock.Mock
}

func (m *MockPlacesRepository) SearchNearby(
	ctx context.Context,
	point domain.Point,
	radiusMeters float64,
	includedType string,
) ([]domain.RawPlace, error) {
	args := m.Called(ctx, point, radiusMeters, includedType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawPlace), args.Error(1)
}

func (m *MockPlacesRepository) GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RawPlaceDetail), args.Error(1)
}

func ptrFloat64(v float64) *float64 { return &v }
func ptrInt(v int) *int             { return &v }

func rawPlace(id string, rating *float64, count *int, lat, lng *float64) domain.RawPlace {
	p := domain.RawPlace{
		ID:              id,
		Rating:          rating,
		UserRatingCount: count,
	}
	if lat != nil && lng != nil {
		p.Location = &domain.LatLng{Latitude: lat, Longitude: lng}
	}
	return p
}

func TestRecommendationUseCase_Recommend(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	point := domain.Point{Lat: 40.0, Lng: -73.0}

	t.Run("duplicates across interests keep the first occurrence", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		coffee := []domain.RawPlace{
			rawPlace("A", ptrFloat64(4.5), ptrInt(300), ptrFloat64(40.001), ptrFloat64(-73.001)),
		}
		parks := []domain.RawPlace{
			rawPlace("A", ptrFloat64(1.0), ptrInt(5), ptrFloat64(40.001), ptrFloat64(-73.001)),
			rawPlace("B", ptrFloat64(4.0), ptrInt(10), ptrFloat64(40.002), ptrFloat64(-73.0)),
		}

		mockRepo.On("SearchNearby", ctx, point, 3000.0, "cafe").Return(coffee, nil)
		mockRepo.On("SearchNearby", ctx, point, 3000.0, "park").Return(parks, nil)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"coffee", "parks"},
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		require.Len(t, result, 2)

		// "A" keeps the rating from the interest that returned it first
		assert.Equal(t, "A", result[0].ID)
		require.NotNil(t, result[0].Rating)
		assert.Equal(t, 4.5, *result[0].Rating)
		require.NotNil(t, result[0].DistanceM)

		assert.Equal(t, "B", result[1].ID)
		mockRepo.AssertNumberOfCalls(t, "SearchNearby", 2)
	})

	t.Run("empty interest list falls back to restaurants", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		mockRepo.On("SearchNearby", ctx, point, 3000.0, "restaurant").Return([]domain.RawPlace{}, nil)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		assert.Empty(t, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown interest searches unfiltered", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		mockRepo.On("SearchNearby", ctx, point, 3000.0, "").Return([]domain.RawPlace{}, nil)

		_, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"bouldering"},
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("search failure aborts before later interests run", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		upstreamErr := apperrors.NewUpstreamError("Places search error", 500, "boom")
		mockRepo.On("SearchNearby", ctx, point, 3000.0, "cafe").Return(nil, upstreamErr)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"coffee", "parks"},
			RadiusMeters: 3000,
		})

		assert.Nil(t, result)
		assert.Equal(t, upstreamErr, err)
		mockRepo.AssertNumberOfCalls(t, "SearchNearby", 1)
	})

	t.Run("places without an id are skipped", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		places := []domain.RawPlace{
			rawPlace("", ptrFloat64(5.0), ptrInt(200), ptrFloat64(40.001), ptrFloat64(-73.001)),
			rawPlace("C", ptrFloat64(3.0), ptrInt(50), ptrFloat64(40.001), ptrFloat64(-73.001)),
		}
		mockRepo.On("SearchNearby", ctx, point, 3000.0, "cafe").Return(places, nil)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"coffee"},
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "C", result[0].ID)
	})

	t.Run("place without location ranks below located places", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		places := []domain.RawPlace{
			rawPlace("far-less", ptrFloat64(5.0), ptrInt(200), nil, nil),
			rawPlace("near", ptrFloat64(5.0), ptrInt(200), ptrFloat64(40.001), ptrFloat64(-73.001)),
		}
		mockRepo.On("SearchNearby", ctx, point, 3000.0, "cafe").Return(places, nil)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"coffee"},
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "near", result[0].ID)
		assert.Equal(t, "far-less", result[1].ID)
		assert.Nil(t, result[1].Location)
		assert.Nil(t, result[1].DistanceM)
	})

	t.Run("output is truncated to the 50 highest scoring places", func(t *testing.T) {
		mockRepo := &MockPlacesRepository{}
		uc := usecase.NewRecommendationUseCase(mockRepo, logger)

		// score = 5 * min(i, 200) / 200 minus a shared tiny distance penalty,
		// so the score grows strictly with i
		places := make([]domain.RawPlace, 0, 80)
		for i := 0; i < 80; i++ {
			places = append(places, rawPlace(
				fmt.Sprintf("P%d", i),
				ptrFloat64(5.0),
				ptrInt(i),
				ptrFloat64(40.001),
				ptrFloat64(-73.001),
			))
		}
		mockRepo.On("SearchNearby", ctx, point, 3000.0, "cafe").Return(places, nil)

		result, err := uc.Recommend(ctx, dto.RecommendationsRequest{
			Lat:          40.0,
			Lng:          -73.0,
			Interests:    []string{"coffee"},
			RadiusMeters: 3000,
		})

		require.NoError(t, err)
		require.Len(t, result, 50)
		assert.Equal(t, "P79", result[0].ID)
		assert.Equal(t, "P30", result[49].ID)
	})
}
