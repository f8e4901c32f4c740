package usecase

import (
	"context"
	"math"
	"sort"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/pkg/utils"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	// maxResults ограничивает итоговую выдачу рекомендаций
	maxResults = 50

	// ratingCountCap - порог насыщения вклада количества оценок в score
	ratingCountCap = 200

	// distancePenaltyDivisor - метры дополнительного пути, "стоящие" одного
	// балла рейтинга в score
	distancePenaltyDivisor = 5000.0

	// missingDistancePenalty назначается местам без координат: они остаются
	// в выдаче, но опускаются в конец
	missingDistancePenalty = 1000000

	// resultsPerInterest - сколько мест возвращает один поисковый запрос
	resultsPerInterest = 20
)

type RecommendationUseCase struct {
	placesRepo repository.PlacesRepository
	logger     *zap.Logger
}

func NewRecommendationUseCase(
	placesRepo repository.PlacesRepository,
	logger *zap.Logger,
) *RecommendationUseCase {
	return &RecommendationUseCase{
		placesRepo: placesRepo,
		logger:     logger,
	}
}

// Recommend выполняет по одному поиску на интерес, сливает результаты по
// идентификатору места (первое вхождение выигрывает), считает расстояние и
// score, сортирует по убыванию score и усекает выдачу до maxResults.
//
// Ошибка любого поискового запроса прерывает весь конвейер: частичная выдача
// искажала бы покрытие, поэтому запросы по оставшимся интересам не выполняются.
func (uc *RecommendationUseCase) Recommend(
	ctx context.Context,
	req dto.RecommendationsRequest,
) ([]dto.PlaceResponse, error) {
	interests := req.Interests
	if len(interests) == 0 {
		interests = []string{domain.DefaultInterest}
	}

	seen := make(map[string]struct{})
	merged := make([]dto.PlaceResponse, 0, resultsPerInterest*len(interests))

	for _, interest := range interests {
		includedType := domain.CategoryForInterest(interest)

		places, err := uc.placesRepo.SearchNearby(
			ctx,
			domain.Point{Lat: req.Lat, Lng: req.Lng},
			req.RadiusMeters,
			includedType,
		)
		if err != nil {
			uc.logger.Error("Places search failed, aborting aggregation",
				zap.String("interest", interest),
				zap.Error(err))
			return nil, err
		}

		for _, raw := range places {
			if raw.ID == "" {
				continue
			}
			if _, ok := seen[raw.ID]; ok {
				// Duplicate across interests: first occurrence wins
				continue
			}
			seen[raw.ID] = struct{}{}
			merged = append(merged, buildPlaceResponse(req.Lat, req.Lng, raw))
		}
	}

	// Stable sort keeps merge order (interest order, then provider order) for ties
	sort.SliceStable(merged, func(i, j int) bool {
		return placeScore(merged[i]) > placeScore(merged[j])
	})

	if len(merged) > maxResults {
		merged = merged[:maxResults]
	}

	uc.logger.Debug("Recommendations aggregated",
		zap.Int("interests", len(interests)),
		zap.Int("results", len(merged)))

	return merged, nil
}

// buildPlaceResponse копирует поля провайдера как есть; расстояние считается
// только при наличии обеих координат
func buildPlaceResponse(lat, lng float64, raw domain.RawPlace) dto.PlaceResponse {
	place := dto.PlaceResponse{
		ID:               raw.ID,
		Types:            raw.Types,
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingCount,
		Vicinity:         raw.FormattedAddress,
	}

	if raw.DisplayName != nil {
		name := raw.DisplayName.Text
		place.Name = &name
	}

	if raw.Location != nil && raw.Location.Latitude != nil && raw.Location.Longitude != nil {
		place.Location = &dto.Location{
			Lat: *raw.Location.Latitude,
			Lng: *raw.Location.Longitude,
		}
		distance := utils.HaversineDistanceMeters(lat, lng, place.Location.Lat, place.Location.Lng)
		place.DistanceM = &distance
	}

	return place
}

// placeScore - ключ сортировки: рейтинг, взвешенный насыщающимся количеством
// оценок, минус штраф за удаленность
func placeScore(place dto.PlaceResponse) float64 {
	rating := 0.0
	if place.Rating != nil {
		rating = *place.Rating
	}

	count := 0.0
	if place.UserRatingsTotal != nil {
		count = float64(*place.UserRatingsTotal)
	}

	distance := float64(missingDistancePenalty)
	if place.DistanceM != nil {
		distance = float64(*place.DistanceM)
	}

	return rating*math.Min(count, ratingCountCap)/ratingCountCap - distance/distancePenaltyDivisor
}
