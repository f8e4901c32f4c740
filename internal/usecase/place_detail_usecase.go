package usecase

import (
	"context"

	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlaceDetailUseCase struct {
	placesRepo repository.PlacesRepository
	logger     *zap.Logger
}

func NewPlaceDetailUseCase(
	placesRepo repository.PlacesRepository,
	logger *zap.Logger,
) *PlaceDetailUseCase {
	return &PlaceDetailUseCase{
		placesRepo: placesRepo,
		logger:     logger,
	}
}

// GetPlace возвращает нормализованную детальную запись места.
// Отсутствующие вложенные структуры провайдера становятся null-полями.
func (uc *PlaceDetailUseCase) GetPlace(ctx context.Context, placeID string) (*dto.PlaceDetailResponse, error) {
	detail, err := uc.placesRepo.GetDetails(ctx, placeID)
	if err != nil {
		uc.logger.Error("Places details lookup failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		return nil, err
	}

	return flattenDetail(detail), nil
}

func flattenDetail(detail *domain.RawPlaceDetail) *dto.PlaceDetailResponse {
	resp := &dto.PlaceDetailResponse{
		ID:      detail.ID,
		Address: detail.FormattedAddress,
		Phone:   detail.InternationalPhoneNumber,
		Website: detail.WebsiteURI,
	}

	if detail.DisplayName != nil {
		name := detail.DisplayName.Text
		resp.Name = &name
	}

	if detail.Location != nil && detail.Location.Latitude != nil && detail.Location.Longitude != nil {
		resp.Location = &dto.Location{
			Lat: *detail.Location.Latitude,
			Lng: *detail.Location.Longitude,
		}
	}

	if detail.RegularOpeningHours != nil {
		resp.OpeningHours = detail.RegularOpeningHours.WeekdayDescriptions
	}

	return resp
}
