package repository

import (
	"context"

	"github.com/places-microservice/internal/domain"
)

// PlacesRepository определяет методы для работы с Places API
type PlacesRepository interface {
	// SearchNearby возвращает места в радиусе radiusMeters от точки.
	// includedType фильтрует результаты по типу места; пустая строка
	// означает нефильтрованный поиск.
	SearchNearby(
		ctx context.Context,
		point domain.Point,
		radiusMeters float64,
		includedType string,
	) ([]domain.RawPlace, error)

	// GetDetails возвращает детальную запись места по идентификатору
	GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error)
}
