package dto

// Location - координаты места в ответе
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlaceResponse - агрегированный результат поиска.
// Отсутствующие у провайдера поля остаются null.
type PlaceResponse struct {
	ID               string    `json:"id"`
	Name             *string   `json:"name"`
	Types            []string  `json:"types"`
	Rating           *float64  `json:"rating"`
	UserRatingsTotal *int      `json:"user_ratings_total"`
	Location         *Location `json:"location"`
	DistanceM        *int      `json:"distance_m"`
	Vicinity         *string   `json:"vicinity"`
}

// PlaceDetailResponse - нормализованная детальная запись места
type PlaceDetailResponse struct {
	ID           string    `json:"id"`
	Name         *string   `json:"name"`
	Address      *string   `json:"address"`
	Phone        *string   `json:"phone"`
	Website      *string   `json:"website"`
	Location     *Location `json:"location"`
	OpeningHours []string  `json:"opening_hours"`
}
