package domain

// Point - географическая точка запроса
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
