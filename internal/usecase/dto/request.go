package dto

// RecommendationsRequest - запрос рекомендаций мест вокруг точки
type RecommendationsRequest struct {
	Lat          float64  `json:"lat" validate:"min=-90,max=90"`
	Lng          float64  `json:"lng" validate:"min=-180,max=180"`
	Interests    []string `json:"interests"`
	RadiusMeters float64  `json:"radius_m"`
}
