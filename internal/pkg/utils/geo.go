package utils

import "math"

const earthRadiusMeters = 6371000.0

// HaversineDistanceMeters вычисляет расстояние по большому кругу между двумя
// точками в метрах. Результат усекается до целого (не округляется).
func HaversineDistanceMeters(lat1, lon1, lat2, lon2 float64) int {
	phi1 := lat1 * math.Pi / 180.0
	phi2 := lat2 * math.Pi / 180.0
	dPhi := (lat2 - lat1) * math.Pi / 180.0
	dLambda := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	// Asin вместо Atan2: при a -> 1 (антиподы) Sqrt(a) ограничен единицей
	return int(2 * earthRadiusMeters * math.Asin(math.Min(1, math.Sqrt(a))))
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
