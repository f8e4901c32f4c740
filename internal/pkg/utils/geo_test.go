package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/places-microservice/internal/pkg/utils"
)

func TestHaversineDistanceMeters(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		assert.Equal(t, 0, utils.HaversineDistanceMeters(40.0, -73.0, 40.0, -73.0))
		assert.Equal(t, 0, utils.HaversineDistanceMeters(0, 0, 0, 0))
		assert.Equal(t, 0, utils.HaversineDistanceMeters(-89.99, 179.99, -89.99, 179.99))
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistanceMeters(41.3851, 2.1734, 48.8566, 2.3522)
		d2 := utils.HaversineDistanceMeters(48.8566, 2.3522, 41.3851, 2.1734)
		assert.Equal(t, d1, d2)
	})

	t.Run("one degree of longitude on the equator", func(t *testing.T) {
		d := utils.HaversineDistanceMeters(0, 0, 0, 1)
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("antipodal points are numerically stable", func(t *testing.T) {
		// Half the Earth's circumference, pi * 6371000
		d := utils.HaversineDistanceMeters(0, 0, 0, 180)
		assert.InDelta(t, 20015086, d, 10)
	})

	t.Run("truncates instead of rounding", func(t *testing.T) {
		// Barcelona - Paris is ~830.9 km; the point is that the result
		// is an int and never exceeds the float value
		d := utils.HaversineDistanceMeters(41.3851, 2.1734, 48.8566, 2.3522)
		assert.Greater(t, d, 800000)
		assert.Less(t, d, 900000)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(0, 0))
	assert.True(t, utils.ValidateCoordinates(90, 180))
	assert.True(t, utils.ValidateCoordinates(-90, -180))
	assert.False(t, utils.ValidateCoordinates(90.1, 0))
	assert.False(t, utils.ValidateCoordinates(0, -180.1))
}
