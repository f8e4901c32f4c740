package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/places-microservice/internal/domain"
)

func TestCategoryForInterest(t *testing.T) {
	assert.Equal(t, "cafe", domain.CategoryForInterest("coffee"))
	assert.Equal(t, "park", domain.CategoryForInterest("parks"))
	assert.Equal(t, "museum", domain.CategoryForInterest("museums"))
	assert.Equal(t, "restaurant", domain.CategoryForInterest("restaurants"))

	// Unknown interests are not an error, they just get no type filter
	assert.Equal(t, "", domain.CategoryForInterest("bouldering"))
	assert.Equal(t, "", domain.CategoryForInterest(""))
}

func TestParseInterests(t *testing.T) {
	assert.Equal(t, []string{"coffee", "parks"}, domain.ParseInterests(" Coffee, parks ,,"))
	assert.Equal(t, []string{"museums"}, domain.ParseInterests("MUSEUMS"))
	assert.Empty(t, domain.ParseInterests(""))
	assert.Empty(t, domain.ParseInterests(" , ,"))
}
