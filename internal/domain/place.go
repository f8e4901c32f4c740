package domain

// LocalizedText - локализованное имя места в ответах Places API
type LocalizedText struct {
	Text string `json:"text"`
}

// LatLng - координаты места в ответах Places API
type LatLng struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RawPlace - запись результата поиска, как её возвращает Places API.
// Все поля, кроме идентификатора, могут отсутствовать.
type RawPlace struct {
	ID               string         `json:"id"`
	DisplayName      *LocalizedText `json:"displayName"`
	Location         *LatLng        `json:"location"`
	Types            []string       `json:"types"`
	Rating           *float64       `json:"rating"`
	UserRatingCount  *int           `json:"userRatingCount"`
	FormattedAddress *string        `json:"formattedAddress"`
}

// RawOpeningHours - режим работы места
type RawOpeningHours struct {
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

// RawPlaceDetail - детальная запись места, как её возвращает Places API
type RawPlaceDetail struct {
	ID                       string           `json:"id"`
	DisplayName              *LocalizedText   `json:"displayName"`
	FormattedAddress         *string          `json:"formattedAddress"`
	InternationalPhoneNumber *string          `json:"internationalPhoneNumber"`
	WebsiteURI               *string          `json:"websiteUri"`
	RegularOpeningHours      *RawOpeningHours `json:"regularOpeningHours"`
	Location                 *LatLng          `json:"location"`
}
