package domain

import "strings"

// DefaultInterest используется при пустом списке интересов
const DefaultInterest = "restaurants"

// interestCategories - соответствие пользовательских интересов типам мест
// Places API. Интересы без соответствия дают нефильтрованный поиск.
var interestCategories = map[string]string{
	"coffee":      "cafe",
	"parks":       "park",
	"museums":     "museum",
	"restaurants": "restaurant",
}

// CategoryForInterest возвращает тип места для интереса или пустую строку,
// если фильтр по типу не применяется. Функция тотальна: неизвестный интерес
// не является ошибкой.
func CategoryForInterest(interest string) string {
	return interestCategories[interest]
}

// ParseInterests разбирает список интересов из query-параметра:
// запятые как разделитель, пробелы обрезаются, регистр приводится к нижнему,
// пустые элементы отбрасываются.
func ParseInterests(raw string) []string {
	parts := strings.Split(raw, ",")
	interests := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.ToLower(strings.TrimSpace(p)); trimmed != "" {
			interests = append(interests, trimmed)
		}
	}
	return interests
}
