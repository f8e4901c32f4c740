// Package docs Places Recommendation API.
//
// Сервис рекомендаций мест: по точке, радиусу и списку интересов агрегирует
// результаты Google Places API (New), удаляет дубликаты между категориями,
// считает расстояние до точки запроса и ранжирует места по составному score
// (рейтинг, количество оценок, близость). Отдельный эндпоинт возвращает
// нормализованную детальную запись места по идентификатору.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
