package googleplaces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/places-microservice/internal/config"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/metrics"
	apperrors "github.com/places-microservice/internal/pkg/errors"
	"go.uber.org/zap"
)

const (
	// searchFieldMask ограничивает ответ поиска полями, которые попадают в выдачу
	searchFieldMask = "places.id,places.displayName,places.location,places.types," +
		"places.rating,places.userRatingCount,places.formattedAddress"

	// detailFields - поля детальной записи места
	detailFields = "id,displayName,formattedAddress,internationalPhoneNumber," +
		"websiteUri,regularOpeningHours,location"

	maxResultCount = 20
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewClient создает новый клиент для Places API (New)
func NewClient(cfg *config.PlacesConfig, m *metrics.Metrics, logger *zap.Logger) repository.PlacesRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		metrics: m,
		logger:  logger,
	}
}

type searchNearbyRequest struct {
	MaxResultCount      int                 `json:"maxResultCount"`
	RankPreference      string              `json:"rankPreference"`
	IncludedTypes       []string            `json:"includedTypes,omitempty"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center center  `json:"center"`
	Radius float64 `json:"radius"`
}

type center struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type searchNearbyResponse struct {
	Places []domain.RawPlace `json:"places"`
}

// SearchNearby выполняет один запрос places:searchNearby. Результаты
// упорядочены провайдером по расстоянию, не более maxResultCount записей.
func (c *client) SearchNearby(
	ctx context.Context,
	point domain.Point,
	radiusMeters float64,
	includedType string,
) ([]domain.RawPlace, error) {
	reqBody := searchNearbyRequest{
		MaxResultCount: maxResultCount,
		RankPreference: "DISTANCE",
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: center{Latitude: point.Lat, Longitude: point.Lng},
				Radius: radiusMeters,
			},
		},
	}
	if includedType != "" {
		reqBody.IncludedTypes = []string{includedType}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := c.baseURL + "/places:searchNearby"

	c.logger.Debug("Calling Places search API",
		zap.Float64("lat", point.Lat),
		zap.Float64("lng", point.Lng),
		zap.Float64("radius_m", radiusMeters),
		zap.String("included_type", includedType))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", searchFieldMask)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderSeconds.WithLabelValues("search").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderErrors.Inc()
		c.logger.Error("Failed to execute Places search request", zap.Error(err))
		return nil, apperrors.NewUpstreamError("Places search error", 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderErrors.Inc()
		c.logger.Error("Places search API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.NewUpstreamError("Places search error", resp.StatusCode, string(body))
	}

	var searchResp searchNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		c.logger.Error("Failed to decode Places search response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("Places search API call successful",
		zap.Int("places_count", len(searchResp.Places)))

	return searchResp.Places, nil
}

// GetDetails возвращает детальную запись места по его идентификатору
func (c *client) GetDetails(ctx context.Context, placeID string) (*domain.RawPlaceDetail, error) {
	reqURL := fmt.Sprintf("%s/places/%s?fields=%s", c.baseURL, url.PathEscape(placeID), url.QueryEscape(detailFields))

	c.logger.Debug("Calling Places details API", zap.String("place_id", placeID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ProviderSeconds.WithLabelValues("details").Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderErrors.Inc()
		c.logger.Error("Failed to execute Places details request", zap.Error(err))
		return nil, apperrors.NewUpstreamError("Places details error", 0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.ProviderErrors.Inc()
		c.logger.Error("Places details API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, apperrors.NewUpstreamError("Places details error", resp.StatusCode, string(body))
	}

	var detail domain.RawPlaceDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		c.logger.Error("Failed to decode Places details response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &detail, nil
}
