package recommender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/config"
	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/domain/repository"
)

const (
	healthPath     = "/health"
	generatePath   = "/api/ml/generate-itinerary"
	retrainPath    = "/api/ml/retrain"
	reloadDataPath = "/api/ml/reload-data"
	modelInfoPath  = "/api/ml/model-info"

	maxErrorBody = 1024

	defaultHealthTimeout  = 2 * time.Second
	defaultRequestTimeout = 5 * time.Second
)

type client struct {
	httpClient     *http.Client
	baseURL        string
	healthTimeout  time.Duration
	requestTimeout time.Duration
	logger         *zap.Logger
}

// NewClient создает клиент ML-сервиса рекомендаций; каждый вызов ограничен своим таймаутом
func NewClient(cfg *config.MLConfig, logger *zap.Logger) repository.RecommenderRepository {
	healthTimeout := cfg.HealthTimeout
	if healthTimeout <= 0 {
		healthTimeout = defaultHealthTimeout
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &client{
		// Таймаут клиента страхует вызовы с контекстом без дедлайна
		httpClient:     &http.Client{Timeout: max(healthTimeout, requestTimeout)},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		healthTimeout:  healthTimeout,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded *bool  `json:"model_loaded"`
}

// Health - сервис доступен только при 200 и явном model_loaded=true
func (c *client) Health(ctx context.Context) domain.RecommenderHealth {
	var resp healthResponse
	if err := c.do(ctx, c.healthTimeout, http.MethodGet, healthPath, nil, &resp); err != nil {
		c.logger.Debug("Recommender health check failed", zap.Error(err))
		return domain.RecommenderHealth{Reason: err.Error()}
	}

	if resp.ModelLoaded == nil || !*resp.ModelLoaded {
		return domain.RecommenderHealth{Status: resp.Status, Reason: "model not loaded"}
	}
	return domain.RecommenderHealth{Available: true, ModelLoaded: true, Status: resp.Status}
}

type planResponse struct {
	Success   bool                    `json:"success"`
	Error     string                  `json:"error,omitempty"`
	Itinerary *domain.RecommenderPlan `json:"itinerary"`
}

// Plan запрашивает состав дней; success=false и пустой itinerary считаются ошибкой
func (c *client) Plan(ctx context.Context, req domain.RecommenderPlanRequest) (*domain.RecommenderPlan, error) {
	if req.PreferredCategories == nil {
		req.PreferredCategories = []string{}
	}

	var resp planResponse
	if err := c.do(ctx, c.requestTimeout, http.MethodPost, generatePath, req, &resp); err != nil {
		c.logger.Warn("Recommender plan request failed", zap.Error(err))
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("recommender reported failure: %s", resp.Error)
	}
	if resp.Itinerary == nil {
		return nil, fmt.Errorf("recommender response has no itinerary")
	}

	c.logger.Debug("Recommender plan received",
		zap.String("title", resp.Itinerary.Title),
		zap.Int("days", len(resp.Itinerary.Days)))

	return resp.Itinerary, nil
}

func (c *client) Retrain(ctx context.Context) error {
	return c.do(ctx, c.requestTimeout, http.MethodPost, retrainPath, nil, nil)
}

func (c *client) ReloadData(ctx context.Context) error {
	return c.do(ctx, c.requestTimeout, http.MethodPost, reloadDataPath, nil, nil)
}

func (c *client) ModelInfo(ctx context.Context) (map[string]interface{}, error) {
	info := make(map[string]interface{})
	if err := c.do(ctx, c.requestTimeout, http.MethodGet, modelInfoPath, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// do выполняет запрос с таймаутом; out == nil означает что тело ответа не нужно
func (c *client) do(ctx context.Context, timeout time.Duration, method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("recommender %s %s: status %d, body: %s", method, path, resp.StatusCode, string(msg))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
