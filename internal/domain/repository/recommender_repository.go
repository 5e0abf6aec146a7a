package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// RecommenderRepository - внешний ML-сервис, предлагающий состав дней маршрута
type RecommenderRepository interface {
	// Health никогда не возвращает ошибку: недоступность отражается в Available=false
	Health(ctx context.Context) domain.RecommenderHealth

	// Plan запрашивает план; любая сетевая ошибка или некорректный ответ возвращаются как error
	Plan(ctx context.Context, req domain.RecommenderPlanRequest) (*domain.RecommenderPlan, error)

	// Retrain запускает переобучение модели
	Retrain(ctx context.Context) error

	// ReloadData просит сервис перечитать датасет
	ReloadData(ctx context.Context) error

	// ModelInfo возвращает описание загруженной модели как есть
	ModelInfo(ctx context.Context) (map[string]interface{}, error)
}
