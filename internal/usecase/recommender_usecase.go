package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain/repository"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/usecase/dto"
)

// RecommenderUseCase - управление внешним ML-сервисом
type RecommenderUseCase struct {
	recommender repository.RecommenderRepository
	logger      *zap.Logger
}

// NewRecommenderUseCase - recommender nil означает что ML отключён в конфигурации
func NewRecommenderUseCase(recommender repository.RecommenderRepository, logger *zap.Logger) *RecommenderUseCase {
	return &RecommenderUseCase{recommender: recommender, logger: logger}
}

func (uc *RecommenderUseCase) Status(ctx context.Context) *dto.RecommenderStatusResponse {
	resp := &dto.RecommenderStatusResponse{Enabled: uc.recommender != nil}
	if uc.recommender == nil {
		resp.Health.Reason = "disabled"
		return resp
	}
	resp.Health = uc.recommender.Health(ctx)
	return resp
}

func (uc *RecommenderUseCase) Retrain(ctx context.Context) error {
	if uc.recommender == nil {
		return errors.ErrRecommenderUnavailable
	}
	if err := uc.recommender.Retrain(ctx); err != nil {
		uc.logger.Warn("Recommender retrain failed", zap.Error(err))
		return errors.ErrRecommenderUnavailable.WithDetails(map[string]interface{}{"cause": err.Error()})
	}
	return nil
}

func (uc *RecommenderUseCase) ModelInfo(ctx context.Context) (map[string]interface{}, error) {
	if uc.recommender == nil {
		return nil, errors.ErrRecommenderUnavailable
	}
	info, err := uc.recommender.ModelInfo(ctx)
	if err != nil {
		uc.logger.Warn("Recommender model info failed", zap.Error(err))
		return nil, errors.ErrRecommenderUnavailable.WithDetails(map[string]interface{}{"cause": err.Error()})
	}
	return info, nil
}
