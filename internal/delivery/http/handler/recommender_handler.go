package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/pkg/utils"
	"github.com/itinerary-service/internal/usecase"
)

// RecommenderHandler - состояние и управление ML-сервисом
type RecommenderHandler struct {
	recommenderUC *usecase.RecommenderUseCase
	logger        *zap.Logger
}

func NewRecommenderHandler(recommenderUC *usecase.RecommenderUseCase, logger *zap.Logger) *RecommenderHandler {
	return &RecommenderHandler{recommenderUC: recommenderUC, logger: logger}
}

// Health - доступность ML-сервиса
// @Summary Состояние ML-сервиса
// @Description Всегда 200, недоступность отражается в поле health.available
// @Tags ML
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RecommenderStatusResponse}
// @Router /api/v1/ml/health [get]
func (h *RecommenderHandler) Health(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.recommenderUC.Status(c.UserContext()), nil)
}

// Retrain - переобучение модели
// @Summary Переобучение модели
// @Tags ML
// @Produce json
// @Success 202 {object} utils.SuccessResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/ml/retrain [post]
func (h *RecommenderHandler) Retrain(c *fiber.Ctx) error {
	if err := h.recommenderUC.Retrain(c.UserContext()); err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(utils.SuccessResponse{
		Data: fiber.Map{"status": "retraining"},
	})
}

// ModelInfo - сведения о загруженной модели
// @Summary Информация о модели
// @Tags ML
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/ml/model-info [get]
func (h *RecommenderHandler) ModelInfo(c *fiber.Ctx) error {
	info, err := h.recommenderUC.ModelInfo(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, info, nil)
}
