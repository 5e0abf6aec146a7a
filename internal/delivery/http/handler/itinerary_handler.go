package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/infrastructure/pdf"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
	"github.com/itinerary-service/internal/pkg/validator"
	"github.com/itinerary-service/internal/usecase"
	"github.com/itinerary-service/internal/usecase/dto"
)

// ItineraryHandler - генерация маршрутов и справочники для формы планировщика
type ItineraryHandler struct {
	itineraryUC *usecase.ItineraryUseCase
	placeUC     *usecase.PlaceUseCase
	renderer    *pdf.Renderer
	logger      *zap.Logger
}

// NewItineraryHandler - создание нового ItineraryHandler
func NewItineraryHandler(
	itineraryUC *usecase.ItineraryUseCase,
	placeUC *usecase.PlaceUseCase,
	renderer *pdf.Renderer,
	logger *zap.Logger,
) *ItineraryHandler {
	return &ItineraryHandler{
		itineraryUC: itineraryUC,
		placeUC:     placeUC,
		renderer:    renderer,
		logger:      logger,
	}
}

// Generate - генерация маршрута
// @Summary Генерация многодневного маршрута
// @Description Строит маршрут по Шри-Ланке с выездом и возвратом в Коломбо. Если ML-сервис доступен, места подбирает он, иначе используется локальное планирование по кластерам регионов.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body dto.GenerateItineraryRequest true "Параметры поездки"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 429 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/generate [post]
func (h *ItineraryHandler) Generate(c *fiber.Ctx) error {
	started := time.Now()

	var req dto.GenerateItineraryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	genReq, err := req.ToDomain()
	if err != nil {
		return utils.SendError(c, err)
	}

	itinerary, err := h.itineraryUC.Generate(c.UserContext(), genReq)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, itinerary, &utils.Meta{
		Total:    itinerary.PlaceCount(),
		Strategy: itinerary.Strategy,
		TimeMSec: float64(time.Since(started).Microseconds()) / 1000,
	})
}

// Get - получение ранее сгенерированного маршрута
// @Summary Маршрут по идентификатору
// @Description Маршруты хранятся ограниченное время (ITINERARY_CACHE_TTL)
// @Tags Itinerary
// @Produce json
// @Param id path string true "ID маршрута (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=domain.Itinerary}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/{id} [get]
func (h *ItineraryHandler) Get(c *fiber.Ctx) error {
	itinerary, err := h.itineraryUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, itinerary, nil)
}

// PDF - печатная версия маршрута
// @Summary PDF маршрута
// @Description PDF с таблицей визитов по дням и QR-кодом со ссылкой на маршрут
// @Tags Itinerary
// @Produce application/pdf
// @Param id path string true "ID маршрута (UUID)"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/{id}/pdf [get]
func (h *ItineraryHandler) PDF(c *fiber.Ctx) error {
	itinerary, err := h.itineraryUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.renderer.Render(itinerary)
	if err != nil {
		h.logger.Error("Failed to render itinerary PDF",
			zap.String("id", itinerary.ID),
			zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="itinerary-%s.pdf"`, itinerary.ID))
	return c.Send(data)
}

// Categories - категории мест каталога
// @Summary Категории мест
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ReferenceListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/categories [get]
func (h *ItineraryHandler) Categories(c *fiber.Ctx) error {
	result, err := h.placeUC.Categories(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Districts - районы мест каталога
// @Summary Районы
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ReferenceListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/districts [get]
func (h *ItineraryHandler) Districts(c *fiber.Ctx) error {
	result, err := h.placeUC.Districts(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Clusters - региональные кластеры
// @Summary Региональные кластеры
// @Description Кластеры в порядке удалённости от Коломбо, с районами и количеством мест
// @Tags Itinerary
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ClustersResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/itinerary/clusters [get]
func (h *ItineraryHandler) Clusters(c *fiber.Ctx) error {
	result, err := h.placeUC.Clusters(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Clusters)})
}
