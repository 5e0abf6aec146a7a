package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/itinerary-service/internal/domain"
	"github.com/itinerary-service/internal/pkg/errors"
	"github.com/itinerary-service/internal/pkg/utils"
	"github.com/itinerary-service/internal/pkg/validator"
	"github.com/itinerary-service/internal/usecase"
	"github.com/itinerary-service/internal/usecase/dto"
)

// PlaceHandler - CRUD каталога мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	logger  *zap.Logger
}

func NewPlaceHandler(placeUC *usecase.PlaceUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{placeUC: placeUC, logger: logger}
}

// List - страница каталога
// @Summary Список мест
// @Tags Places
// @Produce json
// @Param category query []string false "Категории (можно несколько)" collectionFormat(csv)
// @Param district query string false "Район"
// @Param limit query int false "Размер страницы" default(100)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceListResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places [get]
func (h *PlaceHandler) List(c *fiber.Ctx) error {
	filter := domain.PlaceFilter{
		District: c.Query("district"),
		Limit:    c.QueryInt("limit", 0),
		Offset:   c.QueryInt("offset", 0),
	}
	if filter.Offset < 0 {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("offset must not be negative"))
	}
	if raw := c.Query("category"); raw != "" {
		filter.Categories = utils.SplitCSV(raw)
	}

	result, err := h.placeUC.List(c.UserContext(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// Get - место по идентификатору
// @Summary Место каталога
// @Tags Places
// @Produce json
// @Param id path string true "place_id"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [get]
func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	place, err := h.placeUC.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, place, nil)
}

// Create - добавление места
// @Summary Добавление места
// @Description После изменения каталога датасет ML-сервиса обновляется в фоне
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.PlaceRequest true "Место"
// @Success 201 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/places [post]
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	req, err := parsePlaceRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.Create(c.UserContext(), req.ToDomain())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, place)
}

// Update - замена места
// @Summary Обновление места
// @Tags Places
// @Accept json
// @Produce json
// @Param id path string true "place_id"
// @Param request body dto.PlaceRequest true "Место"
// @Success 200 {object} utils.SuccessResponse{data=domain.Place}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [put]
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	req, err := parsePlaceRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.Update(c.UserContext(), c.Params("id"), req.ToDomain())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, place, nil)
}

// Delete - удаление места
// @Summary Удаление места
// @Tags Places
// @Param id path string true "place_id"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/{id} [delete]
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	if err := h.placeUC.Delete(c.UserContext(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parsePlaceRequest(c *fiber.Ctx) (*dto.PlaceRequest, error) {
	var req dto.PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	if err := validator.Validate(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
