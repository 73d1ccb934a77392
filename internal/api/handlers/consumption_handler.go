package handlers

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/internal/api/presenters"
	"Pantry-Tracker-Backend/pkg/consumption"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ConsumptionHandler interface {
		RecordConsumption(c *fiber.Ctx) error
		EditConsumption(c *fiber.Ctx) error
		DeleteConsumption(c *fiber.Ctx) error
		GetConsumptionLogs(c *fiber.Ctx) error
		DownloadConsumptionLogs(c *fiber.Ctx) error
	}

	consumptionHandler struct {
		consumptionService consumption.ConsumptionService
		validator          *validator.Validate
	}
)

func NewConsumptionHandler(consumptionService consumption.ConsumptionService, validator *validator.Validate) ConsumptionHandler {
	return &consumptionHandler{
		consumptionService: consumptionService,
		validator:          validator,
	}
}

func (h *consumptionHandler) RecordConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecordConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	res, err := h.consumptionService.RecordConsumption(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecordConsumption, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordConsumption, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessRecordConsumption)
}

func (h *consumptionHandler) EditConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")
	req := new(domain.EditConsumptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditConsumption, err)
	}

	if err := h.consumptionService.EditConsumption(c.Context(), logID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrConsumptionLogNotFound) || errors.Is(err, domain.ErrGroceryItemNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedEditConsumption, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEditConsumption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEditConsumption)
}

func (h *consumptionHandler) DeleteConsumption(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	logID := c.Params("id")

	if err := h.consumptionService.DeleteConsumption(c.Context(), logID, userID); err != nil {
		if errors.Is(err, domain.ErrConsumptionLogNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteConsumption, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteConsumption, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteConsumption)
}

func (h *consumptionHandler) GetConsumptionLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	logs, err := h.consumptionService.GetConsumptionLogs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetConsumption, err)
	}

	return presenters.SuccessResponse(c, logs, fiber.StatusOK, domain.MessageSuccessGetConsumption)
}

func (h *consumptionHandler) DownloadConsumptionLogs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	data, filename, err := h.consumptionService.ExportConsumptionLogs(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExportConsumption, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
