package handlers

import (
	"Pantry-Tracker-Backend/domain"
	"Pantry-Tracker-Backend/internal/api/presenters"
	"Pantry-Tracker-Backend/pkg/analytics"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type (
	AnalyticsHandler interface {
		GetOverview(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetOverview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	year, err := strconv.Atoi(c.Query("year", ""))
	if err != nil || year < 1 {
		year = time.Now().Year()
	}

	overview, err := h.analyticsService.GetOverview(c.Context(), userID, year)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAnalytics, err)
	}

	return presenters.SuccessResponse(c, overview, fiber.StatusOK, domain.MessageSuccessGetAnalytics)
}
