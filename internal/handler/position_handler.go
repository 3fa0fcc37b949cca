package handler

import (
	"net/http"
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/service"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/labstack/echo/v4"
)

// PositionHandler serves the reconciliation endpoints of single positions
// and the auto-match run of a statement.
type PositionHandler struct {
	service service.ReconciliationService
	logger  *logger.Logger
}

func NewPositionHandler(service service.ReconciliationService, log *logger.Logger) *PositionHandler {
	return &PositionHandler{
		service: service,
		logger:  log,
	}
}

func (h *PositionHandler) AutoMatch(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.service.AutoMatch(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to auto-match statement"))
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PositionHandler) Candidates(c echo.Context) error {
	ctx := c.Request().Context()
	positionID := c.Param("id")

	candidates, err := h.service.FindCandidates(ctx, positionID)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to find candidates"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"position_id": positionID,
		"items":       candidates,
	})
}

type assignRequest struct {
	BookingID string `json:"booking_id"`
}

func (h *PositionHandler) Assign(c echo.Context) error {
	ctx := c.Request().Context()

	var req assignRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.BookingID) == "" {
		return badRequest(c, "booking_id is required")
	}

	position, err := h.service.Assign(ctx, c.Param("id"), req.BookingID)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to assign booking"))
	}

	return c.JSON(http.StatusOK, position)
}

func (h *PositionHandler) Unassign(c echo.Context) error {
	ctx := c.Request().Context()

	position, err := h.service.Unassign(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to unassign booking"))
	}

	return c.JSON(http.StatusOK, position)
}

func (h *PositionHandler) Ignore(c echo.Context) error {
	ctx := c.Request().Context()

	position, err := h.service.Ignore(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to ignore position"))
	}

	return c.JSON(http.StatusOK, position)
}

func (h *PositionHandler) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()

	var draft service.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	booking, err := h.service.CreateBookingFromPosition(ctx, c.Param("id"), draft)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to create booking"))
	}

	return c.JSON(http.StatusCreated, booking)
}
