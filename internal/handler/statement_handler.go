package handler

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/service"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/labstack/echo/v4"
)

type StatementHandler struct {
	service service.StatementService
	logger  *logger.Logger
}

func NewStatementHandler(service service.StatementService, log *logger.Logger) *StatementHandler {
	return &StatementHandler{
		service: service,
		logger:  log,
	}
}

func (h *StatementHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	var input service.CreateStatementInput
	if err := c.Bind(&input); err != nil {
		return badRequest(c, "invalid request body")
	}

	statement, err := h.service.CreateStatement(ctx, input)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to create statement"))
	}

	return c.JSON(http.StatusCreated, statement)
}

func (h *StatementHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := domain.StatementFilter{
		CompanyID: c.QueryParam("company_id"),
		Kind:      domain.StatementKind(c.QueryParam("kind")),
		Status:    domain.StatementStatus(c.QueryParam("status")),
	}

	statements, err := h.service.ListStatements(ctx, filter)
	if err != nil {
		h.logger.Error(ctx, "Failed to list statements",
			"error", err,
		)
		return c.JSON(statusFor(err), errorBody(err, "failed to list statements"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": statements,
		"total": len(statements),
	})
}

func (h *StatementHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.service.Stats(ctx, c.QueryParam("company_id"))
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to compute statistics"))
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *StatementHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	detail, err := h.service.GetStatement(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to get statement"))
	}

	return c.JSON(http.StatusOK, detail)
}

func (h *StatementHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.service.DeleteStatement(ctx, c.Param("id")); err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to delete statement"))
	}

	return c.NoContent(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status domain.StatementStatus `json:"status"`
}

func (h *StatementHandler) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	statement, err := h.service.UpdateStatementStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to update statement status"))
	}

	return c.JSON(http.StatusOK, statement)
}

func (h *StatementHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()
	statementID := c.Param("id")

	content, fileName, err := readUpload(c)
	if err != nil {
		h.logger.Error(ctx, "Failed to read upload",
			"statement_id", statementID,
			"error", err,
		)
		return badRequest(c, "file is required")
	}

	var opts service.ImportOptions
	if raw := c.QueryParam("auto_match"); raw != "" {
		autoMatch, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "auto_match must be true or false")
		}
		opts.AutoMatch = &autoMatch
	}

	h.logger.Info(ctx, "Handling import request",
		"statement_id", statementID,
		"file_name", fileName,
		"bytes", len(content),
	)

	result, err := h.service.ImportCSV(ctx, statementID, content, opts)
	if err != nil {
		if errors.Is(err, domain.ErrNoValidRows) && result != nil {
			return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  err.Error(),
				"result": result,
			})
		}
		return c.JSON(statusFor(err), errorBody(err, "failed to import statement"))
	}

	return c.JSON(http.StatusOK, result)
}

func (h *StatementHandler) Preview(c echo.Context) error {
	ctx := c.Request().Context()

	content, _, err := readUpload(c)
	if err != nil {
		return badRequest(c, "file is required")
	}

	preview, err := h.service.PreviewCSV(ctx, content)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to parse statement"))
	}

	return c.JSON(http.StatusOK, preview)
}

func (h *StatementHandler) ExportPositions(c echo.Context) error {
	ctx := c.Request().Context()
	statementID := c.Param("id")

	var buf bytes.Buffer
	if err := h.service.ExportPositionsCSV(ctx, statementID, &buf); err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to export positions"))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="positions_`+statementID+`.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
