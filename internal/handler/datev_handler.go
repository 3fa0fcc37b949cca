package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/grachmannico95/statement-reconciler/internal/datev"
	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/service"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/labstack/echo/v4"
)

const charsetWindows1252 = "windows-1252"

type DatevHandler struct {
	service service.DatevService
	logger  *logger.Logger
}

func NewDatevHandler(service service.DatevService, log *logger.Logger) *DatevHandler {
	return &DatevHandler{
		service: service,
		logger:  log,
	}
}

func (h *DatevHandler) Parse(c echo.Context) error {
	ctx := c.Request().Context()

	content, _, err := readUpload(c)
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.service.ParseDatev(ctx, content)
	if err != nil {
		return h.parseFailure(c, res, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (h *DatevHandler) Import(c echo.Context) error {
	ctx := c.Request().Context()

	companyID := strings.TrimSpace(c.QueryParam("company_id"))
	if companyID == "" {
		return badRequest(c, "company_id is required")
	}

	content, fileName, err := readUpload(c)
	if err != nil {
		return badRequest(c, "file is required")
	}

	h.logger.Info(ctx, "Handling DATEV import request",
		"company_id", companyID,
		"file_name", fileName,
		"bytes", len(content),
	)

	res, err := h.service.ParseDatev(ctx, content)
	if err != nil {
		return h.parseFailure(c, res, err)
	}

	result, err := h.service.ImportDatev(ctx, companyID, res.Records)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to import DATEV file"))
	}

	return c.JSON(http.StatusOK, result)
}

func (h *DatevHandler) Export(c echo.Context) error {
	ctx := c.Request().Context()

	req := service.ExportRequest{
		CompanyID: strings.TrimSpace(c.QueryParam("company_id")),
		Status:    domain.BookingStatus(c.QueryParam("status")),
	}
	if req.CompanyID == "" {
		return badRequest(c, "company_id is required")
	}

	var err error
	if req.From, err = queryDate(c, "from"); err != nil {
		return badRequest(c, "from must be YYYY-MM-DD")
	}
	if req.To, err = queryDate(c, "to"); err != nil {
		return badRequest(c, "to must be YYYY-MM-DD")
	}
	if raw := c.QueryParam("accounts"); raw != "" {
		for _, account := range strings.Split(raw, ",") {
			if account = strings.TrimSpace(account); account != "" {
				req.Accounts = append(req.Accounts, account)
			}
		}
	}

	charset := strings.ToLower(c.QueryParam("charset"))
	if charset != "" && charset != "utf-8" && charset != charsetWindows1252 {
		return badRequest(c, "charset must be utf-8 or windows-1252")
	}

	result, err := h.service.ExportDatev(ctx, req)
	if err != nil {
		return c.JSON(statusFor(err), errorBody(err, "failed to export bookings"))
	}

	body := []byte(result.Content)
	contentType := "text/csv; charset=utf-8"
	if charset == charsetWindows1252 {
		body, err = datev.ToWindows1252(result.Content)
		if err != nil {
			h.logger.Error(ctx, "Failed to transcode DATEV export",
				"error", err,
			)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to encode export",
			})
		}
		contentType = "text/csv; charset=windows-1252"
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.FileName+`"`)
	c.Response().Header().Set("X-Export-Count", strconv.Itoa(result.Count))
	return c.Blob(http.StatusOK, contentType, body)
}

func (h *DatevHandler) parseFailure(c echo.Context, res *datev.DecodeResult, err error) error {
	if errors.Is(err, domain.ErrInvalidDatevFile) && res != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  err.Error(),
			"result": res,
		})
	}
	return c.JSON(statusFor(err), errorBody(err, "failed to parse DATEV file"))
}

func queryDate(c echo.Context, name string) (*time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
