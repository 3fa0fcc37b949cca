package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/grachmannico95/statement-reconciler/internal/domain"
	"github.com/grachmannico95/statement-reconciler/internal/parser"
	"github.com/labstack/echo/v4"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPositionLocked):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnsupportedFormat),
		errors.Is(err, domain.ErrInvalidFile),
		errors.Is(err, domain.ErrNoValidRows),
		errors.Is(err, domain.ErrInvalidDatevFile),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(err error, fallback string) map[string]interface{} {
	if statusFor(err) == http.StatusInternalServerError {
		return map[string]interface{}{"error": fallback}
	}

	body := map[string]interface{}{"error": err.Error()}
	var fileErr *parser.FileError
	if errors.As(err, &fileErr) {
		body["format"] = fileErr.Format
		body["details"] = fileErr.Messages
	}
	return body
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": message,
	})
}

// readUpload returns the uploaded file: the "file" part of a multipart form,
// or the raw request body otherwise.
func readUpload(c echo.Context) ([]byte, string, error) {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			return nil, "", err
		}

		src, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer src.Close()

		content, err := io.ReadAll(src)
		return content, file.Filename, err
	}

	content, err := io.ReadAll(c.Request().Body)
	return content, "", err
}
