package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/statement-reconciler/pkg/logger"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-ID"

// RequestID puts a trace id into the request context, taken from the
// X-Trace-ID or X-Request-ID header or generated. A company_id query
// parameter is attached to the context as well.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(HeaderTraceID)
			if traceID == "" {
				traceID = req.Header.Get(echo.HeaderXRequestID)
			}
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(req.Context(), traceID)
			if companyID := c.QueryParam("company_id"); companyID != "" {
				ctx = logger.WithCompanyID(ctx, companyID)
			}
			c.SetRequest(req.WithContext(ctx))

			c.Response().Header().Set(HeaderTraceID, traceID)

			return next(c)
		}
	}
}
