package http

import (
	"errors"
	"net/http"

	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error kind to the HTTP status of the failure envelope.
func statusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindNone:
		return http.StatusOK
	case errs.KindStorage:
	}
	return http.StatusInternalServerError
}

// writeError answers with {ok:false, error}. Storage failures are logged with
// their cause but reported with a generic reason.
func writeError(c echo.Context, err error) error {
	status := statusOf(err)
	reason := err.Error()
	if status == http.StatusInternalServerError {
		c.Logger().Errorf("request failed: %v", err)
		reason = "internal error"
	}
	return c.JSON(status, Result{OK: false, Error: reason})
}

// HTTPErrorHandler renders errors raised by echo itself, such as unknown routes
// or recovered panics, in the same envelope.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			msg = m
		}
		_ = c.JSON(he.Code, Result{OK: false, Error: msg})
		return
	}

	_ = writeError(c, err)
}
