// Package api is the externally-facing gateway surface: routing, the auth
// guard, role checks, request validation, and translation of classified
// failures into HTTP responses.
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

// errorResponse is the canonical error envelope for all external API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns the gateway error handler:
//   - Classified errors map deterministically onto HTTP status codes, with
//     internal failures collapsed to a generic message.
//   - Echo's own errors (router 404, bind failures) pass through unchanged.
//   - Everything renders the same JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var de *domain.Error
	if errors.As(err, &de) {
		if de.Kind != domain.KindInternal {
			return rpc.HTTPStatus(de.Kind), de.Message
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
