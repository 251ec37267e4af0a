package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// HTTPStatus maps a failure kind to its transport code. The mapping is total
// and stable: every kind has exactly one code, and KindInternal is the
// catch-all.
func HTTPStatus(k domain.Kind) int {
	switch k {
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindPermissionDenied:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindAlreadyExists:
		return http.StatusConflict
	case domain.KindFailedPrecondition:
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}

// ErrorBody is the error envelope every internal service returns. The kind
// string travels verbatim so the taxonomy survives the hop exactly; the HTTP
// status is a convenience for generic clients.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// EncodeError turns err into its wire envelope and status code. Internal and
// unclassified errors collapse to a generic message so no detail leaks.
func EncodeError(err error) (int, ErrorBody) {
	kind := domain.KindOf(err)
	msg := err.Error()
	if kind == domain.KindInternal {
		msg = "internal server error"
	}
	return HTTPStatus(kind), ErrorBody{Error: ErrorDetail{Kind: kind.String(), Message: msg}}
}

// DecodeError reconstructs the classified error from a response body. A body
// that is not a valid envelope means the peer failed outside its own error
// translator, which is by definition internal.
func DecodeError(statusCode int, body []byte) error {
	var envelope ErrorBody
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error.Kind == "" {
		return domain.Ef(domain.KindInternal, "internal call failed with status %d", statusCode)
	}
	return domain.E(domain.ParseKind(envelope.Error.Kind), envelope.Error.Message)
}

// NewHTTPErrorHandler returns the echo error handler used by the internal
// services: classified errors keep their kind in the envelope, everything
// else is logged and collapsed to an internal failure.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var de *domain.Error
		if errors.As(err, &de) {
			if de.Kind == domain.KindInternal {
				log.Error().Err(err).Str("path", c.Path()).Msg("internal error")
			}
			code, body := EncodeError(de)
			_ = c.JSON(code, body)
			return
		}

		// Echo's own errors: router 404, bind failures and the like.
		var he *echo.HTTPError
		if errors.As(err, &he) {
			kind := kindFromHTTP(he.Code)
			_ = c.JSON(he.Code, ErrorBody{Error: ErrorDetail{
				Kind:    kind.String(),
				Message: fmt.Sprintf("%v", he.Message),
			}})
			return
		}

		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
		code, body := EncodeError(err)
		_ = c.JSON(code, body)
	}
}

// kindFromHTTP maps transport codes produced outside the domain (echo
// router, binder) back onto the taxonomy.
func kindFromHTTP(statusCode int) domain.Kind {
	switch statusCode {
	case http.StatusBadRequest:
		return domain.KindInvalidArgument
	case http.StatusUnauthorized:
		return domain.KindUnauthenticated
	case http.StatusForbidden:
		return domain.KindPermissionDenied
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusConflict:
		return domain.KindAlreadyExists
	case http.StatusPreconditionFailed:
		return domain.KindFailedPrecondition
	default:
		return domain.KindInternal
	}
}
