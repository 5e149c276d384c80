package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gofiber/fiber/v2"
	oteltrace "go.opentelemetry.io/otel/trace"

	apierrors "github.com/narender/cellar-store/common/apierrors"
	apiresponses "github.com/narender/cellar-store/common/apiresponses"
	commontrace "github.com/narender/cellar-store/common/telemetry/trace"
)

// StatusForAppError maps an AppError's category and code to an HTTP status.
func StatusForAppError(appErr *apierrors.AppError) int {
	if appErr.Category == apierrors.CategoryBusiness {
		switch appErr.Code {
		case apierrors.ErrCodeProductNotFound:
			return http.StatusNotFound
		case apierrors.ErrCodeInsufficientStock,
			apierrors.ErrCodeCartLimitExceeded:
			return http.StatusConflict
		case apierrors.ErrCodeInvalidProductData,
			apierrors.ErrCodeDuplicateProductID:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusBadRequest
		}
	}

	switch appErr.Code {
	case apierrors.ErrCodeDatabaseAccess,
		apierrors.ErrCodeInternalProcessing,
		apierrors.ErrCodeSystemPanic:
		return http.StatusInternalServerError
	case apierrors.ErrCodeServiceUnavailable,
		apierrors.ErrCodeNetworkError:
		return http.StatusServiceUnavailable
	case apierrors.ErrCodeRequestValidation,
		apierrors.ErrCodeMalformedData:
		return http.StatusBadRequest
	case apierrors.ErrCodeRouteNotFound:
		return http.StatusNotFound
	case apierrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case apierrors.ErrCodeResourceConstraint:
		return http.StatusTooManyRequests
	case apierrors.ErrCodeRequestTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// classify turns any error returned by a handler into an AppError.
func classify(err error) *apierrors.AppError {
	var appErr *apierrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var fiberErr *fiber.Error
	var netErr net.Error
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &fiberErr):
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return apierrors.NewApplicationError(apierrors.ErrCodeRouteNotFound, fiberErr.Message, err)
		case fiber.StatusMethodNotAllowed:
			return apierrors.NewApplicationError(apierrors.ErrCodeMethodNotAllowed, fiberErr.Message, err)
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, fiberErr.Message, err)
		case fiber.StatusRequestTimeout:
			return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, fiberErr.Message, err)
		case fiber.StatusTooManyRequests:
			return apierrors.NewApplicationError(apierrors.ErrCodeResourceConstraint, fiberErr.Message, err)
		default:
			return apierrors.NewApplicationError(apierrors.ErrCodeUnknown, fiberErr.Message, err)
		}
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, "Invalid data format in request", err)
	case errors.As(err, &netErr):
		return apierrors.NewApplicationError(apierrors.ErrCodeNetworkError, "Network connectivity issue occurred", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request processing timed out", err)
	case errors.Is(err, context.Canceled):
		return apierrors.NewApplicationError(apierrors.ErrCodeRequestTimeout, "Request was canceled", err)
	default:
		return apierrors.NewApplicationError(apierrors.ErrCodeUnknown, "An unexpected error occurred", err)
	}
}

// ErrorHandler renders every handler error as the standard error envelope.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		ctx := c.UserContext()
		appErr := classify(err)
		statusCode := StatusForAppError(appErr)

		attrs := []slog.Attr{
			slog.String("error_code", appErr.Code),
			slog.String("category", string(appErr.Category)),
			slog.String("message", appErr.Message),
			slog.Int("status_code", statusCode),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("request_id", RequestIDFrom(c)),
		}
		if cause := appErr.Unwrap(); cause != nil {
			attrs = append(attrs, slog.String("cause", cause.Error()))
		}
		if len(appErr.Context) > 0 {
			attrs = append(attrs, slog.Any("context", appErr.Context))
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.LogAttrs(ctx, slog.LevelError, fmt.Sprintf("HTTP Error: %s %s -> %d", c.Method(), c.Path(), statusCode), attrs...)
			commontrace.RecordSpanError(oteltrace.SpanFromContext(ctx), err)
		case appErr.IsBusiness():
			logger.LogAttrs(ctx, slog.LevelWarn, "Business rule violation", attrs...)
		default:
			logger.LogAttrs(ctx, slog.LevelWarn, "Request rejected", attrs...)
		}

		message := appErr.Message
		if statusCode >= http.StatusInternalServerError && appErr.Code == apierrors.ErrCodeUnknown {
			message = "An unexpected error occurred. Please try again later."
		}

		return c.Status(statusCode).JSON(
			apiresponses.NewErrorResponse(appErr.Code, message).WithRequestID(RequestIDFrom(c)),
		)
	}
}
