package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	apierrors "github.com/narender/cellar-store/common/apierrors"
)

// RecoverMiddleware converts a panic in a downstream handler into a
// SYSTEM_PANIC error handled by the app's ErrorHandler.
func RecoverMiddleware(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("panic: %v", r)
			}

			logger.ErrorContext(c.UserContext(), "CRITICAL: Unhandled panic recovered",
				slog.String("error", cause.Error()),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Path()),
				slog.String("method", c.Method()),
			)

			err = apierrors.NewApplicationError(
				apierrors.ErrCodeSystemPanic,
				"A critical system error occurred.",
				cause)
		}()
		return c.Next()
	}
}
