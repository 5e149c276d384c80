package lifecycle

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Shutdowner is anything with a context-aware Shutdown, such as a server.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// FiberShutdownAdapter adapts a *fiber.App to the Shutdowner interface.
type FiberShutdownAdapter struct {
	App *fiber.App
}

func (a *FiberShutdownAdapter) Shutdown(ctx context.Context) error {
	if a.App == nil {
		return nil
	}
	return a.App.ShutdownWithContext(ctx)
}
