package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_RunsTasksInOrder(t *testing.T) {
	var order []string
	err := Shutdown(time.Second,
		Task{Name: "server", Timeout: time.Second, Shutdown: func(context.Context) error {
			order = append(order, "server")
			return nil
		}},
		Task{Name: "skipped", Timeout: time.Second},
		Task{Name: "telemetry", Timeout: time.Second, Shutdown: func(context.Context) error {
			order = append(order, "telemetry")
			return nil
		}},
	)

	require.NoError(t, err)
	assert.Equal(t, []string{"server", "telemetry"}, order)
}

func TestShutdown_CollectsErrors(t *testing.T) {
	boom := errors.New("boom")
	called := false

	err := Shutdown(time.Second,
		Task{Name: "server", Timeout: time.Second, Shutdown: func(context.Context) error { return boom }},
		Task{Name: "telemetry", Timeout: time.Second, Shutdown: func(context.Context) error {
			called = true
			return nil
		}},
	)

	assert.ErrorIs(t, err, boom)
	assert.True(t, called, "later tasks still run after a failure")
}

func TestShutdown_StopsWhenBudgetSpent(t *testing.T) {
	called := false

	err := Shutdown(20*time.Millisecond,
		Task{Name: "slow", Timeout: time.Second, Shutdown: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
		Task{Name: "telemetry", Timeout: time.Second, Shutdown: func(context.Context) error {
			called = true
			return nil
		}},
	)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, called)
}

func TestWaitForGracefulShutdown_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := false
	err := WaitForGracefulShutdown(ctx, time.Second, Task{Name: "server", Timeout: time.Second, Shutdown: func(context.Context) error {
		done = true
		return nil
	}})

	require.NoError(t, err)
	assert.True(t, done)
}

func TestFiberShutdownAdapter_NilApp(t *testing.T) {
	a := &FiberShutdownAdapter{}
	assert.NoError(t, a.Shutdown(context.Background()))

	a = &FiberShutdownAdapter{App: fiber.New()}
	assert.NoError(t, a.Shutdown(context.Background()))
}
