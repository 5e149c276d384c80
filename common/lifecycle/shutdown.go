package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Task is one step of an ordered shutdown.
type Task struct {
	Name     string
	Timeout  time.Duration
	Shutdown func(context.Context) error
}

// WaitForGracefulShutdown blocks until SIGINT or SIGTERM (or ctx is done),
// then runs tasks in order within totalTimeout.
func WaitForGracefulShutdown(ctx context.Context, totalTimeout time.Duration, tasks ...Task) error {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	logrus.WithField("cause", context.Cause(sigCtx)).Info("Received shutdown signal, initiating graceful shutdown...")
	return Shutdown(totalTimeout, tasks...)
}

// Shutdown runs tasks sequentially. Each task gets its own timeout bounded by
// the overall budget; once the budget is spent the remaining tasks are skipped.
func Shutdown(totalTimeout time.Duration, tasks ...Task) error {
	logger := logrus.StandardLogger()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), totalTimeout)
	defer cancel()

	var shutdownErrs error
	for _, task := range tasks {
		if task.Shutdown == nil {
			logger.Debugf("Skipping shutdown for %s (nil function)", task.Name)
			continue
		}

		taskCtx, taskCancel := context.WithTimeout(shutdownCtx, task.Timeout)
		logger.Infof("Attempting to shut down %s (timeout: %s)...", task.Name, task.Timeout)
		if err := task.Shutdown(taskCtx); err != nil {
			logger.WithError(err).Errorf("Error during %s shutdown", task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("%s shutdown error: %w", task.Name, err))
			if errors.Is(err, context.DeadlineExceeded) {
				logger.Warnf("%s shutdown timed out after %s", task.Name, task.Timeout)
			}
		} else {
			logger.Infof("%s shutdown complete", task.Name)
		}
		taskCancel()

		if shutdownCtx.Err() != nil {
			logger.Warnf("Overall shutdown timeout (%s) exceeded during %s shutdown. Aborting further steps.", totalTimeout, task.Name)
			shutdownErrs = errors.Join(shutdownErrs, fmt.Errorf("overall shutdown timeout exceeded: %w", shutdownCtx.Err()))
			break
		}
	}

	if shutdownErrs != nil {
		logger.WithError(shutdownErrs).Error("Application shutdown completed with errors")
		return shutdownErrs
	}
	logger.Info("Application shutdown completed successfully")
	return nil
}
