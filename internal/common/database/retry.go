package database

import (
	"context"
	"time"

	"alumni-connect-workers/internal/common/logger"
)

// Pinger is implemented by every client in this package.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitFor pings p until it answers, doubling the delay after each failure.
func WaitFor(ctx context.Context, name string, p Pinger, attempts int, delay time.Duration, log logger.Logger) error {
	var err error
	for i := 1; i <= attempts; i++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = p.Ping(pingCtx)
		cancel()
		if err == nil {
			log.Info("dependency ready", map[string]interface{}{"dependency": name, "attempt": i})
			return nil
		}

		log.Warn("dependency not ready", map[string]interface{}{
			"dependency": name,
			"attempt":    i,
			"error":      err,
		})
		if i == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
