// Package resilience guards calls to backing stores with a circuit breaker.
package resilience

import (
	"context"
	"errors"
	"time"

	"alumni-connect-workers/internal/common/logger"
	"alumni-connect-workers/internal/common/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	// ErrOpen is returned while the breaker rejects calls.
	ErrOpen = gobreaker.ErrOpenState
	// ErrBusy is returned when a half-open breaker is already probing.
	ErrBusy = gobreaker.ErrTooManyRequests
)

type BreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
	// Benign reports errors that must not count as failures, such as a
	// missing row.
	Benign func(error) bool
}

func DefaultBreakerConfig(name string) BreakerConfig {
	return BreakerConfig{
		Name:             name,
		MaxRequests:      3,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

type Breaker struct {
	cb *gobreaker.CircuitBreaker[interface{}]
}

func NewBreaker(cfg BreakerConfig, log logger.Logger) *Breaker {
	benign := cfg.Benign
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return benign != nil && benign(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.StoreBreakerState.WithLabelValues(name).Set(float64(to))
			log.Warn("circuit breaker state changed", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	}
	metrics.StoreBreakerState.WithLabelValues(cfg.Name).Set(float64(gobreaker.StateClosed))
	return &Breaker{cb: gobreaker.NewCircuitBreaker[interface{}](settings)}
}

func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Call runs fn through the breaker.
func Call[T any](b *Breaker, fn func() (T, error)) (T, error) {
	res, err := b.cb.Execute(func() (interface{}, error) {
		return fn()
	})
	v, _ := res.(T)
	return v, err
}
