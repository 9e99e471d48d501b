package rails

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ARLocke322/Payment-Router/internal/apperrors"
	"github.com/sony/gobreaker"
)

// GuardConfig configures the circuit breakers and the call timeout around rails.
type GuardConfig struct {
	// Timeout bounds a single Execute call. Zero disables it.
	Timeout time.Duration
	// ConsecutiveFailures trips a breaker open.
	ConsecutiveFailures uint32
	// OpenTimeout is how long a breaker stays open before probing again.
	OpenTimeout time.Duration
	// HalfOpenRequests is the number of trial requests allowed while half-open.
	HalfOpenRequests uint32
}

// DefaultGuardConfig returns a 10s timeout and a breaker tripping after 5 failures.
func DefaultGuardConfig() GuardConfig {
	return GuardConfig{
		Timeout:             10 * time.Second,
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
		HalfOpenRequests:    1,
	}
}

// Guard runs rail executions behind one circuit breaker per rail name and an
// optional timeout. Only errors count against a breaker; a failed outcome is a
// normal answer from the rail.
type Guard struct {
	cfg      GuardConfig
	logger   *slog.Logger
	mu       sync.RWMutex
	breakers map[string]*gobreaker.CircuitBreaker
}

// NewGuard creates a guard. A nil logger uses slog.Default().
func NewGuard(cfg GuardConfig, logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = DefaultGuardConfig().ConsecutiveFailures
	}
	if cfg.HalfOpenRequests == 0 {
		cfg.HalfOpenRequests = 1
	}
	return &Guard{
		cfg:      cfg,
		logger:   logger,
		breakers: make(map[string]*gobreaker.CircuitBreaker),
	}
}

func (g *Guard) breaker(name string) *gobreaker.CircuitBreaker {
	g.mu.RLock()
	cb, ok := g.breakers[name]
	g.mu.RUnlock()
	if ok {
		return cb
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if cb, ok = g.breakers[name]; ok {
		return cb
	}

	threshold := g.cfg.ConsecutiveFailures
	cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "rail-" + name,
		MaxRequests: g.cfg.HalfOpenRequests,
		Timeout:     g.cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isRailHealthy,
		OnStateChange: func(_ string, from, to gobreaker.State) {
			g.logger.Warn("Rail circuit breaker state changed",
				slog.String("rail", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
	})
	g.breakers[name] = cb
	return cb
}

// isRailHealthy reports whether err says nothing bad about the rail. A caller
// abandoning its own request is not a rail failure.
func isRailHealthy(err error) bool {
	return err == nil || errors.Is(err, context.Canceled)
}

// State returns the breaker state for a rail name. Rails never executed are closed.
func (g *Guard) State(name string) gobreaker.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if cb, ok := g.breakers[name]; ok {
		return cb.State()
	}
	return gobreaker.StateClosed
}

// Execute submits instr to rail. A timeout yields an error wrapping
// apperrors.ErrRailTimeout; an open breaker yields a failed Outcome.
func (g *Guard) Execute(ctx context.Context, rail PaymentRail, instr Instruction, rnd RandomSource) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := g.breaker(rail.Name()).Execute(func() (any, error) {
		return g.call(ctx, rail, instr, rnd)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			g.logger.Warn("Rail call rejected by circuit breaker",
				slog.String("rail", rail.Name()),
				slog.String("payment_method", instr.PaymentMethodName))
			return &Outcome{
				Status:  OutcomeFailed,
				Message: methodLabel(instr, rail.Name()) + " temporarily unavailable (circuit open)",
			}, nil
		}
		return nil, err
	}
	return result.(*Outcome), nil
}

func (g *Guard) call(ctx context.Context, rail PaymentRail, instr Instruction, rnd RandomSource) (*Outcome, error) {
	if g.cfg.Timeout <= 0 {
		return rail.Execute(ctx, instr, rnd)
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	type result struct {
		outcome *Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := rail.Execute(ctx, instr, rnd)
		done <- result{outcome: outcome, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && errors.Is(r.err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %s", apperrors.ErrRailTimeout, rail.Name(), g.cfg.Timeout)
		}
		return r.outcome, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s after %s", apperrors.ErrRailTimeout, rail.Name(), g.cfg.Timeout)
		}
		return nil, ctx.Err()
	}
}
