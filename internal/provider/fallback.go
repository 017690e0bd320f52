package provider

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"sitegen_server/internal/types"
)

// Failover wraps a primary provider with the template fallback. The first
// UnavailableError switches the active provider to the fallback for the rest
// of the request and marks the result degraded; the failed call itself is
// retried against the fallback, so callers never see the unavailability.
// Create one Failover per pipeline invocation; the switch is per-request
// state, and section fills may hit it concurrently.
type Failover struct {
	fallback Provider
	log      *zap.Logger

	mu       sync.Mutex
	active   Provider
	degraded bool
}

// NewFailover wraps primary with fallback. When primary already is the
// template provider the wrapper is inert.
func NewFailover(primary, fallback Provider, log *zap.Logger) *Failover {
	return &Failover{fallback: fallback, log: log, active: primary}
}

// Degraded reports whether any call fell back to the template provider.
func (f *Failover) Degraded() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.degraded
}

// Name reports the currently active provider.
func (f *Failover) Name() string {
	return f.current().Name()
}

// A per-call deadline expiry counts as unavailability and still falls back;
// the template provider does no I/O, so it can serve the retry even on an
// expired context. Only an explicit caller cancellation skips the switch.
func (f *Failover) GenerateStrategy(ctx context.Context, req types.GenerationRequest) (string, error) {
	out, err := f.current().GenerateStrategy(ctx, req)
	if isUnavailable(err) && !errors.Is(ctx.Err(), context.Canceled) {
		f.switchToFallback(err)
		return f.fallback.GenerateStrategy(ctx, req)
	}
	return out, err
}

func (f *Failover) FillProps(ctx context.Context, creq ContentRequest) (string, error) {
	out, err := f.current().FillProps(ctx, creq)
	if isUnavailable(err) && !errors.Is(ctx.Err(), context.Canceled) {
		f.switchToFallback(err)
		return f.fallback.FillProps(ctx, creq)
	}
	return out, err
}

func (f *Failover) current() Provider {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

func (f *Failover) switchToFallback(cause error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.active == f.fallback {
		return
	}
	f.log.Warn("provider unavailable, switching to template fallback",
		zap.String("provider", f.active.Name()), zap.Error(cause))
	f.active = f.fallback
	f.degraded = true
}

func isUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}
