// Package provider abstracts the heterogeneous content sources that fill a
// website: a remote model API, a locally hosted model, and a deterministic
// template fill. All three sit behind one interface; a failover decorator
// implements the fallback policy.
package provider

import (
	"context"
	"fmt"

	"sitegen_server/internal/types"
)

// ContentRequest describes one props-generation call for a resolved variant.
type ContentRequest struct {
	SectionType        string
	VariantName        string
	VariantDescription string
	// PropsSchema maps prop name to type hint; the provider must return a
	// JSON object with exactly these keys.
	PropsSchema    map[string]string
	Industry       string
	Style          string
	BusinessName   string
	Description    string
	ToneOfVoice    string
	TargetAudience string
}

// Provider is a pluggable content source. Both methods return raw text
// expected to contain a JSON object; callers own parsing and validation.
type Provider interface {
	Name() string
	// GenerateStrategy produces the brand-strategy JSON for a request.
	GenerateStrategy(ctx context.Context, req types.GenerationRequest) (string, error)
	// FillProps produces the props JSON for one section.
	FillProps(ctx context.Context, creq ContentRequest) (string, error)
}

// UnavailableError marks a provider that cannot serve right now: network
// failure, timeout, or authentication rejection. It triggers the fallback
// policy instead of failing the request.
type UnavailableError struct {
	Provider string
	Err      error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("provider %s unavailable: %v", e.Provider, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
