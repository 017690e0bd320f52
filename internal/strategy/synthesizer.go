// Package strategy synthesizes a brand/content strategy from a raw
// generation request via the active provider. Synthesis is all-or-nothing:
// downstream prompts embed every strategy field, so a partial document is
// rejected and the caller degrades to raw request parameters instead.
package strategy

import (
	"context"
	"encoding/json"
	"fmt"

	"sitegen_server/internal/provider"
	"sitegen_server/internal/types"
	"sitegen_server/internal/utils"
)

// GenerationError means the provider call failed or returned content that
// does not parse as a complete strategy document.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("strategy generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("strategy generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Synthesize asks the provider for a brand strategy and validates the result.
// Errors are always *GenerationError; callers catch it and proceed without a
// strategy.
func Synthesize(ctx context.Context, p provider.Provider, req types.GenerationRequest) (*types.BrandStrategy, error) {
	raw, err := p.GenerateStrategy(ctx, req)
	if err != nil {
		return nil, &GenerationError{Reason: "provider call failed", Err: err}
	}

	var s types.BrandStrategy
	if err := json.Unmarshal([]byte(utils.ExtractJSON(raw)), &s); err != nil {
		return nil, &GenerationError{Reason: "response is not valid strategy JSON", Err: err}
	}

	if err := validate(&s); err != nil {
		return nil, &GenerationError{Reason: err.Error()}
	}
	return &s, nil
}

// validate enforces the all-or-nothing contract: every strategy field must be
// populated.
func validate(s *types.BrandStrategy) error {
	switch {
	case s.Identity.Name == "", s.Identity.Tagline == "",
		s.Identity.CoreConcept == "", s.Identity.ToneOfVoice == "":
		return fmt.Errorf("incomplete identity")
	case len(s.Sitemap) == 0:
		return fmt.Errorf("empty sitemap")
	case s.KeyMessages.HeroHeadline == "" || s.KeyMessages.AboutStory == "":
		return fmt.Errorf("incomplete key messages")
	case s.Visuals.Mood == "" || len(s.Visuals.ImageKeywords) == 0:
		return fmt.Errorf("incomplete visuals")
	}
	return nil
}
