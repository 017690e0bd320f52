package types

import "time"

// ProviderKind selects which content source fills the website.
type ProviderKind string

const (
	ProviderTemplate  ProviderKind = "template"
	ProviderLocalLLM  ProviderKind = "local-llm"
	ProviderRemoteLLM ProviderKind = "remote-llm"
)

// GenerationRequest is the immutable input of one pipeline run.
// Description and Industry are always required; everything else may be empty.
type GenerationRequest struct {
	Description         string       `json:"description" binding:"required"`
	BusinessName        string       `json:"businessName"`
	Industry            string       `json:"industry" binding:"required"`
	Style               string       `json:"style"`
	Provider            ProviderKind `json:"provider"`
	TargetAudience      string       `json:"targetAudience"`
	BusinessGoals       []string     `json:"businessGoals"`
	UniqueSellingPoints []string     `json:"uniqueSellingPoints"`
}

// BrandIdentity is the naming/tone half of a synthesized strategy.
type BrandIdentity struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	CoreConcept string `json:"coreConcept"`
	ToneOfVoice string `json:"toneOfVoice"`
}

// KeyMessages carries the copy angles every section prompt leans on.
type KeyMessages struct {
	UniqueSellingPoints []string `json:"uniqueSellingPoints"`
	HeroHeadline        string   `json:"heroHeadline"`
	AboutStory          string   `json:"aboutStory"`
}

// VisualDirection steers imagery and mood wording.
type VisualDirection struct {
	Mood          string   `json:"mood"`
	ImageKeywords []string `json:"imageKeywords"`
}

// BrandStrategy is produced once per request by the strategy synthesizer.
// After a successful synthesis every field is non-empty; a failed synthesis
// yields no strategy at all and the pipeline falls back to raw request fields.
type BrandStrategy struct {
	Identity    BrandIdentity   `json:"identity"`
	Sitemap     []string        `json:"sitemap"`
	KeyMessages KeyMessages     `json:"keyMessages"`
	Visuals     VisualDirection `json:"visuals"`
}

// GeneratedSection is one populated website section. Immutable once appended
// to the result list; never created for a blueprint entry that failed.
type GeneratedSection struct {
	Type    string         `json:"type"`
	Variant string         `json:"variant"`
	Props   map[string]any `json:"props"`
}

// WebsiteMetadata describes the assembled document.
type WebsiteMetadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Style       string    `json:"style"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// GeneratedWebsite is the pipeline output. Components keep blueprint order;
// the pipeline exclusively owns the slice until it is returned.
type GeneratedWebsite struct {
	Components []GeneratedSection `json:"components"`
	Metadata   WebsiteMetadata    `json:"metadata"`
}
