package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sitegen_server/internal/textscan"
	"sitegen_server/internal/types"
)

// TemplateProvider fills prop schemas from the static per-industry content
// tables. No I/O, always succeeds; it is both the default provider and the
// last-resort fallback for the model-backed ones.
type TemplateProvider struct{}

func NewTemplateProvider() *TemplateProvider { return &TemplateProvider{} }

func (p *TemplateProvider) Name() string { return string(types.ProviderTemplate) }

func (p *TemplateProvider) GenerateStrategy(_ context.Context, req types.GenerationRequest) (string, error) {
	c := contentFor(req.Industry)

	name := req.BusinessName
	if name == "" {
		name = textscan.ExtractName(req.Description, req.Industry)
	}
	usps := req.UniqueSellingPoints
	if len(usps) == 0 {
		usps = []string{c.Tagline, c.CoreConcept}
	}

	strategy := types.BrandStrategy{
		Identity: types.BrandIdentity{
			Name:        name,
			Tagline:     c.Tagline,
			CoreConcept: c.CoreConcept,
			ToneOfVoice: c.ToneOfVoice,
		},
		Sitemap: append([]string(nil), c.Sitemap...),
		KeyMessages: types.KeyMessages{
			UniqueSellingPoints: usps,
			HeroHeadline:        c.HeroHeadline,
			AboutStory:          c.AboutStory,
		},
		Visuals: types.VisualDirection{
			Mood:          c.Mood,
			ImageKeywords: append([]string(nil), c.ImageKeywords...),
		},
	}

	out, err := json.Marshal(strategy)
	if err != nil {
		return "", fmt.Errorf("marshal template strategy: %w", err)
	}
	return string(out), nil
}

func (p *TemplateProvider) FillProps(_ context.Context, creq ContentRequest) (string, error) {
	c := contentFor(creq.Industry)

	name := creq.BusinessName
	if name == "" {
		name = textscan.ExtractName(creq.Description, creq.Industry)
	}

	props := make(map[string]any, len(creq.PropsSchema))
	for prop, hint := range creq.PropsSchema {
		props[prop] = p.valueFor(prop, hint, name, c)
	}

	out, err := json.Marshal(props)
	if err != nil {
		return "", fmt.Errorf("marshal template props: %w", err)
	}
	return string(out), nil
}

// valueFor picks content by prop name first, then falls back on the type
// hint. Image-typed props stay as search-keyword strings for the external
// image collaborator to rewrite.
func (p *TemplateProvider) valueFor(prop, hint, businessName string, c industryContent) any {
	switch key := strings.ToLower(prop); {
	case key == "logotext" || key == "businessname" || key == "name":
		return businessName
	case key == "tagline":
		return c.Tagline
	case key == "headline":
		return c.HeroHeadline
	case key == "subheadline":
		return c.HeroSub
	case key == "ctalabel":
		return c.CTALabel
	case strings.Contains(key, "story") || key == "mission" || key == "intro":
		return c.AboutStory
	case key == "title":
		return c.AboutTitle
	case key == "links":
		return c.Sitemap
	case key == "categories":
		return itemTitles(c.Items)
	case key == "testimonials":
		return c.Testimonials
	case key == "address":
		return c.Address
	case key == "phone":
		return c.Phone
	case key == "email":
		return c.Email
	case key == "hours":
		return c.Hours
	case key == "copyright":
		return fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), businessName)
	case key == "images":
		return c.ImageKeywords
	case key == "videokeywords":
		return strings.Join(c.ImageKeywords, ", ")
	case hint == "image":
		if len(c.ImageKeywords) > 0 {
			return c.ImageKeywords[0]
		}
		return "business"
	case hint == "item[]":
		return c.Items
	case hint == "string[]":
		return itemTitles(c.Items)
	case hint == "number":
		return 0
	case hint == "text":
		return c.AboutStory
	default:
		return c.Tagline
	}
}

func itemTitles(items []contentItem) []string {
	titles := make([]string, len(items))
	for i, it := range items {
		titles[i] = it.Title
	}
	return titles
}
