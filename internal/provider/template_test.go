package provider

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/types"
)

func TestTemplateProvider_StrategyIsCompleteAndValid(t *testing.T) {
	p := NewTemplateProvider()

	out, err := p.GenerateStrategy(context.Background(), types.GenerationRequest{
		Description: "Bella Vista is an Italian restaurant",
		Industry:    "restaurant",
	})
	require.NoError(t, err)

	var s types.BrandStrategy
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Bella Vista", s.Identity.Name)
	assert.NotEmpty(t, s.Identity.Tagline)
	assert.NotEmpty(t, s.Identity.CoreConcept)
	assert.NotEmpty(t, s.Identity.ToneOfVoice)
	assert.NotEmpty(t, s.Sitemap)
	assert.NotEmpty(t, s.KeyMessages.HeroHeadline)
	assert.NotEmpty(t, s.KeyMessages.AboutStory)
	assert.NotEmpty(t, s.Visuals.Mood)
	assert.NotEmpty(t, s.Visuals.ImageKeywords)
}

func TestTemplateProvider_FillPropsCoversSchema(t *testing.T) {
	p := NewTemplateProvider()

	out, err := p.FillProps(context.Background(), ContentRequest{
		SectionType: "HeroSection",
		VariantName: "ImageHero",
		PropsSchema: map[string]string{
			"headline":    "string",
			"subheadline": "text",
			"ctaLabel":    "string",
			"image":       "image",
		},
		Industry:     "restaurant",
		BusinessName: "Bella Vista",
	})
	require.NoError(t, err)

	var props map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &props))
	for _, key := range []string{"headline", "subheadline", "ctaLabel", "image"} {
		assert.Contains(t, props, key)
		assert.NotEmpty(t, props[key], key)
	}
	// Image slots stay as search phrases for the external image collaborator.
	assert.IsType(t, "", props["image"])
}

func TestTemplateProvider_ItemListProps(t *testing.T) {
	p := NewTemplateProvider()

	out, err := p.FillProps(context.Background(), ContentRequest{
		SectionType: "MenuSection",
		VariantName: "TabbedMenu",
		PropsSchema: map[string]string{"title": "string", "items": "item[]", "categories": "string[]"},
		Industry:    "restaurant",
	})
	require.NoError(t, err)

	var props struct {
		Title      string        `json:"title"`
		Items      []contentItem `json:"items"`
		Categories []string      `json:"categories"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &props))
	assert.NotEmpty(t, props.Items)
	assert.NotEmpty(t, props.Categories)
	for _, it := range props.Items {
		assert.NotEmpty(t, it.Title)
		assert.NotEmpty(t, it.Description)
	}
}

func TestTemplateProvider_UnknownIndustryUsesGenericContent(t *testing.T) {
	p := NewTemplateProvider()

	out, err := p.GenerateStrategy(context.Background(), types.GenerationRequest{
		Description: "we fix pipes",
		Industry:    "plumbing",
	})
	require.NoError(t, err)

	var s types.BrandStrategy
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "Your Business", s.Identity.Name)
	assert.Equal(t, genericContent.Tagline, s.Identity.Tagline)
}
