package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitegen_server/internal/provider"
	"sitegen_server/internal/types"
)

type stubProvider struct {
	out string
	err error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) GenerateStrategy(context.Context, types.GenerationRequest) (string, error) {
	return s.out, s.err
}

func (s *stubProvider) FillProps(context.Context, provider.ContentRequest) (string, error) {
	return "", nil
}

const completeStrategy = `{
	"identity": {"name": "Bella Vista", "tagline": "t", "coreConcept": "c", "toneOfVoice": "warm"},
	"sitemap": ["Home", "Menu"],
	"keyMessages": {"uniqueSellingPoints": ["fresh"], "heroHeadline": "h", "aboutStory": "a"},
	"visuals": {"mood": "rustic", "imageKeywords": ["kitchen"]}
}`

func TestSynthesize_ParsesCompleteStrategy(t *testing.T) {
	s, err := Synthesize(context.Background(), &stubProvider{out: completeStrategy}, types.GenerationRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Bella Vista", s.Identity.Name)
	assert.Equal(t, []string{"Home", "Menu"}, s.Sitemap)
}

func TestSynthesize_StripsModelChatter(t *testing.T) {
	wrapped := "Here you go:\n```json\n" + completeStrategy + "\n```"
	s, err := Synthesize(context.Background(), &stubProvider{out: wrapped}, types.GenerationRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Bella Vista", s.Identity.Name)
}

func TestSynthesize_ProviderFailureIsGenerationError(t *testing.T) {
	_, err := Synthesize(context.Background(), &stubProvider{err: errors.New("boom")}, types.GenerationRequest{})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestSynthesize_MalformedJSONRejected(t *testing.T) {
	_, err := Synthesize(context.Background(), &stubProvider{out: "not json at all"}, types.GenerationRequest{})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestSynthesize_PartialStrategyRejected(t *testing.T) {
	// Missing visuals entirely: all-or-nothing means this must fail.
	partial := `{
		"identity": {"name": "X", "tagline": "t", "coreConcept": "c", "toneOfVoice": "v"},
		"sitemap": ["Home"],
		"keyMessages": {"heroHeadline": "h", "aboutStory": "a"}
	}`
	_, err := Synthesize(context.Background(), &stubProvider{out: partial}, types.GenerationRequest{})

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}
