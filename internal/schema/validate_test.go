package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heroSchema = map[string]string{
	"headline":    "string",
	"subheadline": "text",
	"image":       "image",
}

func TestParseAndValidate_AcceptsCompleteProps(t *testing.T) {
	raw := `{"headline": "Hi", "subheadline": "Welcome in.", "image": "restaurant interior"}`

	props, err := ParseAndValidate(raw, "ImageHero", heroSchema)

	require.NoError(t, err)
	assert.Equal(t, "Hi", props["headline"])
}

func TestParseAndValidate_StripsFences(t *testing.T) {
	raw := "```json\n{\"headline\": \"Hi\", \"subheadline\": \"s\", \"image\": \"i\"}\n```"

	_, err := ParseAndValidate(raw, "ImageHero", heroSchema)

	assert.NoError(t, err)
}

func TestParseAndValidate_MissingRequiredPropFails(t *testing.T) {
	raw := `{"headline": "Hi", "image": "i"}`

	_, err := ParseAndValidate(raw, "ImageHero", heroSchema)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "ImageHero", vErr.Variant)
}

func TestParseAndValidate_WrongTypeFails(t *testing.T) {
	raw := `{"headline": 42, "subheadline": "s", "image": "i"}`

	_, err := ParseAndValidate(raw, "ImageHero", heroSchema)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseAndValidate_NotJSONFails(t *testing.T) {
	_, err := ParseAndValidate("sorry, I cannot help with that", "ImageHero", heroSchema)

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseAndValidate_ExtraKeysTolerated(t *testing.T) {
	raw := `{"headline": "Hi", "subheadline": "s", "image": "i", "bonus": true}`

	props, err := ParseAndValidate(raw, "ImageHero", heroSchema)

	require.NoError(t, err)
	assert.Contains(t, props, "bonus")
}

func TestParseAndValidate_ItemListShape(t *testing.T) {
	raw := `{"services": [{"title": "A", "description": "d"}, {"title": "B"}]}`

	_, err := ParseAndValidate(raw, "CardServices", map[string]string{"services": "item[]"})
	assert.NoError(t, err)

	// An item without a title is rejected.
	bad := `{"services": [{"description": "d"}]}`
	_, err = ParseAndValidate(bad, "CardServices", map[string]string{"services": "item[]"})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}
