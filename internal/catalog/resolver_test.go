package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]ComponentVariant{
		{Name: "A", Type: "HeroSection", Keywords: []string{"video", "restaurant"}},
		{Name: "B", Type: "HeroSection", Keywords: []string{"split"}},
		{Name: "PlainFooter", Type: "Footer"},
	})
}

func TestResolve_KeywordMatchesWin(t *testing.T) {
	c := testCatalog()

	v := c.Resolve("HeroSection", "a restaurant website with video background", "", "")

	require.NotNil(t, v)
	assert.Equal(t, "A", v.Name)
}

func TestResolve_PreferredVariantAlwaysWins(t *testing.T) {
	c := New([]ComponentVariant{
		{Name: "ImageHero", Type: "HeroSection", Keywords: []string{"restaurant"}},
		{Name: "VideoHero", Type: "HeroSection"},
	})

	v := c.Resolve("HeroSection", "", "restaurant", "VideoHero")

	require.NotNil(t, v)
	assert.Equal(t, "VideoHero", v.Name)
}

func TestResolve_PreferredVariantCaseInsensitive(t *testing.T) {
	c := testCatalog()

	v := c.Resolve("HeroSection", "", "", "b")

	require.NotNil(t, v)
	assert.Equal(t, "B", v.Name)
}

func TestResolve_UnknownTypeReturnsNil(t *testing.T) {
	c := testCatalog()

	assert.Nil(t, c.Resolve("PricingSection", "anything", "tech", ""))
}

func TestResolve_ZeroScoreReturnsFirstCatalogEntry(t *testing.T) {
	c := testCatalog()

	// Nothing matches; the longer name "B"... both are length 1, but even with
	// unequal name lengths the first entry must win when no keyword scores.
	v := c.Resolve("HeroSection", "plain bakery site", "", "")

	require.NotNil(t, v)
	assert.Equal(t, "A", v.Name)
}

func TestResolve_LengthTermNeverRescuesZeroKeywordScore(t *testing.T) {
	c := New([]ComponentVariant{
		{Name: "X", Type: "Header", Keywords: []string{"nothing-here"}},
		{Name: "AVeryLongVariantName", Type: "Header", Keywords: []string{"also-nothing"}},
	})

	v := c.Resolve("Header", "unrelated text", "", "")

	require.NotNil(t, v)
	assert.Equal(t, "X", v.Name)
}

func TestResolve_IndustryOverlapBreaksKeywordTie(t *testing.T) {
	c := New([]ComponentVariant{
		{Name: "GenericHero", Type: "HeroSection", Keywords: []string{"site"}},
		{Name: "DinerHero", Type: "HeroSection", Keywords: []string{"site", "restaurant"}},
	})

	// Both match "site"; only DinerHero's "restaurant" keyword overlaps the
	// industry, so it must win despite equal description matches.
	v := c.Resolve("HeroSection", "a site for locals", "restaurant", "")

	require.NotNil(t, v)
	assert.Equal(t, "DinerHero", v.Name)
}

func TestResolve_Deterministic(t *testing.T) {
	c := Default()

	first := c.Resolve("HeroSection", "a modern startup with a split layout", "tech", "")
	require.NotNil(t, first)
	for i := 0; i < 20; i++ {
		v := c.Resolve("HeroSection", "a modern startup with a split layout", "tech", "")
		require.NotNil(t, v)
		assert.Equal(t, first.Name, v.Name)
	}
}

func TestDefaultCatalog_CoversAllBlueprintTypes(t *testing.T) {
	c := Default()
	for _, typ := range []string{
		"Header", "HeroSection", "AboutSection", "ServicesSection",
		"MenuSection", "GallerySection", "TestimonialsSection",
		"ContactSection", "Footer",
	} {
		assert.NotEmpty(t, c.VariantsFor(typ), "no variants for %s", typ)
	}
}
