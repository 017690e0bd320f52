package blueprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild_RestaurantGetsMenuNotServices(t *testing.T) {
	bp := Build("restaurant", "classic")

	assert.Contains(t, bp, "MenuSection")
	assert.NotContains(t, bp, "ServicesSection")
}

func TestBuild_UnknownIndustryGetsGenericMiddle(t *testing.T) {
	bp := Build("plumbing", "classic")

	assert.Equal(t, []string{
		"Header", "HeroSection", "AboutSection", "ServicesSection",
		"TestimonialsSection", "ContactSection", "Footer",
	}, bp)
}

func TestBuild_MinimalStyleSuppressesOptionalTier(t *testing.T) {
	bp := Build("tech", "minimal")

	assert.NotContains(t, bp, "TestimonialsSection")
	assert.Equal(t, "Header", bp[0])
	assert.Equal(t, "Footer", bp[len(bp)-1])
}

func TestBuild_Deterministic(t *testing.T) {
	first := Build("restaurant", "elegant")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Build("restaurant", "elegant"))
	}
}

func TestBuild_OpensAndClosesConsistently(t *testing.T) {
	for _, industry := range []string{"restaurant", "tech", "portfolio", "unknown"} {
		bp := Build(industry, "modern")
		assert.Equal(t, []string{"Header", "HeroSection"}, bp[:2], industry)
		assert.Equal(t, []string{"ContactSection", "Footer"}, bp[len(bp)-2:], industry)
	}
}

func TestBuild_ReturnsFreshSlice(t *testing.T) {
	a := Build("restaurant", "classic")
	a[0] = "mutated"
	b := Build("restaurant", "classic")
	assert.Equal(t, "Header", b[0])
}
