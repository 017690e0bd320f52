// Package blueprint maps an industry + style pair to the ordered list of
// abstract section types a generated website should contain. Pure table
// lookups: no I/O, no randomness, safe to memoize.
package blueprint

import "strings"

// Core sections every website opens and closes with.
var opening = []string{"Header", "HeroSection"}
var closing = []string{"ContactSection", "Footer"}

// optionalSections sit between the industry section and the closing tier.
// Minimal styles suppress them.
var optionalSections = []string{"TestimonialsSection"}

// industrySections are the middle tiers keyed by industry. The restaurant
// entry swaps the generic services section for a menu section; that choice is
// mutually exclusive by construction.
var industrySections = map[string][]string{
	"restaurant": {"AboutSection", "MenuSection", "GallerySection"},
	"cafe":       {"AboutSection", "MenuSection", "GallerySection"},
	"portfolio":  {"AboutSection", "GallerySection"},
	"ecommerce":  {"ServicesSection", "GallerySection"},
	"consulting": {"AboutSection", "ServicesSection"},
	"fitness":    {"AboutSection", "ServicesSection", "GallerySection"},
	"tech":       {"ServicesSection", "AboutSection"},
	"health":     {"AboutSection", "ServicesSection"},
	"travel":     {"AboutSection", "GallerySection", "ServicesSection"},
}

var genericMiddle = []string{"AboutSection", "ServicesSection"}

// minimalStyles suppress the optional tier.
var minimalStyles = map[string]bool{"minimal": true, "minimalist": true}

// Build returns the ordered section types for one industry + style
// combination. The result is a fresh slice; callers may keep it.
func Build(industry, style string) []string {
	middle, ok := industrySections[strings.ToLower(industry)]
	if !ok {
		middle = genericMiddle
	}

	out := make([]string, 0, len(opening)+len(middle)+len(optionalSections)+len(closing))
	out = append(out, opening...)
	out = append(out, middle...)
	if !minimalStyles[strings.ToLower(style)] {
		out = append(out, optionalSections...)
	}
	out = append(out, closing...)
	return out
}
