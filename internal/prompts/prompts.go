// Package prompts holds the prompt templates sent to model providers.
// Templates are format strings; callers render them with fmt.Sprintf.
package prompts

// StrategyPrompt expects: description, industry, style, target audience,
// business goals, unique selling points.
func StrategyPrompt() string {
	return `You are a brand strategist for small-business websites.

A client submitted this request:
---
Description: %s
Industry: %s
Style: %s
Target audience: %s
Business goals: %s
Unique selling points: %s
---

Produce a complete brand strategy as a single JSON object with exactly this shape:

{
  "identity": {
    "name": "business name (use the one in the description if present)",
    "tagline": "short memorable tagline",
    "coreConcept": "one-sentence positioning",
    "toneOfVoice": "2-4 adjectives, e.g. warm, confident"
  },
  "sitemap": ["Home", "..."],
  "keyMessages": {
    "uniqueSellingPoints": ["...", "..."],
    "heroHeadline": "headline for the landing hero",
    "aboutStory": "2-3 sentence about-us story"
  },
  "visuals": {
    "mood": "visual mood in a few words",
    "imageKeywords": ["...", "..."]
  }
}

Every field must be filled. Respond with JSON only, no extra explanation.`
}

// SectionPrompt expects: section type, variant name, variant description,
// tone of voice, business name, industry, description, props schema JSON.
func SectionPrompt() string {
	return `You are writing website copy for one section of a small-business site.

Section type: %s
Component variant: %s (%s)
Tone of voice: %s
Business: %s (%s industry)
Business description: %s

Fill every property of this schema with final, publishable content.
The schema maps property names to type hints ("string" short text, "text"
a paragraph, "image" an image search phrase, "string[]" a list of short
strings, "item[]" a list of objects with "title" and "description",
"number" a number):

%s

Respond with a single JSON object whose keys are exactly the schema's
property names. JSON only, no extra explanation.`
}
