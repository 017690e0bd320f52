package textscan

// Keyword tables are fixed at compile time; scan order below is the order
// hints come back in.

var industryKeywords = []string{
	"restaurant", "cafe", "coffee", "bakery", "bar", "food",
	"portfolio", "photography", "design", "art",
	"shop", "store", "ecommerce", "boutique", "fashion",
	"consulting", "agency", "law", "finance", "accounting",
	"fitness", "gym", "yoga", "wellness", "spa",
	"tech", "software", "startup", "saas", "app",
	"clinic", "dental", "medical", "health",
	"travel", "hotel", "real estate", "construction",
}

var styleKeywords = []string{
	"modern", "minimal", "minimalist", "elegant", "classic",
	"bold", "playful", "luxury", "rustic", "clean",
	"dark", "colorful", "professional", "vintage",
}

var featureKeywords = []string{
	"booking", "reservation", "menu", "gallery", "blog",
	"contact", "testimonials", "pricing", "team", "faq",
	"newsletter", "video", "map", "shop", "events",
}

const genericDefaultName = "Your Business"

var defaultNames = map[string]string{
	"restaurant": "The Golden Fork",
	"cafe":       "Corner Brew",
	"portfolio":  "Studio North",
	"ecommerce":  "The Curated Shop",
	"consulting": "Clearpath Advisors",
	"fitness":    "Pulse Studio",
	"tech":       "Brightstack",
	"health":     "Vital Care",
	"travel":     "Wanderline",
}
