package catalog

// defaultVariants is the built-in component catalog. Order within each type
// is significant: the first entry is the graceful default for that type.
var defaultVariants = []ComponentVariant{
	// Header
	{
		Name:        "ClassicHeader",
		Type:        "Header",
		Description: "Logo left, horizontal navigation right, optional call-to-action button.",
		PropsSchema: map[string]string{"logoText": "string", "links": "string[]", "ctaLabel": "string"},
		Style:       "classic",
		Keywords:    []string{"classic", "simple", "traditional"},
	},
	{
		Name:        "TransparentHeader",
		Type:        "Header",
		Description: "Transparent header overlaying the hero, solidifies on scroll.",
		PropsSchema: map[string]string{"logoText": "string", "links": "string[]", "ctaLabel": "string"},
		Style:       "modern",
		Keywords:    []string{"modern", "overlay", "transparent", "sleek"},
	},
	{
		Name:        "CenteredHeader",
		Type:        "Header",
		Description: "Centered logo with navigation split on both sides, boutique feel.",
		PropsSchema: map[string]string{"logoText": "string", "links": "string[]"},
		Style:       "elegant",
		Keywords:    []string{"elegant", "boutique", "luxury", "centered"},
		Industries:  []string{"restaurant", "fashion"},
	},

	// HeroSection
	{
		Name:        "ImageHero",
		Type:        "HeroSection",
		Description: "Full-width background image with headline, subheadline and call to action.",
		PropsSchema: map[string]string{"headline": "string", "subheadline": "text", "ctaLabel": "string", "image": "image"},
		Style:       "classic",
		Keywords:    []string{"photo", "image", "visual"},
	},
	{
		Name:        "VideoHero",
		Type:        "HeroSection",
		Description: "Looping background video behind the headline, strong atmosphere.",
		PropsSchema: map[string]string{"headline": "string", "subheadline": "text", "ctaLabel": "string", "videoKeywords": "string"},
		Style:       "bold",
		Keywords:    []string{"video", "restaurant", "atmosphere", "cinematic"},
		Industries:  []string{"restaurant", "travel", "fitness"},
	},
	{
		Name:        "SplitHero",
		Type:        "HeroSection",
		Description: "Text on one half, image on the other, clean product emphasis.",
		PropsSchema: map[string]string{"headline": "string", "subheadline": "text", "ctaLabel": "string", "image": "image"},
		Style:       "modern",
		Keywords:    []string{"split", "product", "app", "startup"},
		Industries:  []string{"tech", "ecommerce"},
	},
	{
		Name:        "MinimalHero",
		Type:        "HeroSection",
		Description: "Typography-only hero with generous whitespace.",
		PropsSchema: map[string]string{"headline": "string", "subheadline": "text", "ctaLabel": "string"},
		Style:       "minimal",
		Keywords:    []string{"minimal", "minimalist", "typography", "clean"},
		Industries:  []string{"portfolio"},
	},

	// AboutSection
	{
		Name:        "StoryAbout",
		Type:        "AboutSection",
		Description: "Narrative block with a supporting image, tells the origin story.",
		PropsSchema: map[string]string{"title": "string", "story": "text", "image": "image"},
		Style:       "classic",
		Keywords:    []string{"story", "history", "family", "tradition"},
	},
	{
		Name:        "TeamAbout",
		Type:        "AboutSection",
		Description: "Grid of team members with portraits and roles.",
		PropsSchema: map[string]string{"title": "string", "intro": "text", "members": "item[]"},
		Style:       "professional",
		Keywords:    []string{"team", "people", "staff", "experts"},
		Industries:  []string{"consulting", "tech", "health"},
	},
	{
		Name:        "StatsAbout",
		Type:        "AboutSection",
		Description: "Short mission statement backed by headline numbers.",
		PropsSchema: map[string]string{"title": "string", "mission": "text", "stats": "item[]"},
		Style:       "bold",
		Keywords:    []string{"numbers", "results", "growth", "experience"},
	},

	// ServicesSection
	{
		Name:        "CardServices",
		Type:        "ServicesSection",
		Description: "Service cards with icon, title and short description.",
		PropsSchema: map[string]string{"title": "string", "intro": "text", "services": "item[]"},
		Style:       "classic",
		Keywords:    []string{"services", "offerings", "cards"},
	},
	{
		Name:        "ListServices",
		Type:        "ServicesSection",
		Description: "Numbered vertical list of services with expanded detail.",
		PropsSchema: map[string]string{"title": "string", "services": "item[]"},
		Style:       "minimal",
		Keywords:    []string{"process", "steps", "detailed", "consulting"},
		Industries:  []string{"consulting"},
	},
	{
		Name:        "IconGridServices",
		Type:        "ServicesSection",
		Description: "Dense icon grid for a broad service range.",
		PropsSchema: map[string]string{"title": "string", "services": "item[]"},
		Style:       "modern",
		Keywords:    []string{"features", "tools", "capabilities", "tech"},
		Industries:  []string{"tech"},
	},

	// MenuSection
	{
		Name:        "TabbedMenu",
		Type:        "MenuSection",
		Description: "Menu grouped into tabbed categories with prices.",
		PropsSchema: map[string]string{"title": "string", "categories": "string[]", "items": "item[]"},
		Style:       "classic",
		Keywords:    []string{"menu", "dishes", "categories", "dinner", "lunch"},
		Industries:  []string{"restaurant"},
	},
	{
		Name:        "ColumnMenu",
		Type:        "MenuSection",
		Description: "Elegant two-column printed-menu look.",
		PropsSchema: map[string]string{"title": "string", "items": "item[]"},
		Style:       "elegant",
		Keywords:    []string{"elegant", "fine", "wine", "tasting"},
		Industries:  []string{"restaurant"},
	},

	// GallerySection
	{
		Name:        "MasonryGallery",
		Type:        "GallerySection",
		Description: "Masonry photo grid with lightbox.",
		PropsSchema: map[string]string{"title": "string", "images": "string[]"},
		Style:       "modern",
		Keywords:    []string{"gallery", "photos", "portfolio", "work"},
	},
	{
		Name:        "CarouselGallery",
		Type:        "GallerySection",
		Description: "Horizontal image carousel with captions.",
		PropsSchema: map[string]string{"title": "string", "images": "string[]"},
		Style:       "classic",
		Keywords:    []string{"carousel", "slideshow", "showcase"},
	},

	// TestimonialsSection
	{
		Name:        "QuoteTestimonials",
		Type:        "TestimonialsSection",
		Description: "Large rotating quotes with author and role.",
		PropsSchema: map[string]string{"title": "string", "testimonials": "item[]"},
		Style:       "classic",
		Keywords:    []string{"reviews", "quotes", "customers"},
	},
	{
		Name:        "CardTestimonials",
		Type:        "TestimonialsSection",
		Description: "Testimonial cards in a three-up grid with ratings.",
		PropsSchema: map[string]string{"title": "string", "testimonials": "item[]"},
		Style:       "modern",
		Keywords:    []string{"ratings", "stars", "feedback", "social"},
	},

	// ContactSection
	{
		Name:        "MapContact",
		Type:        "ContactSection",
		Description: "Contact details beside an embedded map, for physical locations.",
		PropsSchema: map[string]string{"title": "string", "address": "string", "phone": "string", "email": "string", "hours": "string[]"},
		Style:       "classic",
		Keywords:    []string{"location", "map", "visit", "address", "restaurant"},
		Industries:  []string{"restaurant", "health", "fitness"},
	},
	{
		Name:        "SimpleContact",
		Type:        "ContactSection",
		Description: "Minimal contact form with email and social links.",
		PropsSchema: map[string]string{"title": "string", "intro": "text", "email": "string"},
		Style:       "minimal",
		Keywords:    []string{"form", "message", "remote", "online"},
	},

	// Footer
	{
		Name:        "MultiColumnFooter",
		Type:        "Footer",
		Description: "Link columns, contact block and newsletter signup.",
		PropsSchema: map[string]string{"businessName": "string", "tagline": "string", "links": "string[]", "copyright": "string"},
		Style:       "classic",
		Keywords:    []string{"links", "newsletter", "sitemap"},
	},
	{
		Name:        "MinimalFooter",
		Type:        "Footer",
		Description: "Single line with name, copyright and social icons.",
		PropsSchema: map[string]string{"businessName": "string", "copyright": "string"},
		Style:       "minimal",
		Keywords:    []string{"minimal", "simple", "clean"},
	},
}
