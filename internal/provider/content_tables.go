package provider

import "strings"

// industryContent is the static copy bank behind the template provider.
// One entry per supported industry plus a generic fallback.
type industryContent struct {
	Tagline       string
	CoreConcept   string
	ToneOfVoice   string
	HeroHeadline  string
	HeroSub       string
	AboutTitle    string
	AboutStory    string
	CTALabel      string
	Mood          string
	ImageKeywords []string
	Sitemap       []string
	Items         []contentItem // services, menu dishes, or equivalent
	Testimonials  []contentItem
	Address       string
	Phone         string
	Email         string
	Hours         []string
}

type contentItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func contentFor(industry string) industryContent {
	if c, ok := contentTable[strings.ToLower(industry)]; ok {
		return c
	}
	return genericContent
}

var genericContent = industryContent{
	Tagline:       "Quality you can count on",
	CoreConcept:   "A dependable local business focused on doing one thing well.",
	ToneOfVoice:   "friendly, straightforward, confident",
	HeroHeadline:  "Welcome to a better experience",
	HeroSub:       "We combine craft and care to deliver results our customers talk about.",
	AboutTitle:    "Our Story",
	AboutStory:    "What started as a small local operation has grown through word of mouth and a simple promise: do right by every customer. That promise still guides everything we do.",
	CTALabel:      "Get in Touch",
	Mood:          "warm and approachable",
	ImageKeywords: []string{"small business", "team at work", "storefront"},
	Sitemap:       []string{"Home", "About", "Services", "Contact"},
	Items: []contentItem{
		{Title: "Consultation", Description: "A free first conversation to understand what you need."},
		{Title: "Tailored Service", Description: "Work scoped and delivered around your goals."},
		{Title: "Ongoing Support", Description: "We stay available long after the job is done."},
	},
	Testimonials: []contentItem{
		{Title: "Jordan M.", Description: "Professional from start to finish. I recommend them to everyone."},
		{Title: "Sam K.", Description: "They delivered exactly what they promised, on time."},
	},
	Address: "123 Main Street",
	Phone:   "+1 (555) 010-0100",
	Email:   "hello@example.com",
	Hours:   []string{"Mon-Fri 9:00-18:00", "Sat 10:00-14:00"},
}

var contentTable = map[string]industryContent{
	"restaurant": {
		Tagline:       "Every plate tells a story",
		CoreConcept:   "A neighborhood restaurant built around seasonal ingredients and a warm room.",
		ToneOfVoice:   "warm, inviting, passionate",
		HeroHeadline:  "A table that feels like home",
		HeroSub:       "Seasonal dishes, an honest wine list, and service that remembers your name.",
		AboutTitle:    "From Our Kitchen",
		AboutStory:    "We opened with one long table and a short menu. Years later the menu still changes with the market, and the table is still where neighbors meet. Everything is made in-house, down to the bread.",
		CTALabel:      "Reserve a Table",
		Mood:          "candlelit, rustic, intimate",
		ImageKeywords: []string{"restaurant interior", "plated dish", "chef cooking", "fresh ingredients"},
		Sitemap:       []string{"Home", "Menu", "About", "Gallery", "Reservations", "Contact"},
		Items: []contentItem{
			{Title: "Wood-Fired Flatbread", Description: "Charred crust, whipped ricotta, seasonal vegetables."},
			{Title: "Braised Short Rib", Description: "Slow-cooked with root vegetables and red wine jus."},
			{Title: "Market Fish", Description: "Whatever the boats brought in, simply grilled with lemon."},
			{Title: "Chocolate Torte", Description: "Flourless, with espresso cream and sea salt."},
		},
		Testimonials: []contentItem{
			{Title: "Dana R.", Description: "The kind of place you bring people you love. The short rib is unreal."},
			{Title: "Chris P.", Description: "Warm service, honest food. Our Friday tradition now."},
		},
		Address: "48 Orchard Lane",
		Phone:   "+1 (555) 014-2400",
		Email:   "reservations@example.com",
		Hours:   []string{"Tue-Sun 17:00-23:00", "Closed Mondays"},
	},
	"portfolio": {
		Tagline:       "Work that speaks quietly and clearly",
		CoreConcept:   "A personal portfolio that lets the work carry the argument.",
		ToneOfVoice:   "minimal, confident, considered",
		HeroHeadline:  "Selected work",
		HeroSub:       "Design and photography projects from the last few years.",
		AboutTitle:    "About",
		AboutStory:    "I work at the intersection of design and photography, usually for clients who care about detail. Most projects start with a conversation and end with something we are both proud of.",
		CTALabel:      "View Work",
		Mood:          "clean, monochrome, spacious",
		ImageKeywords: []string{"design studio", "portfolio mockup", "creative workspace"},
		Sitemap:       []string{"Home", "Work", "About", "Contact"},
		Items: []contentItem{
			{Title: "Brand Identity", Description: "Naming, marks, and systems for new ventures."},
			{Title: "Editorial Photography", Description: "Commissioned series for print and web."},
			{Title: "Art Direction", Description: "Campaigns taken from concept to delivery."},
		},
		Testimonials: []contentItem{
			{Title: "Studio Partner", Description: "Rare combination of taste and reliability."},
		},
		Address: "Studio 4, Mill Row",
		Phone:   "+1 (555) 019-8800",
		Email:   "studio@example.com",
		Hours:   []string{"By appointment"},
	},
	"tech": {
		Tagline:       "Ship faster, worry less",
		CoreConcept:   "A software product that removes a painful manual workflow.",
		ToneOfVoice:   "clear, energetic, credible",
		HeroHeadline:  "The fastest way to get it done",
		HeroSub:       "One tool that replaces the spreadsheet, the inbox thread, and the guesswork.",
		AboutTitle:    "Why We Built This",
		AboutStory:    "We were our own first customer. After years of duct-taping tools together we built the product we wished existed, and it turned out other teams wanted it too.",
		CTALabel:      "Start Free Trial",
		Mood:          "bright, gradient, product-forward",
		ImageKeywords: []string{"dashboard ui", "team collaboration", "modern office"},
		Sitemap:       []string{"Home", "Features", "Pricing", "About", "Contact"},
		Items: []contentItem{
			{Title: "Automated Workflows", Description: "Set it up once, let it run every day."},
			{Title: "Real-Time Insights", Description: "Dashboards that answer questions before you ask."},
			{Title: "Integrations", Description: "Plays nicely with the tools you already use."},
		},
		Testimonials: []contentItem{
			{Title: "Ops Lead, Series B startup", Description: "Cut our weekly reporting from hours to minutes."},
			{Title: "Founder", Description: "The first tool my whole team actually adopted."},
		},
		Address: "500 Harbor Blvd, Suite 210",
		Phone:   "+1 (555) 017-7700",
		Email:   "hello@example.com",
		Hours:   []string{"Mon-Fri 9:00-17:00"},
	},
	"fitness": {
		Tagline:       "Stronger every session",
		CoreConcept:   "A training studio where coaching, not equipment, is the product.",
		ToneOfVoice:   "motivating, direct, supportive",
		HeroHeadline:  "Train with intent",
		HeroSub:       "Small-group coaching and programs built around your goals, not the mirror.",
		AboutTitle:    "Our Approach",
		AboutStory:    "We started in a garage with six members and one belief: consistency beats intensity. Today the space is bigger but the coaching ratio has not changed.",
		CTALabel:      "Book a Trial Session",
		Mood:          "high-contrast, energetic, gritty",
		ImageKeywords: []string{"gym training", "personal coach", "workout class"},
		Sitemap:       []string{"Home", "Programs", "About", "Schedule", "Contact"},
		Items: []contentItem{
			{Title: "Small-Group Training", Description: "Max six people, programmed progressions, real coaching."},
			{Title: "Personal Coaching", Description: "One-on-one blocks tailored to your body and schedule."},
			{Title: "Mobility & Recovery", Description: "The unglamorous work that keeps you training."},
		},
		Testimonials: []contentItem{
			{Title: "Priya S.", Description: "First gym where I actually kept showing up. Two years now."},
			{Title: "Marco T.", Description: "Coaches notice everything. My back pain is gone."},
		},
		Address: "12 Foundry Street",
		Phone:   "+1 (555) 013-3300",
		Email:   "train@example.com",
		Hours:   []string{"Mon-Fri 6:00-21:00", "Sat-Sun 8:00-14:00"},
	},
	"consulting": {
		Tagline:       "Clarity before action",
		CoreConcept:   "A boutique consultancy that trades jargon for measurable outcomes.",
		ToneOfVoice:   "professional, plainspoken, assured",
		HeroHeadline:  "Decisions you can stand behind",
		HeroSub:       "We help leadership teams cut through noise and commit to what matters.",
		AboutTitle:    "Who We Are",
		AboutStory:    "Our partners spent two decades inside the industries we now advise. We keep the firm deliberately small so senior people do the work, not just the pitch.",
		CTALabel:      "Book a Consultation",
		Mood:          "composed, editorial, navy-and-white",
		ImageKeywords: []string{"business meeting", "strategy whiteboard", "city skyline"},
		Sitemap:       []string{"Home", "Services", "About", "Insights", "Contact"},
		Items: []contentItem{
			{Title: "Strategy Sprints", Description: "Four weeks from open question to committed plan."},
			{Title: "Operational Review", Description: "Find the friction your dashboards hide."},
			{Title: "Advisory Retainer", Description: "A senior sounding board on call."},
		},
		Testimonials: []contentItem{
			{Title: "CEO, logistics firm", Description: "They told us what we needed to hear, not what we wanted."},
		},
		Address: "8th Floor, 200 Commerce Way",
		Phone:   "+1 (555) 018-9900",
		Email:   "enquiries@example.com",
		Hours:   []string{"Mon-Fri 9:00-18:00"},
	},
}
