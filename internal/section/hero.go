package section

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

var (
	AboutHeroDefaults = models.HeroContent{
		Title:       "About Us",
		Description: "Learn more about our mission and values",
	}
	ContactHeroDefaults = models.HeroContent{
		Title:       "Get in Touch",
		Description: "We'd love to hear from you. Send us a message and we'll respond as soon as possible.",
	}
)

// Hero renders the page banner. Empty fields are taken from fallback.
func Hero(content, fallback models.HeroContent, attrs ...ui.Attr) g.Node {
	if content.Title == "" {
		content.Title = fallback.Title
	}
	if content.Description == "" {
		content.Description = fallback.Description
	}
	return ui.El("section", ui.MergeAttrs([]ui.Attr{
		ui.A("data-slot", "hero"),
		ui.A("class", "flex flex-col items-center justify-center gap-4 py-16 text-center"),
	}, attrs),
		html.H1(html.Class("text-4xl font-bold tracking-tight md:text-5xl lg:text-6xl"), g.Text(content.Title)),
		g.If(content.Description != "",
			html.P(html.Class("max-w-2xl text-lg text-muted-foreground md:text-xl"), g.Text(content.Description)),
		),
	)
}
