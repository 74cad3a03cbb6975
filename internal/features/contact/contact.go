// Package contact assembles the Contact page.
package contact

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/section"
)

// Page renders the hero followed by the form and the contact details side
// by side.
func Page(content models.ContactPage) g.Node {
	return html.Div(html.Class("container mx-auto px-4 py-8"),
		section.Hero(content.Hero, section.ContactHeroDefaults),
		html.Div(html.Class("grid gap-8 lg:grid-cols-2"),
			Form(content.FormTitle),
			section.ContactInfo(content.Info),
		),
	)
}
