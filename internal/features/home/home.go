// Package home assembles the landing page.
package home

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

// Defaults fills in any empty field of the content passed to Page.
var Defaults = models.HomePage{
	Title:       "Company Site",
	Description: "A static company website generated from plain content files.",
}

// Page renders the landing banner with links to the About and Contact pages.
func Page(content models.HomePage) g.Node {
	if content.Title == "" {
		content.Title = Defaults.Title
	}
	if content.Description == "" {
		content.Description = Defaults.Description
	}
	return html.Div(html.Class("flex min-h-screen flex-col items-center justify-center bg-secondary-foreground p-8"),
		html.Main(html.Class("flex flex-col items-center gap-8 text-center"),
			html.H1(html.Class("text-4xl font-bold text-white"), g.Text(content.Title)),
			html.P(html.Class("max-w-2xl text-white/90"), g.Text(content.Description)),
			html.Nav(html.Class("flex gap-4"),
				html.A(html.Href("about.html"), html.Class(ui.ButtonClasses(ui.ButtonSecondary, ui.SizeLg)), g.Text("About")),
				html.A(html.Href("contact.html"), html.Class(ui.ButtonClasses(ui.ButtonOutline, ui.SizeLg)), g.Text("Contact")),
			),
		),
	)
}
