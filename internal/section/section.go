// Package section renders the content blocks pages are assembled from:
// the generic titled card grid, heroes, the mission grid, the contact
// info panel and team member cards. Every renderer is a pure function of
// its input.
package section

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

// DefaultTitle is used when a section is rendered without a title.
const DefaultTitle = "Our Mission"

const gridClasses = "grid gap-6 md:grid-cols-2 lg:grid-cols-3"

// Render renders a titled section with an optional lead paragraph and one
// card per item, in item order.
func Render(content models.SectionContent, attrs ...ui.Attr) g.Node {
	cards := make([]g.Node, 0, len(content.Items))
	for _, item := range content.Items {
		cards = append(cards, itemCard(item))
	}
	return grid(content.Title, content.Description, attrs, cards)
}

// grid is the shared layout: heading, optional lead, responsive card grid.
func grid(title, description string, attrs []ui.Attr, cards []g.Node) g.Node {
	if title == "" {
		title = DefaultTitle
	}
	return ui.El("section", ui.MergeAttrs([]ui.Attr{
		ui.A("class", "space-y-8 py-12"),
	}, attrs),
		html.H2(html.Class("text-center text-3xl font-bold tracking-tight"), g.Text(title)),
		g.If(description != "",
			html.P(html.Data("slot", "section-lead"), html.Class("mx-auto max-w-2xl text-center text-lg text-muted-foreground"), g.Text(description)),
		),
		html.Div(html.Data("slot", "section-grid"), html.Class(gridClasses), g.Group(cards)),
	)
}

func itemCard(item models.LabeledValue) g.Node {
	return titledCard(item.Label,
		html.P(html.Class("text-muted-foreground"), g.Text(item.Value)),
	)
}

func titledCard(title string, body g.Node) g.Node {
	return ui.Card(nil,
		ui.CardHeader(nil, ui.CardTitle(nil, g.Text(title))),
		ui.CardContent(nil, body),
	)
}
