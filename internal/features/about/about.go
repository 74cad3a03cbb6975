// Package about assembles the About page.
package about

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/section"
)

// Page renders hero, mission grid, any extra sections and the team grid,
// in that order. The team grid is skipped when there are no members.
func Page(content models.AboutPage) g.Node {
	sections := make([]g.Node, 0, len(content.Sections))
	for _, s := range content.Sections {
		sections = append(sections, section.Render(s))
	}

	var team g.Node
	if len(content.Team) > 0 {
		team = section.TeamGrid(content.TeamTitle, content.Team)
	}

	return html.Div(html.Class("container mx-auto px-4 py-8"),
		section.Hero(content.Hero, section.AboutHeroDefaults),
		section.Mission(content.Mission),
		g.Group(sections),
		team,
	)
}
