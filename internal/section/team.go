package section

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

// DefaultTeamTitle heads the team grid when no title is given.
const DefaultTeamTitle = "Meet Our Team"

// TeamMember renders one person. The image block and the bio paragraph are
// only present when the entry has them; image dimensions are passed through
// as given.
func TeamMember(member models.TeamMemberEntry, attrs ...ui.Attr) g.Node {
	var image g.Node
	if member.ImageURL != "" {
		img := []g.Node{
			html.Src(member.ImageURL),
			html.Alt(member.Name),
			html.Class("h-full w-full object-cover"),
		}
		if member.ImageWidth > 0 {
			img = append(img, html.Width(strconv.Itoa(member.ImageWidth)))
		}
		if member.ImageHeight > 0 {
			img = append(img, html.Height(strconv.Itoa(member.ImageHeight)))
		}
		image = html.Div(html.Class("aspect-square overflow-hidden bg-muted"), html.Img(img...))
	}

	return ui.Card(ui.MergeAttrs([]ui.Attr{ui.Class("overflow-hidden")}, attrs),
		image,
		ui.CardHeader(nil,
			ui.CardTitle(nil, g.Text(member.Name)),
			ui.CardDescription(nil, g.Text(member.Role)),
		),
		g.If(member.Bio != "",
			ui.CardContent(nil, html.P(html.Class("text-sm text-muted-foreground"), g.Text(member.Bio))),
		),
	)
}

// TeamGrid renders a titled grid of team member cards.
func TeamGrid(title string, members []models.TeamMemberEntry, attrs ...ui.Attr) g.Node {
	if title == "" {
		title = DefaultTeamTitle
	}
	cards := make([]g.Node, 0, len(members))
	for _, m := range members {
		cards = append(cards, TeamMember(m))
	}
	return ui.El("section", ui.MergeAttrs([]ui.Attr{ui.A("class", "py-12")}, attrs),
		html.H2(html.Class("mb-8 text-center text-3xl font-bold tracking-tight"), g.Text(title)),
		html.Div(html.Data("slot", "team-grid"), html.Class(gridClasses), g.Group(cards)),
	)
}
