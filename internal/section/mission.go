package section

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

// Mission renders the mission/vision/values grid. Each card is omitted when
// its content is empty.
func Mission(content models.MissionContent, attrs ...ui.Attr) g.Node {
	var cards []g.Node
	if content.Mission != "" {
		cards = append(cards, itemCard(models.LabeledValue{Label: "Mission", Value: content.Mission}))
	}
	if content.Vision != "" {
		cards = append(cards, itemCard(models.LabeledValue{Label: "Vision", Value: content.Vision}))
	}
	if len(content.Values) > 0 {
		items := make([]g.Node, 0, len(content.Values))
		for _, v := range content.Values {
			items = append(items, html.Li(g.Text(v)))
		}
		cards = append(cards, titledCard("Values",
			html.Ul(html.Class("list-inside list-disc space-y-2 text-muted-foreground"), g.Group(items)),
		))
	}
	return grid(content.Title, "", attrs, cards)
}
