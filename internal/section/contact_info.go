package section

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/models"
	"kcphysics/aiCompanySite/internal/ui"
)

// DefaultContactInfo is shown when a ContactInfo panel gets nil items.
var DefaultContactInfo = []models.LabeledValue{
	{Label: "Email", Value: "contact@example.com"},
	{Label: "Phone", Value: "+1 (555) 123-4567"},
	{Label: "Address", Value: "123 Main St, Suite 100, City, State 12345"},
}

// ContactInfo renders the contact details card. A nil slice renders
// DefaultContactInfo; an empty non-nil slice renders no rows.
func ContactInfo(items []models.LabeledValue, attrs ...ui.Attr) g.Node {
	if items == nil {
		items = DefaultContactInfo
	}
	rows := make([]g.Node, 0, len(items))
	for _, item := range items {
		rows = append(rows, html.Div(html.Data("slot", "info-row"), html.Class("space-y-1"),
			html.P(html.Class("text-sm font-medium text-muted-foreground"), g.Text(item.Label)),
			html.P(html.Class("whitespace-pre-line text-base"), g.Text(item.Value)),
		))
	}
	return ui.Card(ui.MergeAttrs([]ui.Attr{ui.Class("w-full")}, attrs),
		ui.CardHeader(nil, ui.CardTitle(nil, g.Text("Contact Information"))),
		ui.CardContent([]ui.Attr{ui.Class("space-y-6")}, g.Group(rows)),
	)
}
