package contact

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"kcphysics/aiCompanySite/internal/ui"
)

// DefaultFormTitle heads the contact form card.
const DefaultFormTitle = "Send us a message"

type formField struct {
	id          string
	label       string
	inputType   string
	placeholder string
}

var nameFields = []formField{
	{id: "firstName", label: "First Name *", placeholder: "John"},
	{id: "lastName", label: "Last Name *", placeholder: "Doe"},
}

var detailFields = []formField{
	{id: "email", label: "Email *", inputType: "email", placeholder: "john.doe@example.com"},
	{id: "subject", label: "Subject *", placeholder: "How can we help?"},
}

// Form renders the contact form card. The form carries no action or method;
// nothing submits it.
func Form(title string, attrs ...ui.Attr) g.Node {
	if title == "" {
		title = DefaultFormTitle
	}

	return ui.Card(ui.MergeAttrs([]ui.Attr{ui.Class("w-full")}, attrs),
		ui.CardHeader(nil, ui.CardTitle(nil, g.Text(title))),
		ui.CardContent(nil,
			html.Form(
				ui.FieldGroup(nil,
					ui.FieldSet(nil,
						ui.FieldGroup(nil,
							html.Div(html.Class("grid grid-cols-1 gap-6 md:grid-cols-2"),
								inputField(nameFields[0]),
								inputField(nameFields[1]),
							),
							inputField(detailFields[0]),
							inputField(detailFields[1]),
							ui.Field(ui.Vertical, nil,
								ui.FieldLabel([]ui.Attr{ui.A("for", "message")}, g.Text("Message *")),
								ui.Textarea([]ui.Attr{
									ui.ID("message"),
									ui.A("name", "message"),
									ui.A("placeholder", "Tell us more about your inquiry..."),
									ui.Class("min-h-[120px] resize-none"),
									ui.Flag("required"),
								}),
							),
						),
					),
					ui.Field(ui.Horizontal, nil,
						ui.Button(ui.ButtonProps{}, []ui.Attr{
							ui.A("type", "submit"),
							ui.Class("w-full md:w-auto"),
						}, g.Text("Send Message")),
					),
				),
			),
		),
	)
}

func inputField(f formField) g.Node {
	attrs := []ui.Attr{
		ui.ID(f.id),
		ui.A("name", f.id),
		ui.A("placeholder", f.placeholder),
		ui.Flag("required"),
	}
	if f.inputType != "" {
		attrs = append(attrs, ui.A("type", f.inputType))
	}
	return ui.Field(ui.Vertical, nil,
		ui.FieldLabel([]ui.Attr{ui.A("for", f.id)}, g.Text(f.label)),
		ui.Input(attrs),
	)
}
