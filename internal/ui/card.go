package ui

import (
	g "maragu.dev/gomponents"
)

// Card renders the bordered container the other Card parts sit in.
func Card(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card"),
		A("class", "bg-card text-card-foreground flex flex-col gap-6 rounded-xl border py-6 shadow-sm"),
	}, attrs, children...)
}

// CardHeader renders the top area holding a card's title and description.
func CardHeader(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card-header"),
		A("class", "grid auto-rows-min items-start gap-1.5 px-6"),
	}, attrs, children...)
}

// CardTitle renders a card heading.
func CardTitle(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card-title"),
		A("class", "leading-none font-semibold"),
	}, attrs, children...)
}

// CardDescription renders muted text under a card title.
func CardDescription(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card-description"),
		A("class", "text-muted-foreground text-sm"),
	}, attrs, children...)
}

// CardContent renders the padded body of a card.
func CardContent(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card-content"),
		A("class", "px-6"),
	}, attrs, children...)
}

// CardFooter renders a row of actions at the bottom of a card.
func CardFooter(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "card-footer"),
		A("class", "flex items-center px-6"),
	}, attrs, children...)
}
