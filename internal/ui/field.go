package ui

import (
	g "maragu.dev/gomponents"
)

// Orientation controls whether a Field stacks its label above the control or beside it.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

var orientationClasses = map[Orientation]string{
	Vertical:   "flex-col [&>*]:w-full",
	Horizontal: "flex-row items-center",
}

// Field groups a label, a control and optional help text. An unknown
// orientation renders vertically.
func Field(orientation Orientation, attrs []Attr, children ...g.Node) g.Node {
	if _, ok := orientationClasses[orientation]; !ok {
		orientation = Vertical
	}
	return element("div", []Attr{
		A("role", "group"),
		A("data-slot", "field"),
		A("data-orientation", string(orientation)),
		A("class", Cn("group/field flex w-full gap-3", orientationClasses[orientation])),
	}, attrs, children...)
}

// FieldGroup stacks related fields.
func FieldGroup(attrs []Attr, children ...g.Node) g.Node {
	return element("div", []Attr{
		A("data-slot", "field-group"),
		A("class", "group/field-group flex w-full flex-col gap-7"),
	}, attrs, children...)
}

// FieldSet renders a fieldset grouping fields under a legend.
func FieldSet(attrs []Attr, children ...g.Node) g.Node {
	return element("fieldset", []Attr{
		A("data-slot", "field-set"),
		A("class", "flex flex-col gap-6"),
	}, attrs, children...)
}

// FieldLegend renders the legend of a FieldSet.
func FieldLegend(attrs []Attr, children ...g.Node) g.Node {
	return element("legend", []Attr{
		A("data-slot", "field-legend"),
		A("class", "mb-3 text-base font-medium"),
	}, attrs, children...)
}

// FieldLabel is a Label styled for use inside a Field.
func FieldLabel(attrs []Attr, children ...g.Node) g.Node {
	return Label(MergeAttrs([]Attr{
		A("data-slot", "field-label"),
		A("class", "group/field-label flex w-fit gap-2 leading-snug"),
	}, attrs), children...)
}

// FieldDescription renders helper text for a field.
func FieldDescription(attrs []Attr, children ...g.Node) g.Node {
	return element("p", []Attr{
		A("data-slot", "field-description"),
		A("class", "text-muted-foreground text-sm leading-normal font-normal"),
	}, attrs, children...)
}

// FieldSeparator draws a horizontal rule, with optional centered text.
func FieldSeparator(attrs []Attr, children ...g.Node) g.Node {
	inner := []g.Node{
		g.El("hr", g.Attr("class", "absolute inset-0 top-1/2 border-t")),
	}
	if len(children) > 0 {
		inner = append(inner, g.El("span",
			g.Attr("class", "bg-background text-muted-foreground relative mx-auto block w-fit px-2"),
			g.Attr("data-slot", "field-separator-content"),
			g.Group(children),
		))
	}
	return element("div", []Attr{
		A("data-slot", "field-separator"),
		A("class", "relative -my-2 h-5 text-sm"),
	}, attrs, inner...)
}
