package ui

import (
	g "maragu.dev/gomponents"
)

const controlClasses = "w-full min-w-0 rounded-md border bg-transparent text-base shadow-xs outline-none md:text-sm placeholder:text-muted-foreground disabled:cursor-not-allowed disabled:opacity-50 focus-visible:ring-[3px] focus-visible:ring-ring/50"

// Input renders an <input>, type="text" unless overridden.
func Input(attrs []Attr) g.Node {
	return element("input", []Attr{
		A("data-slot", "input"),
		A("type", "text"),
		A("class", Cn(controlClasses, "h-9 px-3 py-1")),
	}, attrs)
}

// Textarea renders a multi-line text control.
func Textarea(attrs []Attr) g.Node {
	return element("textarea", []Attr{
		A("data-slot", "textarea"),
		A("class", Cn(controlClasses, "flex field-sizing-content min-h-16 px-3 py-2")),
	}, attrs)
}

// Label renders a <label>; pass A("for", id) to tie it to a control.
func Label(attrs []Attr, children ...g.Node) g.Node {
	return element("label", []Attr{
		A("data-slot", "label"),
		A("class", "flex items-center gap-2 text-sm leading-none font-medium select-none"),
	}, attrs, children...)
}
