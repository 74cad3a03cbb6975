package ui

import (
	g "maragu.dev/gomponents"
)

// ButtonVariant selects the colour scheme of a Button.
type ButtonVariant string

const (
	ButtonDefault     ButtonVariant = "default"
	ButtonDestructive ButtonVariant = "destructive"
	ButtonOutline     ButtonVariant = "outline"
	ButtonSecondary   ButtonVariant = "secondary"
	ButtonGhost       ButtonVariant = "ghost"
	ButtonLink        ButtonVariant = "link"
)

// ButtonSize selects the height and padding of a Button.
type ButtonSize string

const (
	SizeDefault ButtonSize = "default"
	SizeSm      ButtonSize = "sm"
	SizeLg      ButtonSize = "lg"
	SizeIcon    ButtonSize = "icon"
)

const buttonBase = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md text-sm font-medium transition-all disabled:pointer-events-none disabled:opacity-50 outline-none focus-visible:ring-[3px] focus-visible:ring-ring/50"

var buttonVariantClasses = map[ButtonVariant]string{
	ButtonDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonDestructive: "bg-destructive text-white hover:bg-destructive/90",
	ButtonOutline:     "border bg-background shadow-xs hover:bg-accent hover:text-accent-foreground",
	ButtonSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizeClasses = map[ButtonSize]string{
	SizeDefault: "h-9 px-4 py-2",
	SizeSm:      "h-8 gap-1.5 rounded-md px-3",
	SizeLg:      "h-10 rounded-md px-6",
	SizeIcon:    "size-9",
}

// ButtonProps selects the visual variant of a Button. Zero values and
// unknown names fall back to the default variant and size.
type ButtonProps struct {
	Variant ButtonVariant
	Size    ButtonSize
}

// ButtonClasses returns the class list for a variant/size pair so that
// links and other elements can look like buttons.
func ButtonClasses(variant ButtonVariant, size ButtonSize) string {
	v, ok := buttonVariantClasses[variant]
	if !ok {
		v = buttonVariantClasses[ButtonDefault]
	}
	s, ok := buttonSizeClasses[size]
	if !ok {
		s = buttonSizeClasses[SizeDefault]
	}
	return Cn(buttonBase, v, s)
}

// Button renders a <button>, type="button" unless the caller overrides it.
func Button(props ButtonProps, attrs []Attr, children ...g.Node) g.Node {
	defaults := []Attr{
		A("data-slot", "button"),
		A("type", "button"),
		A("class", ButtonClasses(props.Variant, props.Size)),
	}
	return element("button", defaults, attrs, children...)
}
