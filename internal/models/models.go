package models

// LabeledValue is a single label/value pair shown inside a section.
type LabeledValue struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// SectionContent is the input of the generic section renderer.
// An empty Title falls back to the renderer default, an empty Description
// is treated as absent. Items keep the caller's order; labels may repeat.
type SectionContent struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Items       []LabeledValue `yaml:"items"`
}

// TeamMemberEntry represents a single person on the About page.
type TeamMemberEntry struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Bio         string `yaml:"bio"`
	ImageURL    string `yaml:"image_url"`
	ImageWidth  int    `yaml:"image_width"`
	ImageHeight int    `yaml:"image_height"`
}

// HeroContent is the banner at the top of a page.
type HeroContent struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// MissionContent feeds the mission/vision/values grid.
type MissionContent struct {
	Title   string   `yaml:"title"`
	Mission string   `yaml:"mission"`
	Vision  string   `yaml:"vision"`
	Values  []string `yaml:"values"`
}

// AboutPage is everything the About assembler renders, top to bottom.
type AboutPage struct {
	Hero      HeroContent       `yaml:"hero"`
	Mission   MissionContent    `yaml:"mission"`
	Sections  []SectionContent  `yaml:"sections"`
	TeamTitle string            `yaml:"team_title"`
	Team      []TeamMemberEntry `yaml:"team"`
}

// ContactPage is everything the Contact assembler renders.
// A nil Info list means "use the default contact details".
type ContactPage struct {
	Hero      HeroContent    `yaml:"hero"`
	FormTitle string         `yaml:"form_title"`
	Info      []LabeledValue `yaml:"info"`
}

// HomePage is the landing page.
type HomePage struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Site is the full content of the generated website.
type Site struct {
	Name    string      `yaml:"name"`
	Home    HomePage    `yaml:"home"`
	About   AboutPage   `yaml:"about"`
	Contact ContactPage `yaml:"contact"`
}
