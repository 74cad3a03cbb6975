// Package pagegen mounts the page assemblers into the site layout and writes
// the resulting HTML files.
package pagegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"kcphysics/aiCompanySite/internal/features/about"
	"kcphysics/aiCompanySite/internal/features/contact"
	"kcphysics/aiCompanySite/internal/features/home"
	"kcphysics/aiCompanySite/internal/models"
)

//go:embed templates
var templateFS embed.FS

// ErrUnknownPage is returned when rendering a page name that is not in Pages.
var ErrUnknownPage = errors.New("unknown page")

// EntryPage binds a page name to the assembler that renders its body.
type EntryPage struct {
	Name   string
	Title  string
	Render func(models.Site) g.Node
}

// FileName is the name of the generated file for the page.
func (p EntryPage) FileName() string {
	return p.Name + ".html"
}

// Pages lists every entry page in navigation order.
var Pages = []EntryPage{
	{Name: "index", Title: "Home", Render: func(s models.Site) g.Node { return home.Page(s.Home) }},
	{Name: "about", Title: "About", Render: func(s models.Site) g.Node { return about.Page(s.About) }},
	{Name: "contact", Title: "Contact", Render: func(s models.Site) g.Node { return contact.Page(s.Contact) }},
}

// Lookup returns the entry page with the given name.
func Lookup(name string) (EntryPage, bool) {
	for _, p := range Pages {
		if p.Name == name {
			return p, true
		}
	}
	return EntryPage{}, false
}

// NavItem is one link in the navbar partial.
type NavItem struct {
	Title  string
	Href   string
	Active bool
}

// PageData is the view model handed to the layout template.
type PageData struct {
	Title       string
	SiteName    string
	Path        string
	Nav         []NavItem
	Body        template.HTML
	AnalyticsID string
	Stylesheet  string
}

// Options carries the document-level settings that are not site content.
type Options struct {
	AnalyticsID string
	// Stylesheet is the href of the site stylesheet, relative to the pages.
	Stylesheet string
}

// Generator renders entry pages into the document shell.
type Generator struct {
	site models.Site
	opts Options
	tmpl *template.Template
	log  *zap.Logger
}

// New parses the embedded layout. The site content is captured by value and
// never modified.
func New(site models.Site, opts Options, log *zap.Logger) (*Generator, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}
	if opts.Stylesheet == "" {
		opts.Stylesheet = "css/site.css"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{site: site, opts: opts, tmpl: tmpl, log: log.Named("pagegen")}, nil
}

// Render writes the complete document for the named page to w.
func (gen *Generator) Render(w io.Writer, name string) error {
	page, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var body bytes.Buffer
	if err := page.Render(gen.site).Render(&body); err != nil {
		return fmt.Errorf("failed to render page %s: %w", name, err)
	}

	data := PageData{
		Title:       page.Title,
		SiteName:    gen.site.Name,
		Path:        page.FileName(),
		Nav:         gen.nav(page.Name),
		Body:        template.HTML(body.String()),
		AnalyticsID: gen.opts.AnalyticsID,
		Stylesheet:  gen.opts.Stylesheet,
	}
	if err := gen.tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("failed to execute layout for %s: %w", name, err)
	}
	return nil
}

func (gen *Generator) nav(active string) []NavItem {
	items := make([]NavItem, 0, len(Pages))
	for _, p := range Pages {
		items = append(items, NavItem{Title: p.Title, Href: p.FileName(), Active: p.Name == active})
	}
	return items
}

// GenerateAll writes every entry page into outputDir and returns the paths
// written.
func (gen *Generator) GenerateAll(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(Pages))
	for _, p := range Pages {
		outputPath := filepath.Join(outputDir, p.FileName())
		if err := gen.generate(outputPath, p.Name); err != nil {
			return written, err
		}
		gen.log.Info("Generated page", zap.String("path", outputPath))
		written = append(written, outputPath)
	}
	return written, nil
}

func (gen *Generator) generate(outputPath, name string) error {
	var buf bytes.Buffer
	if err := gen.Render(&buf, name); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outputPath, err)
	}
	return nil
}
