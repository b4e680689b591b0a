// Package htmlview renders the explorer view as a standalone HTML document.
package htmlview

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/theme"
	"github.com/microcosm-cc/bluemonday"
)

const defaultTitle = "GitHub User Explorer"

// Document is an HTML render surface. It implements render.Surface and
// theme.Document. The zero value is not usable; call New.
type Document struct {
	mu sync.Mutex

	title     string
	visible   map[render.Panel]bool
	errorText string
	profile   *render.Profile
	grid      template.HTML
	attrs     map[string]string
	indicator string
	policy    *bluemonday.Policy
}

var (
	_ render.Surface = (*Document)(nil)
	_ theme.Document = (*Document)(nil)
)

// New returns an empty document.
func New() *Document {
	return &Document{
		title:   defaultTitle,
		visible: make(map[render.Panel]bool),
		attrs:   make(map[string]string),
		policy:  cardPolicy(),
	}
}

// cardPolicy is applied to the repository grid after templating. Besides
// stripping anything unexpected, it forces every absolute link to open in a
// new browsing context with rel="nofollow noreferrer noopener".
func cardPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("a", "h3", "p", "em", "div")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("href").OnElements("a")
	p.AllowStandardURLs()
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	return p
}

// Show makes panel p visible.
func (d *Document) Show(p render.Panel) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.visible[p] = true
}

// Hide hides panel p.
func (d *Document) Hide(p render.Panel) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.visible[p] = false
}

// SetErrorText sets the error panel text. It is escaped when rendered.
func (d *Document) SetErrorText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.errorText = text
}

// PaintProfile fills the profile panel.
func (d *Document) PaintProfile(p render.Profile) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.profile = &p
}

// PaintRepositories renders and sanitizes the repository grid.
func (d *Document) PaintRepositories(cards []render.Card) {
	d.paintGrid(cardsData{Cards: cards, NoDescription: render.NoDescription})
}

// PaintEmptyRepositories replaces the grid with the empty placeholder.
func (d *Document) PaintEmptyRepositories() {
	d.paintGrid(cardsData{Empty: true, EmptyText: render.NoRepositories})
}

type cardsData struct {
	Cards         []render.Card
	Empty         bool
	EmptyText     string
	NoDescription string
}

func (d *Document) paintGrid(data cardsData) {
	var buf bytes.Buffer

	// cardsTemplate only ranges over plain values, so Execute cannot fail
	// except on write errors, which a bytes.Buffer never returns.
	_ = cardsTemplate.Execute(&buf, data)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.grid = template.HTML(d.policy.Sanitize(buf.String())) //nolint:gosec // sanitized above
}

// SetAttribute sets an attribute on the <html> element.
func (d *Document) SetAttribute(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.attrs[name] = value
}

// Attribute returns an attribute of the <html> element.
func (d *Document) Attribute(name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.attrs[name]
}

// SetIndicator sets the glyph on the theme toggle.
func (d *Document) SetIndicator(glyph string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.indicator = glyph
}

// Visible reports whether panel p is shown.
func (d *Document) Visible(p render.Panel) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.visible[p]
}

// Grid returns the sanitized repository grid markup.
func (d *Document) Grid() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return string(d.grid)
}

type pageData struct {
	Title     string
	Theme     string
	Indicator string
	Visible   map[string]bool
	ErrorText string
	Profile   *render.Profile
	Grid      template.HTML
}

// WritePage writes the complete HTML document to w.
func (d *Document) WritePage(w io.Writer) error {
	d.mu.Lock()

	data := pageData{
		Title:     d.title,
		Theme:     d.attrs[theme.Attribute],
		Indicator: d.indicator,
		Visible:   make(map[string]bool, len(d.visible)),
		ErrorText: d.errorText,
		Profile:   d.profile,
		Grid:      d.grid,
	}

	for p, v := range d.visible {
		data.Visible[p.String()] = v
	}

	d.mu.Unlock()

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	return nil
}
