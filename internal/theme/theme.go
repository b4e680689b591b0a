// Package theme persists and applies the light/dark preference.
package theme

import (
	"fmt"
	"log/slog"

	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/model"
)

const (
	// Key is the preference slot holding the theme.
	Key = "theme"

	// Attribute is the document-level attribute carrying the applied theme.
	Attribute = "data-theme"
)

// Document is the render surface a theme is applied to.
type Document interface {
	SetAttribute(name, value string)
	Attribute(name string) string
	SetIndicator(glyph string)
}

// Preferences reads, writes and applies the theme preference.
type Preferences struct {
	store  database.Store
	doc    Document
	logger *slog.Logger
}

// New returns Preferences backed by store and applied to doc.
func New(store database.Store, doc Document, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.Default()
	}

	return &Preferences{store: store, doc: doc, logger: logger}
}

// Load returns the persisted theme, or the default when the slot is unset,
// holds an unknown value, or cannot be read.
func (p *Preferences) Load() model.Theme {
	v, ok, err := p.store.GetPreference(Key)
	if err != nil {
		p.logger.Warn("failed to read theme preference", slog.Any("error", err))

		return model.DefaultTheme
	}

	if !ok {
		return model.DefaultTheme
	}

	t := model.Theme(v)
	if !t.Valid() {
		p.logger.Debug("ignoring invalid theme preference", slog.String("value", v))

		return model.DefaultTheme
	}

	return t
}

// Save persists t.
func (p *Preferences) Save(t model.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q", t)
	}

	if err := p.store.SetPreference(Key, t.String()); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

// Apply sets the document attribute and the toggle indicator for t.
func (p *Preferences) Apply(t model.Theme) {
	p.doc.SetAttribute(Attribute, t.String())
	p.doc.SetIndicator(t.Glyph())
}

// Init loads the persisted theme and applies it.
func (p *Preferences) Init() model.Theme {
	t := p.Load()
	p.Apply(t)

	return t
}

// Set applies and persists t.
func (p *Preferences) Set(t model.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q", t)
	}

	p.Apply(t)

	return p.Save(t)
}

// Toggle flips the currently applied theme, applies it and persists it.
// The new theme stays applied even when saving fails.
func (p *Preferences) Toggle() (model.Theme, error) {
	next := model.ParseTheme(p.doc.Attribute(Attribute)).Toggle()

	return next, p.Set(next)
}

// Attributes is a minimal Document for callers without a render surface,
// such as the theme command.
type Attributes struct {
	attrs     map[string]string
	Indicator string
}

func (a *Attributes) SetAttribute(name, value string) {
	if a.attrs == nil {
		a.attrs = make(map[string]string)
	}

	a.attrs[name] = value
}

func (a *Attributes) Attribute(name string) string {
	return a.attrs[name]
}

func (a *Attributes) SetIndicator(glyph string) {
	a.Indicator = glyph
}
