package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/theme"
)

// Screen is the terminal render surface. It holds what each panel shows;
// the explorer model or the user command turns it into a string with Render.
type Screen struct {
	visible   map[render.Panel]bool
	errorText string
	profile   render.Profile
	cards     []render.Card
	empty     bool
	attrs     map[string]string
	indicator string
}

var (
	_ render.Surface = (*Screen)(nil)
	_ theme.Document = (*Screen)(nil)
)

// NewScreen returns an empty screen.
func NewScreen() *Screen {
	return &Screen{
		visible: make(map[render.Panel]bool),
		attrs:   make(map[string]string),
	}
}

// clean makes remote text safe to print: escape sequences are stripped so a
// profile or description can never drive the terminal, and line breaks are
// flattened.
func clean(s string) string {
	s = ansi.Strip(s)

	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

func cleanOptional(o render.OptionalText) render.OptionalText {
	o.Text = clean(o.Text)
	o.Visible = o.Visible && o.Text != ""

	return o
}

func (s *Screen) Show(p render.Panel) { s.visible[p] = true }
func (s *Screen) Hide(p render.Panel) { s.visible[p] = false }

func (s *Screen) SetErrorText(text string) { s.errorText = clean(text) }

func (s *Screen) PaintProfile(p render.Profile) {
	p.Login = clean(p.Login)
	p.Name = cleanOptional(p.Name)
	p.Bio = cleanOptional(p.Bio)
	p.Location = cleanOptional(p.Location)
	p.ProfileURL = clean(p.ProfileURL)
	p.AvatarSrc = clean(p.AvatarSrc)
	p.AvatarAlt = clean(p.AvatarAlt)

	s.profile = p
}

func (s *Screen) PaintRepositories(cards []render.Card) {
	s.cards = make([]render.Card, 0, len(cards))

	for _, c := range cards {
		c.Name = clean(c.Name)
		c.Description = clean(c.Description)
		c.HasDescription = c.HasDescription && c.Description != ""
		c.URL = clean(c.URL)
		s.cards = append(s.cards, c)
	}

	s.empty = false
}

func (s *Screen) PaintEmptyRepositories() {
	s.cards = nil
	s.empty = true
}

func (s *Screen) SetAttribute(name, value string) { s.attrs[name] = value }
func (s *Screen) Attribute(name string) string    { return s.attrs[name] }
func (s *Screen) SetIndicator(glyph string)       { s.indicator = glyph }

// Visible reports whether panel p is shown.
func (s *Screen) Visible(p render.Panel) bool { return s.visible[p] }

// ErrorText returns the error panel text.
func (s *Screen) ErrorText() string { return s.errorText }

// Cards returns the painted repository cards.
func (s *Screen) Cards() []render.Card { return s.cards }

// Theme returns the applied theme.
func (s *Screen) Theme() model.Theme {
	return model.ParseTheme(s.attrs[theme.Attribute])
}

// Indicator returns the theme toggle glyph.
func (s *Screen) Indicator() string { return s.indicator }

// Render draws the visible panels. loading is the text shown in the loading
// panel, typically a spinner.
func (s *Screen) Render(st Styles, width int, loading string) string {
	var sections []string

	for _, p := range render.Panels {
		if !s.visible[p] {
			continue
		}

		switch p {
		case render.PanelWelcome:
			sections = append(sections, st.Subtle.Render("Search for a GitHub user to see their profile and repositories."))
		case render.PanelLoading:
			sections = append(sections, loading)
		case render.PanelError:
			sections = append(sections, st.Error.Render(s.errorText))
		case render.PanelProfile:
			sections = append(sections, s.renderProfile(st))
		case render.PanelRepositories:
			sections = append(sections, s.renderRepositories(st, width))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (s *Screen) renderProfile(st Styles) string {
	p := s.profile

	var sb strings.Builder

	sb.WriteString(st.Login.Render(p.Login))

	if p.Name.Visible {
		sb.WriteString("  " + st.Text.Render(p.Name.Text))
	}

	sb.WriteString("\n")

	if p.Bio.Visible {
		sb.WriteString(st.Text.Render(p.Bio.Text) + "\n")
	}

	if p.Location.Visible {
		sb.WriteString(st.Subtle.Render("📍 "+p.Location.Text) + "\n")
	}

	sb.WriteString(st.Text.Render(fmt.Sprintf("%d followers · %d following", p.Followers, p.Following)) + "\n")
	sb.WriteString(st.Link.Render(p.ProfileURL))

	return sb.String()
}

func (s *Screen) renderRepositories(st Styles, width int) string {
	if s.empty {
		return st.Subtle.Render(render.NoRepositories)
	}

	cardWidth := 0
	if width > 8 {
		cardWidth = width - 4
	}

	cards := make([]string, 0, len(s.cards)+1)
	cards = append(cards, st.Title.Render("Repositories"))

	for _, c := range s.cards {
		desc := st.Placeholder.Render(render.NoDescription)
		if c.HasDescription {
			desc = st.Text.Render(c.Description)
		}

		body := lipgloss.JoinVertical(lipgloss.Left,
			st.CardName.Render(c.Name),
			desc,
			st.Stars.Render(fmt.Sprintf("★ %d", c.Stars))+"  "+st.Link.Render(c.URL),
		)

		card := st.Card
		if cardWidth > 0 {
			card = card.Width(cardWidth)
		}

		cards = append(cards, card.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}
