package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghexplorer/internal/model"
)

type palette struct {
	text, subtle, accent, errorFg, border, buttonFg, buttonBg lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeLight: {
		text:     lipgloss.Color("235"),
		subtle:   lipgloss.Color("244"),
		accent:   lipgloss.Color("33"),
		errorFg:  lipgloss.Color("160"),
		border:   lipgloss.Color("250"),
		buttonFg: lipgloss.Color("255"),
		buttonBg: lipgloss.Color("33"),
	},
	model.ThemeDark: {
		text:     lipgloss.Color("252"),
		subtle:   lipgloss.Color("245"),
		accent:   lipgloss.Color("39"),
		errorFg:  lipgloss.Color("203"),
		border:   lipgloss.Color("238"),
		buttonFg: lipgloss.Color("236"),
		buttonBg: lipgloss.Color("39"),
	},
}

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Doc           lipgloss.Style
	Title         lipgloss.Style
	Text          lipgloss.Style
	Subtle        lipgloss.Style
	Error         lipgloss.Style
	Login         lipgloss.Style
	Card          lipgloss.Style
	CardName      lipgloss.Style
	Placeholder   lipgloss.Style
	Stars         lipgloss.Style
	Link          lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Prompt        lipgloss.Style
}

// NewStyles returns the styles for t.
func NewStyles(t model.Theme) Styles {
	p, ok := palettes[t]
	if !ok {
		p = palettes[model.DefaultTheme]
	}

	button := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border)

	return Styles{
		Doc:    lipgloss.NewStyle().Margin(1, 2),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Text:   lipgloss.NewStyle().Foreground(p.text),
		Subtle: lipgloss.NewStyle().Foreground(p.subtle),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.errorFg),
		Login: lipgloss.NewStyle().Bold(true).Foreground(p.text),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		CardName:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		Placeholder: lipgloss.NewStyle().Italic(true).Foreground(p.subtle),
		Stars:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Link:        lipgloss.NewStyle().Foreground(p.accent).Underline(true),
		Button:      button,
		ButtonFocused: button.
			Foreground(p.buttonFg).
			Background(p.buttonBg).
			BorderForeground(p.accent),
		Prompt: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.errorFg).
			Padding(1, 3).
			Bold(true),
	}
}
