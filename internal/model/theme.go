package model

// Theme is the persisted color scheme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is used when no valid preference has been stored.
const DefaultTheme = ThemeLight

// ParseTheme converts a stored value to a Theme, falling back to
// DefaultTheme for empty or unknown values.
func ParseTheme(s string) Theme {
	switch Theme(s) {
	case ThemeLight:
		return ThemeLight
	case ThemeDark:
		return ThemeDark
	default:
		return DefaultTheme
	}
}

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}

	return ThemeDark
}

// Glyph returns the indicator shown on the theme toggle: a sun while dark is
// active (switching to light), a moon otherwise.
func (t Theme) Glyph() string {
	if t == ThemeDark {
		return "☀️"
	}

	return "🌙"
}

func (t Theme) String() string {
	return string(t)
}
