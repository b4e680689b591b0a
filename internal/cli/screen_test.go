package cli

import (
	"strings"
	"testing"

	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/theme"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "color codes", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "title escape", input: "a\x1b]0;pwned\x07b", want: "ab"},
		{name: "newlines", input: "line one\nline two", want: "line one line two"},
		{name: "tabs", input: "a\tb", want: "a b"},
		{name: "bell and backspace", input: "a\x07\x08b", want: "ab"},
		{name: "unicode", input: "São Paulo ★", want: "São Paulo ★"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, clean(tt.input))
		})
	}
}

func TestScreen_FollowsController(t *testing.T) {
	s := NewScreen()
	c := render.NewController(s)

	require.True(t, s.Visible(render.PanelWelcome))

	require.NoError(t, c.EnterLoading())
	require.True(t, s.Visible(render.PanelLoading))
	require.False(t, s.Visible(render.PanelWelcome))

	require.NoError(t, c.EnterError("User not found"))
	require.True(t, s.Visible(render.PanelError))
	require.False(t, s.Visible(render.PanelLoading))
	require.Equal(t, "User not found", s.ErrorText())

	out := s.Render(NewStyles(model.ThemeLight), 80, "loading")
	require.Contains(t, out, "User not found")
	require.NotContains(t, out, "loading")
}

func TestScreen_RendersResults(t *testing.T) {
	s := NewScreen()
	c := render.NewController(s)

	user := model.User{
		Login:    "octocat",
		Name:     "The \x1b[1mOctocat\x1b[0m",
		Location: "San Francisco",
		HTMLURL:  "https://github.com/octocat",
	}
	repos := []model.Repository{
		{Name: "three", Description: "third", HTMLURL: "https://github.com/octocat/three", Stars: 3},
		{Name: "ten", HTMLURL: "https://github.com/octocat/ten", Stars: 10},
		{Name: "one", Description: "first\nsecond", HTMLURL: "https://github.com/octocat/one", Stars: 1},
	}

	require.NoError(t, c.EnterLoading())
	require.NoError(t, c.EnterResults(user, repos))

	cards := s.Cards()
	require.Len(t, cards, 3)
	require.Equal(t, "ten", cards[0].Name)
	require.Equal(t, "first second", cards[2].Description)

	out := s.Render(NewStyles(model.ThemeDark), 80, "")
	require.Contains(t, out, "The Octocat")
	require.NotContains(t, out, "\x1b[1m")
	require.Contains(t, out, "San Francisco")
	require.Contains(t, out, render.NoDescription)
	require.Less(t, strings.Index(out, "ten"), strings.Index(out, "three"))
	require.Less(t, strings.Index(out, "three"), strings.Index(out, "first second"))
}

func TestScreen_EmptyRepositories(t *testing.T) {
	s := NewScreen()
	c := render.NewController(s)

	require.NoError(t, c.EnterLoading())
	require.NoError(t, c.EnterResults(model.User{Login: "ghost"}, nil))

	require.True(t, s.Visible(render.PanelRepositories))
	require.Empty(t, s.Cards())
	require.Contains(t, s.Render(NewStyles(model.ThemeLight), 80, ""), render.NoRepositories)
}

func TestScreen_ThemeDocument(t *testing.T) {
	s := NewScreen()
	require.Equal(t, model.ThemeLight, s.Theme())

	s.SetAttribute(theme.Attribute, "dark")
	s.SetIndicator(model.ThemeDark.Glyph())

	require.Equal(t, model.ThemeDark, s.Theme())
	require.Equal(t, model.ThemeDark.Glyph(), s.Indicator())
}
