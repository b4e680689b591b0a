package cli

import (
	"context"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/ghclient"
	"github.com/inovacc/ghexplorer/internal/logger"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/search"
	"github.com/inovacc/ghexplorer/internal/theme"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls atomic.Int32
	users map[string]model.User
	repos map[string][]model.Repository
}

func (f *fakeFetcher) FetchUser(_ context.Context, login string) (*model.User, error) {
	f.calls.Add(1)

	u, ok := f.users[login]
	if !ok {
		return nil, &ghclient.NotFoundError{Login: login}
	}

	return &u, nil
}

func (f *fakeFetcher) FetchRepositories(_ context.Context, login string) ([]model.Repository, error) {
	f.calls.Add(1)

	if _, ok := f.users[login]; !ok {
		return nil, &ghclient.RemoteError{Op: ghclient.OpRepositories, Status: 404}
	}

	return f.repos[login], nil
}

func newTestExplorer(t *testing.T) (ExplorerModel, *fakeFetcher, database.Store) {
	t.Helper()

	fetcher := &fakeFetcher{
		users: map[string]model.User{"octocat": {Login: "octocat", Name: "The Octocat"}},
		repos: map[string][]model.Repository{"octocat": {
			{Name: "small", HTMLURL: "https://github.com/octocat/small", Stars: 1},
			{Name: "big", HTMLURL: "https://github.com/octocat/big", Stars: 50},
		}},
	}

	store := database.NewMemory()
	t.Cleanup(func() { _ = store.Close() })

	m := NewExplorer(context.Background(), ExplorerOptions{
		Fetcher: fetcher,
		Store:   store,
		Logger:  logger.Discard(),
	})

	return m, fetcher, store
}

// update feeds msg to m and delivers every transition posted so far.
// Returned commands, such as cursor blinks, are not run.
func update(t *testing.T, m ExplorerModel, msg tea.Msg) ExplorerModel {
	t.Helper()

	next, _ := m.Update(msg)

	return drain(next.(ExplorerModel))
}

func drain(m ExplorerModel) ExplorerModel {
	for {
		select {
		case pending := <-m.renderer.msgs:
			next, _ := m.Update(pending)
			m = next.(ExplorerModel)
		default:
			return m
		}
	}
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// enterSearch types login, presses enter and runs the search to completion.
func enterSearch(t *testing.T, m ExplorerModel, login string) ExplorerModel {
	t.Helper()

	m.input.SetValue(login)

	next, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)

	done := cmd()
	require.IsType(t, searchDoneMsg{}, done)

	next, _ = next.(ExplorerModel).Update(done)

	return drain(next.(ExplorerModel))
}

func TestExplorer_SearchShowsResults(t *testing.T) {
	m, fetcher, _ := newTestExplorer(t)

	m = enterSearch(t, m, "  octocat  ")

	require.Equal(t, render.StateResults, m.controller.State())
	require.EqualValues(t, 2, fetcher.calls.Load())

	cards := m.screen.Cards()
	require.Len(t, cards, 2)
	require.Equal(t, "big", cards[0].Name)

	view := m.View()
	require.Contains(t, view, "The Octocat")
	require.Contains(t, view, "big")
}

func TestExplorer_SearchNotFound(t *testing.T) {
	m, _, _ := newTestExplorer(t)

	m = enterSearch(t, m, "doesnotexist12345")

	require.Equal(t, render.StateError, m.controller.State())
	require.Equal(t, search.NotFoundMessage, m.screen.ErrorText())
	require.Contains(t, m.View(), search.NotFoundMessage)
}

func TestExplorer_EmptyInputPrompts(t *testing.T) {
	m, fetcher, _ := newTestExplorer(t)

	m = enterSearch(t, m, "   ")

	require.Equal(t, render.StateWelcome, m.controller.State())
	require.Zero(t, fetcher.calls.Load())
	require.Equal(t, search.PromptMessage, m.prompt)
	require.Contains(t, m.View(), search.PromptMessage)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	require.Empty(t, m.prompt)
	require.Equal(t, focusInput, m.focus)
	require.True(t, m.input.Focused())
}

func TestExplorer_ThemeToggle(t *testing.T) {
	m, _, store := newTestExplorer(t)

	require.Equal(t, model.ThemeLight, m.screen.Theme())

	m = update(t, m, key(tea.KeyCtrlT))

	require.Equal(t, model.ThemeDark, m.screen.Theme())
	require.Equal(t, model.ThemeDark.Glyph(), m.screen.Indicator())

	saved, ok, err := store.GetPreference(theme.Key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", saved)

	// Focus the toggle and press enter.
	m = update(t, m, key(tea.KeyTab))
	require.Equal(t, focusSearch, m.focus)

	m = update(t, m, key(tea.KeyTab))
	require.Equal(t, focusTheme, m.focus)
	require.False(t, m.input.Focused())

	m = update(t, m, key(tea.KeyEnter))
	require.Equal(t, model.ThemeLight, m.screen.Theme())

	saved, _, err = store.GetPreference(theme.Key)
	require.NoError(t, err)
	require.Equal(t, "light", saved)
}

func TestExplorer_RestoresSavedTheme(t *testing.T) {
	store := database.NewMemory()
	require.NoError(t, store.SetPreference(theme.Key, "dark"))

	m := NewExplorer(context.Background(), ExplorerOptions{
		Fetcher: &fakeFetcher{},
		Store:   store,
		Logger:  logger.Discard(),
	})

	require.Equal(t, model.ThemeDark, m.screen.Theme())
}

func TestExplorer_FocusCycle(t *testing.T) {
	m, _, _ := newTestExplorer(t)

	require.Equal(t, focusInput, m.focus)

	m = update(t, m, key(tea.KeyShiftTab))
	require.Equal(t, focusTheme, m.focus)

	m = update(t, m, key(tea.KeyTab))
	require.Equal(t, focusInput, m.focus)
	require.True(t, m.input.Focused())
}

func TestExplorer_Quit(t *testing.T) {
	m, _, _ := newTestExplorer(t)

	next, cmd := m.Update(key(tea.KeyEsc))
	m = next.(ExplorerModel)

	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
	require.ErrorIs(t, m.renderer.EnterLoading(), errRendererClosed)
}
