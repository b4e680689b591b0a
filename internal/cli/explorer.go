package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/metrics"
	"github.com/inovacc/ghexplorer/internal/render"
	"github.com/inovacc/ghexplorer/internal/search"
	"github.com/inovacc/ghexplorer/internal/theme"
)

type focus int

const (
	focusInput focus = iota
	focusSearch
	focusTheme
	focusCount
)

// ExplorerOptions configures the explorer. Fetcher and Store are required.
type ExplorerOptions struct {
	Fetcher search.Fetcher
	Store   database.Store
	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// ExplorerModel is the interactive user explorer: a username input, a
// search button and a theme toggle above the result panels.
type ExplorerModel struct {
	ctx          context.Context
	input        textinput.Model
	spinner      spinner.Model
	focus        focus
	prompt       string
	width        int
	styles       Styles
	screen       *Screen
	controller   *render.Controller
	prefs        *theme.Preferences
	renderer     *channelRenderer
	orchestrator *search.Orchestrator
	logger       *slog.Logger
	quitting     bool
}

// NewExplorer creates the explorer model, restoring the persisted theme.
func NewExplorer(ctx context.Context, opts ExplorerOptions) ExplorerModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.Placeholder = "GitHub username"
	ti.Prompt = "› "
	ti.CharLimit = 39
	ti.Width = 40
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	screen := NewScreen()
	renderer := newChannelRenderer(16)

	prefs := theme.New(opts.Store, screen, logger)
	current := prefs.Init()

	m := ExplorerModel{
		ctx:        ctx,
		input:      ti,
		spinner:    s,
		styles:     NewStyles(current),
		screen:     screen,
		controller: render.NewController(screen),
		prefs:      prefs,
		renderer:   renderer,
		logger:     logger,
	}

	m.orchestrator = search.New(opts.Fetcher, renderer, search.Options{
		Prompter: renderer,
		Logger:   logger,
		Metrics:  opts.Metrics,
	})

	return m
}

func (m ExplorerModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.renderer.listen())
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadingMsg:
		m.dispatch(m.controller.EnterLoading())

		return m, m.renderer.listen()

	case errorMsg:
		m.dispatch(m.controller.EnterError(msg.message))

		return m, m.renderer.listen()

	case resultsMsg:
		m.dispatch(m.controller.EnterResults(msg.user, msg.repos))

		return m, m.renderer.listen()

	case promptMsg:
		m.prompt = msg.message
		m.input.Blur()

		return m, m.renderer.listen()

	case searchDoneMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m.updateInput(msg)
}

func (m ExplorerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		m.renderer.Close()
		m.orchestrator.Cancel()

		return m, tea.Quit
	}

	if m.prompt != "" {
		m.prompt = ""
		m.focus = focusInput

		return m, m.input.Focus()
	}

	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % focusCount)

	case "shift+tab":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)

	case "ctrl+t":
		m.toggleTheme()

		return m, nil

	case "enter":
		if m.focus == focusTheme {
			m.toggleTheme()

			return m, nil
		}

		return m, m.search()
	}

	if m.focus != focusInput {
		return m, nil
	}

	return m.updateInput(msg)
}

func (m ExplorerModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m ExplorerModel) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f

	if f == focusInput {
		return m, m.input.Focus()
	}

	m.input.Blur()

	return m, nil
}

// search runs the orchestrator off the update loop. Its transitions come
// back through the renderer channel.
func (m ExplorerModel) search() tea.Cmd {
	orchestrator := m.orchestrator
	ctx := m.ctx
	value := m.input.Value()

	return func() tea.Msg {
		return searchDoneMsg{err: orchestrator.HandleSearch(ctx, value)}
	}
}

func (m *ExplorerModel) toggleTheme() {
	next, err := m.prefs.Toggle()
	if err != nil {
		m.logger.Warn("failed to persist theme", slog.Any("error", err))
	}

	m.styles = NewStyles(next)
}

func (m ExplorerModel) dispatch(err error) {
	if err != nil {
		m.logger.Error("render transition rejected", slog.Any("error", err))
	}
}

func (m ExplorerModel) View() string {
	if m.quitting {
		return ""
	}

	st := m.styles

	if m.prompt != "" {
		return st.Doc.Render(st.Prompt.Render(m.prompt) + "\n\n" + st.Subtle.Render("press any key"))
	}

	button := st.Button
	if m.focus == focusSearch {
		button = st.ButtonFocused
	}

	toggle := st.Button
	if m.focus == focusTheme {
		toggle = st.ButtonFocused
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Title.Render("GitHub User Explorer"),
		"   ",
		toggle.Render(m.screen.Indicator()),
	)

	bar := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(),
		" ",
		button.Render("Search"),
	)

	width := m.width
	if width > 4 {
		width -= 4
	}

	body := m.screen.Render(st, width, m.spinner.View()+" Loading...")

	var b strings.Builder

	b.WriteString(header + "\n\n")
	b.WriteString(bar + "\n\n")
	b.WriteString(body + "\n\n")
	b.WriteString(st.Subtle.Render("enter: search • tab: focus • ctrl+t: theme • esc: quit"))

	return st.Doc.Render(b.String())
}
