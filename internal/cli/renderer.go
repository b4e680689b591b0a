package cli

import (
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/search"
)

var errRendererClosed = errors.New("renderer closed")

type (
	loadingMsg struct{}
	errorMsg   struct{ message string }
	resultsMsg struct {
		user  model.User
		repos []model.Repository
	}
	promptMsg     struct{ message string }
	searchDoneMsg struct{ err error }
)

// channelRenderer forwards the orchestrator's transitions to the bubbletea
// update loop, which owns the screen. Sends fail once the renderer is closed.
type channelRenderer struct {
	msgs chan tea.Msg
	done chan struct{}
	once sync.Once
}

var (
	_ search.Renderer = (*channelRenderer)(nil)
	_ search.Prompter = (*channelRenderer)(nil)
)

func newChannelRenderer(size int) *channelRenderer {
	return &channelRenderer{
		msgs: make(chan tea.Msg, size),
		done: make(chan struct{}),
	}
}

func (r *channelRenderer) send(msg tea.Msg) error {
	select {
	case <-r.done:
		return errRendererClosed
	default:
	}

	select {
	case r.msgs <- msg:
		return nil
	case <-r.done:
		return errRendererClosed
	}
}

func (r *channelRenderer) EnterLoading() error {
	return r.send(loadingMsg{})
}

func (r *channelRenderer) EnterError(message string) error {
	return r.send(errorMsg{message: message})
}

func (r *channelRenderer) EnterResults(user model.User, repos []model.Repository) error {
	return r.send(resultsMsg{user: user, repos: repos})
}

func (r *channelRenderer) Prompt(message string) {
	_ = r.send(promptMsg{message: message})
}

func (r *channelRenderer) Close() {
	r.once.Do(func() { close(r.done) })
}

// listen waits for the next transition.
func (r *channelRenderer) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-r.msgs:
			return msg
		case <-r.done:
			return nil
		}
	}
}
