package render

import (
	"errors"
	"fmt"

	"github.com/inovacc/ghexplorer/internal/model"
)

// ErrInvalidTransition is returned when an event is not allowed from the
// current state.
var ErrInvalidTransition = errors.New("render: invalid transition")

// State is the view currently shown. Exactly one is visible at a time.
type State int

const (
	StateWelcome State = iota
	StateLoading
	StateError
	StateResults
)

func (s State) String() string {
	switch s {
	case StateWelcome:
		return "welcome"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateResults:
		return "results"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Panel is a region of the surface that can be shown or hidden.
type Panel int

const (
	PanelWelcome Panel = iota
	PanelLoading
	PanelError
	PanelProfile
	PanelRepositories
)

// Panels lists every panel in display order.
var Panels = []Panel{PanelWelcome, PanelLoading, PanelError, PanelProfile, PanelRepositories}

func (p Panel) String() string {
	switch p {
	case PanelWelcome:
		return "welcome"
	case PanelLoading:
		return "loading"
	case PanelError:
		return "error"
	case PanelProfile:
		return "profile"
	case PanelRepositories:
		return "repositories"
	}

	return fmt.Sprintf("Panel(%d)", int(p))
}

// VisiblePanels returns the panels shown in state s.
func VisiblePanels(s State) []Panel {
	switch s {
	case StateLoading:
		return []Panel{PanelLoading}
	case StateError:
		return []Panel{PanelError}
	case StateResults:
		return []Panel{PanelProfile, PanelRepositories}
	default:
		return []Panel{PanelWelcome}
	}
}

// Event drives a state transition.
type Event interface {
	event()
}

// LoadingEvent starts a search.
type LoadingEvent struct{}

// ErrorEvent ends a search with a user-facing message.
type ErrorEvent struct {
	Message string
}

// ResultsEvent ends a search with both payloads.
type ResultsEvent struct {
	User  model.User
	Repos []model.Repository
}

func (LoadingEvent) event() {}
func (ErrorEvent) event()   {}
func (ResultsEvent) event() {}

// Initial returns the effects that put a fresh surface in the welcome state.
func Initial() []Effect {
	return showOnly(StateWelcome)
}

// Reduce computes the next state and the effects to apply for ev. It has no
// side effects. Error and results are only accepted while loading; any other
// combination returns ErrInvalidTransition with s unchanged and no effects.
func Reduce(s State, ev Event) (State, []Effect, error) {
	switch ev := ev.(type) {
	case LoadingEvent:
		effects := hideAllBut(PanelLoading)
		effects = append(effects, SetErrorText{}, Show{Panel: PanelLoading})

		return StateLoading, effects, nil

	case ErrorEvent:
		if s != StateLoading {
			return s, nil, fmt.Errorf("%w: error from %s", ErrInvalidTransition, s)
		}

		effects := hideAllBut(PanelError)
		effects = append(effects, SetErrorText{Text: ev.Message}, Show{Panel: PanelError})

		return StateError, effects, nil

	case ResultsEvent:
		if s != StateLoading {
			return s, nil, fmt.Errorf("%w: results from %s", ErrInvalidTransition, s)
		}

		effects := hideAllBut(PanelProfile, PanelRepositories)
		effects = append(effects,
			PaintProfile{Profile: NewProfile(ev.User)},
			Show{Panel: PanelProfile},
		)

		if len(ev.Repos) == 0 {
			effects = append(effects, PaintEmptyRepositories{})
		} else {
			effects = append(effects, PaintRepositories{Cards: NewCards(ev.Repos)})
		}

		effects = append(effects, Show{Panel: PanelRepositories})

		return StateResults, effects, nil
	}

	return s, nil, fmt.Errorf("%w: unknown event %T", ErrInvalidTransition, ev)
}

func showOnly(s State) []Effect {
	visible := VisiblePanels(s)

	effects := hideAllBut(visible...)
	for _, p := range visible {
		effects = append(effects, Show{Panel: p})
	}

	return effects
}

func hideAllBut(keep ...Panel) []Effect {
	effects := make([]Effect, 0, len(Panels)+3)

next:
	for _, p := range Panels {
		for _, k := range keep {
			if p == k {
				continue next
			}
		}

		effects = append(effects, Hide{Panel: p})
	}

	return effects
}
