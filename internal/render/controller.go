package render

import "github.com/inovacc/ghexplorer/internal/model"

// Controller owns the view state of one surface and applies the effects of
// each transition to it. It is not safe for concurrent use.
type Controller struct {
	state   State
	surface Surface
}

// NewController puts surface in the welcome state and returns its controller.
func NewController(surface Surface) *Controller {
	c := &Controller{state: StateWelcome, surface: surface}
	c.apply(Initial())

	return c
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch runs ev through Reduce and applies the resulting effects in order.
func (c *Controller) Dispatch(ev Event) error {
	next, effects, err := Reduce(c.state, ev)
	if err != nil {
		return err
	}

	c.apply(effects)
	c.state = next

	return nil
}

// EnterLoading dispatches a LoadingEvent.
func (c *Controller) EnterLoading() error {
	return c.Dispatch(LoadingEvent{})
}

// EnterError dispatches an ErrorEvent showing message.
func (c *Controller) EnterError(message string) error {
	return c.Dispatch(ErrorEvent{Message: message})
}

// EnterResults dispatches a ResultsEvent for user and repos.
func (c *Controller) EnterResults(user model.User, repos []model.Repository) error {
	return c.Dispatch(ResultsEvent{User: user, Repos: repos})
}

func (c *Controller) apply(effects []Effect) {
	for _, e := range effects {
		e.Apply(c.surface)
	}
}
