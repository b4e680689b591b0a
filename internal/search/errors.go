package search

import (
	"errors"
	"fmt"

	"github.com/inovacc/ghexplorer/internal/ghclient"
)

const (
	// PromptMessage is shown when a search is submitted without a username.
	PromptMessage = "Please enter a GitHub username"

	// NotFoundMessage is the error text for an unknown user.
	NotFoundMessage = "User not found"
)

// ErrSuperseded is returned by a search whose result was dropped because a
// newer search started before it settled.
var ErrSuperseded = errors.New("search superseded by a newer search")

// ValidationError reports input rejected before any request was made.
type ValidationError struct {
	Input   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Message)
}

// Message converts a fetch error into the text shown in the error view.
func Message(err error) string {
	if errors.Is(err, ghclient.ErrNotFound) {
		return NotFoundMessage
	}

	return "Error: " + err.Error()
}
