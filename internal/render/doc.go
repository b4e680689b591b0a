// Package render is the view layer shared by the terminal UI and the HTML
// document output.
//
// The view is a small state machine over [State]: welcome, loading, error and
// results. [Reduce] is a pure function from (state, event) to (next state,
// effects); [Controller] owns the state and applies the effects to an injected
// [Surface]. Surfaces never decide visibility on their own, so exactly one
// state's panels are shown at any time.
//
//	welcome ─┐
//	error   ─┼─ LoadingEvent ─> loading ─┬─ ErrorEvent   ─> error
//	results ─┘                           └─ ResultsEvent ─> results
//
// [NewProfile] and [NewCards] turn API payloads into panel content: empty
// optional fields are hidden rather than replaced by placeholders, and cards
// are sorted by stars regardless of the order the API used.
package render
