// Package cli provides the terminal user interface of ghexplorer.
//
// The package uses [Bubbletea] for the interactive explorer and [Lipgloss]
// for styling. The explorer follows the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - ExplorerModel: username input, search button and theme toggle above
//     the result panels
//   - Screen: the render surface behind the panels, also used by the
//     one-shot user command
//   - Styles: light and dark lipgloss palettes
//
// # Rendering
//
// Searches run off the update loop. Their view transitions are posted on a
// channel and applied to the Screen from Update, so the screen is only ever
// touched by the Bubbletea goroutine.
//
// Text that comes from the GitHub API is stripped of escape sequences and
// control characters before it reaches the terminal.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
