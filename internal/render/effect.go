package render

// Surface is the set of view handles the pipeline paints on. Implementations
// do not need to be safe for concurrent use; the Controller calls them from
// one goroutine at a time.
type Surface interface {
	Show(p Panel)
	Hide(p Panel)
	SetErrorText(text string)
	PaintProfile(p Profile)
	PaintRepositories(cards []Card)
	PaintEmptyRepositories()
}

// Effect is one surface update produced by Reduce.
type Effect interface {
	Apply(s Surface)
}

type Show struct{ Panel Panel }

type Hide struct{ Panel Panel }

// SetErrorText replaces the error panel text; empty clears it.
type SetErrorText struct{ Text string }

type PaintProfile struct{ Profile Profile }

// PaintRepositories replaces the repository grid with Cards, already sorted.
type PaintRepositories struct{ Cards []Card }

// PaintEmptyRepositories replaces the grid with the empty placeholder.
type PaintEmptyRepositories struct{}

func (e Show) Apply(s Surface)                 { s.Show(e.Panel) }
func (e Hide) Apply(s Surface)                 { s.Hide(e.Panel) }
func (e SetErrorText) Apply(s Surface)         { s.SetErrorText(e.Text) }
func (e PaintProfile) Apply(s Surface)         { s.PaintProfile(e.Profile) }
func (e PaintRepositories) Apply(s Surface)    { s.PaintRepositories(e.Cards) }
func (PaintEmptyRepositories) Apply(s Surface) { s.PaintEmptyRepositories() }
