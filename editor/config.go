package editor

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/session"
	"github.com/iw2rmb/stylerun/view"
)

// Config configures the editor Model.
type Config struct {
	// Text is the initial document. It starts fully selected so the first
	// keystroke replaces it.
	Text string
	// Hint is drawn faintly while the document is empty.
	Hint string

	// Style is the initial active style.
	Style   run.Style
	Palette session.Palette

	// Theme defaults to view.DefaultTheme(Palette.Fonts).
	Theme view.Theme
	// KeyMap defaults to DefaultKeyMap().
	KeyMap KeyMap

	WrapMode     view.WrapMode
	ScrollPolicy ScrollPolicy
	Clipboard    Clipboard

	MutationMode MutationMode
	// OnIntent receives intents in EmitIntentsOnly and EmitIntentsAndMutate
	// modes. In EmitIntentsAndMutate mode its decision gates local mutation;
	// a nil OnIntent applies everything.
	OnIntent func(IntentBatch) IntentDecision
	// OnChange is called after an update that changed the runs, the
	// selection or the active style.
	OnChange func(ChangeEvent)

	// Rand drives shuffle. Nil seeds one randomly.
	Rand   *rand.Rand
	Logger zerolog.Logger
}
