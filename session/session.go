package session

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/selection"
)

// Config configures a Session.
type Config struct {
	// Text is the initial document text, typically a placeholder prompt.
	Text string
	// Style is the initial active style.
	Style   run.Style
	Palette Palette

	// Rand drives Shuffle. Nil uses a randomly seeded source.
	Rand *rand.Rand
	// Logger receives debug events. The zero value discards them.
	Logger zerolog.Logger
}

// Session is one editor's run store plus its editing context.
//
// A Session has a single writer: every method runs to completion before the
// next one starts, and none of them is safe for concurrent use.
type Session struct {
	runs    run.Runs
	active  run.Style
	version uint64

	palette Palette
	pending pendingCaret

	rng *rand.Rand
	log zerolog.Logger
}

func New(cfg Config) *Session {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Session{
		runs:    run.Runs{{Text: cfg.Text, Style: cfg.Style}},
		active:  cfg.Style,
		palette: cfg.Palette,
		rng:     rng,
		log:     cfg.Logger,
	}
}

// Runs returns a copy of the current run sequence.
func (s *Session) Runs() run.Runs { return s.runs.Clone() }

// Text returns the flattened document text.
func (s *Session) Text() string { return s.runs.Text() }

// Len returns the document length in runes.
func (s *Session) Len() int { return s.runs.Len() }

// Version increments on every committed run change.
func (s *Session) Version() uint64 { return s.version }

// ActiveStyle is the style applied to newly inserted text.
func (s *Session) ActiveStyle() run.Style { return s.active }

func (s *Session) Palette() Palette { return s.palette }

// SetActiveStyle changes the style for future insertions only.
func (s *Session) SetActiveStyle(st run.Style) { s.active = st }

// Load replaces the document, normalizing it. The caret is scheduled at the
// end of the loaded text.
func (s *Session) Load(rs run.Runs) {
	s.commit(run.Normalize(rs, s.active))
	s.pending.setCaret(s.runs.Len(), s.version)
}

// Edit applies kind at the host's current selection and commits the result.
// The caret is left pending until RestoreCaret runs against a re-rendered
// root.
func (s *Session) Edit(kind EditKind, payload string, root selection.Root, host selection.Host) Result {
	start, end := selection.Offsets(root, host)
	return s.EditRange(kind, payload, start, end)
}

// EditRange is Edit with explicit selection offsets.
func (s *Session) EditRange(kind EditKind, payload string, start, end int) Result {
	res := Apply(EditInput{
		Kind:    kind,
		Payload: payload,
		Runs:    s.runs,
		Start:   start,
		End:     end,
		Style:   s.active,
	})
	s.commit(res.Runs)
	s.pending.setCaret(res.Caret, s.version)

	s.log.Debug().
		Stringer("kind", kind).
		Int("start", start).
		Int("end", end).
		Int("caret", res.Caret).
		Int("runs", len(res.Runs)).
		Uint64("version", s.version).
		Msg("edit applied")
	return res
}

// ApplyFont makes font part of the active style and restyles a non-collapsed
// selection with it.
func (s *Session) ApplyFont(font string, root selection.Root, host selection.Host) {
	start, end := selection.Offsets(root, host)
	s.ApplyFontRange(font, start, end)
}

func (s *Session) ApplyFontRange(font string, start, end int) {
	s.active.FontFamily = font
	s.restyleRange(start, end, s.active)
}

// ApplyColor makes color part of the active style and restyles a
// non-collapsed selection with it.
func (s *Session) ApplyColor(color string, root selection.Root, host selection.Host) {
	start, end := selection.Offsets(root, host)
	s.ApplyColorRange(color, start, end)
}

func (s *Session) ApplyColorRange(color string, start, end int) {
	s.active.Color = color
	s.restyleRange(start, end, s.active)
}

// Shuffle picks a random palette style. A collapsed selection only changes
// the active style; otherwise the selection is restyled and the active style
// is kept.
func (s *Session) Shuffle(root selection.Root, host selection.Host) run.Style {
	start, end := selection.Offsets(root, host)
	return s.ShuffleRange(start, end)
}

func (s *Session) ShuffleRange(start, end int) run.Style {
	st := s.palette.Random(s.rng, s.active)
	start, end = run.OrderedRange(start, end, s.runs.Len())
	if start == end {
		s.active = st
		return st
	}
	s.restyleRange(start, end, st)
	return st
}

func (s *Session) restyleRange(start, end int, st run.Style) {
	start, end = run.OrderedRange(start, end, s.runs.Len())
	if start == end {
		return
	}
	s.commit(Restyle(s.runs, start, end, st))
	s.pending.setRange(start, end, s.version)

	s.log.Debug().
		Str("font", st.FontFamily).
		Str("color", st.Color).
		Int("start", start).
		Int("end", end).
		Uint64("version", s.version).
		Msg("selection restyled")
}

func (s *Session) commit(next run.Runs) {
	if len(next) == 0 {
		next = run.Empty(s.active)
	}
	if next.Equal(s.runs) {
		return
	}
	s.runs = next
	s.version++
}
