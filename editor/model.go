package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/session"
	"github.com/iw2rmb/stylerun/view"
)

// Model is a Bubble Tea component that renders and edits a run document.
type Model struct {
	cfg   Config
	keys  KeyMap
	theme view.Theme
	sess  *session.Session
	surf  *view.Surface

	focused bool

	viewport viewport.Model

	mouseAnchor   int
	mouseDragging bool

	last changeKey
}

func New(cfg Config) Model {
	keys := cfg.KeyMap
	if len(keys.Backspace.Keys()) == 0 {
		keys = DefaultKeyMap()
	}
	theme := cfg.Theme
	if theme.Fonts == nil {
		theme = view.DefaultTheme(cfg.Palette.Fonts)
	}

	m := Model{
		cfg:   cfg,
		keys:  keys,
		theme: theme,
		sess: session.New(session.Config{
			Text:    cfg.Text,
			Style:   cfg.Style,
			Palette: cfg.Palette,
			Rand:    cfg.Rand,
			Logger:  cfg.Logger,
		}),
		surf: view.NewSurface(view.RenderOptions{
			Placeholder:      cfg.Hint,
			PlaceholderStyle: cfg.Style,
		}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.render()
	m.surf.Select(0, m.sess.Len())
	m.last = m.changeKey()
	m.rebuildContent()
	return m
}

// Session exposes the underlying session. Mutating it directly bypasses
// rendering until the next Update.
func (m Model) Session() *session.Session { return m.sess }

// Runs returns a copy of the current document.
func (m Model) Runs() run.Runs { return m.sess.Runs() }

// Selection returns the ordered selection offsets. ok is false when the
// surface holds no selection.
func (m Model) Selection() (start, end int, ok bool) {
	_, ok = m.surf.Selection()
	start, end = m.surf.Offsets()
	return start, end, ok
}

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCaret()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCaret()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Load replaces the document and puts the caret at its end.
func (m Model) Load(rs run.Runs) Model {
	m.sess.Load(rs)
	m.refresh()
	return m.finish()
}

// ApplyFont sets the active font and restyles a non-collapsed selection.
func (m Model) ApplyFont(font string) Model {
	return m.restyle(RestyleFont, font).finish()
}

// ApplyColor sets the active color and restyles a non-collapsed selection.
func (m Model) ApplyColor(color string) Model {
	return m.restyle(RestyleColor, color).finish()
}

// Shuffle applies a random palette style.
func (m Model) Shuffle() Model {
	return m.restyle(RestyleShuffle, "").finish()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	default:
		return m, nil
	}
	return m.finish(), cmd
}

func (m Model) View() string { return m.viewport.View() }

// finish reports changes and repaints. The viewport only chases the caret
// when the document, selection or style changed, so wheel scrolling sticks.
func (m Model) finish() Model {
	moved := m.changeKey() != m.last
	m.emitChange()
	m.rebuildContent()
	if moved {
		m.followCaret()
	}
	return m
}

// render rebuilds the surface from the session. An empty document is drawn
// as the hint when one is configured.
func (m *Model) render() {
	rs := m.sess.Runs()
	if rs.IsEmptyDocument() && m.cfg.Hint != "" {
		rs = nil
	}
	m.surf.Render(rs, m.sess.Version())
}

// refresh re-renders and restores the session's pending caret, if any.
func (m *Model) refresh() {
	if _, _, ok := m.sess.PendingCaret(); !ok {
		return
	}
	m.render()
	if !m.sess.RestoreCaret(m.surf.Root(), m.surf, m.surf.Version()) {
		m.cfg.Logger.Warn().
			Uint64("version", m.sess.Version()).
			Msg("caret restore failed")
	}
}
