package main

import (
	"context"
	"errors"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/stylerun/editor"
	"github.com/iw2rmb/stylerun/internal/config"
	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/session"
	"github.com/iw2rmb/stylerun/story"
	"github.com/iw2rmb/stylerun/view"
)

type appState uint8

const (
	stateEditing appState = iota
	statePIN
	stateSubmitting
)

// submitter is the part of story.Client the app needs.
type submitter interface {
	Send(ctx context.Context, msg story.Message) (story.Receipt, error)
}

type submitResultMsg struct {
	receipt story.Receipt
	err     error
}

type appKeys struct {
	Quit   key.Binding
	Cancel key.Binding
	Submit key.Binding
}

var keys = appKeys{
	Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "post")),
}

var (
	statusStyle = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF3B30"))
	titleStyle  = lipgloss.NewStyle().Bold(true)
)

type app struct {
	editor editor.Model
	pin    textinput.Model
	help   help.Model

	state   appState
	pending run.Runs
	status  string
	failed  bool

	client submitter
	log    zerolog.Logger
}

func newApp(cfg config.Config, client submitter, clip editor.Clipboard, rng *rand.Rand, log zerolog.Logger) app {
	ed := editor.New(editor.Config{
		Text:      cfg.Placeholder,
		Hint:      cfg.Placeholder,
		Style:     cfg.DefaultStyle(),
		Palette:   session.Palette{Fonts: cfg.Fonts, Colors: cfg.Palette},
		WrapMode:  view.WrapWord,
		Clipboard: clip,
		Rand:      rng,
		Logger:    log.With().Str("component", "editor").Logger(),
	})

	pin := textinput.New()
	pin.Placeholder = "0000"
	pin.CharLimit = 4
	pin.Width = 4
	pin.Prompt = "PIN: "

	return app{
		editor: ed,
		pin:    pin,
		help:   help.New(),
		client: client,
		log:    log,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		a.editor = a.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return a, tea.Quit
		}
		if a.state != stateEditing {
			return a.updatePIN(msg)
		}

	case editor.DoneMsg:
		a.pending = msg.Runs
		a.state = statePIN
		a.status = "Enter the PIN shown on the installation to post."
		a.failed = false
		a.editor = a.editor.Blur()
		a.pin.Reset()
		cmd := a.pin.Focus()
		return a, cmd

	case submitResultMsg:
		return a.finishSubmit(msg), nil
	}

	var cmd tea.Cmd
	if a.state != stateEditing {
		a.pin, cmd = a.pin.Update(msg)
		return a, cmd
	}
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

func (a app) updatePIN(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == stateSubmitting {
		return a, nil
	}
	switch {
	case key.Matches(msg, keys.Cancel):
		a.state = stateEditing
		a.status = ""
		a.pin.Blur()
		a.editor = a.editor.Focus()
		return a, nil
	case key.Matches(msg, keys.Submit):
		code := a.pin.Value()
		if err := story.ValidatePIN(code); err != nil {
			a.status, a.failed = err.Error(), true
			return a, nil
		}
		a.state = stateSubmitting
		a.status, a.failed = "Posting...", false
		return a, submitCmd(a.client, story.Message{Code: code, Content: a.pending})
	}

	var cmd tea.Cmd
	a.pin, cmd = a.pin.Update(msg)
	return a, cmd
}

func submitCmd(c submitter, msg story.Message) tea.Cmd {
	return func() tea.Msg {
		rc, err := c.Send(context.Background(), msg)
		return submitResultMsg{receipt: rc, err: err}
	}
}

func (a app) finishSubmit(msg submitResultMsg) app {
	if msg.err != nil {
		a.log.Warn().Err(msg.err).Msg("story submission failed")
		a.state = statePIN
		a.failed = true
		var se *story.StatusError
		if errors.As(msg.err, &se) && se.Message != "" {
			a.status = se.Message
		} else {
			a.status = msg.err.Error()
		}
		a.pin.Reset()
		return a
	}

	a.log.Info().
		Bool("stored", msg.receipt.Stored()).
		Time("timestamp", msg.receipt.Timestamp).
		Msg("story submitted")
	a.state = stateEditing
	a.failed = !msg.receipt.Stored()
	a.status = "Success: " + msg.receipt.Message
	if a.failed {
		a.status = msg.receipt.Message
	}
	a.pin.Blur()
	a.editor = a.editor.Focus()
	return a
}

func (a app) View() string {
	out := a.editor.View() + "\n"
	switch a.state {
	case statePIN, stateSubmitting:
		out += titleStyle.Render("Post your story") + "\n" + a.pin.View() + "\n"
	default:
		out += a.help.View(a.editor.KeyMap()) + "\n"
	}
	if a.status != "" {
		st := statusStyle
		if a.failed {
			st = errorStyle
		}
		out += st.Render(a.status)
	}
	return out
}

func editorHeight(total int) int {
	h := total - 4
	if h < 0 {
		return 0
	}
	return h
}
