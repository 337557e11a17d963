package editor

import (
	"github.com/iw2rmb/stylerun/run"
	"github.com/iw2rmb/stylerun/session"
)

// MutationMode controls whether input handling mutates the local session,
// emits intents to the host, or both.
type MutationMode uint8

const (
	// MutateInEditor applies every action locally without emitting intents.
	MutateInEditor MutationMode = iota
	// EmitIntentsOnly emits intents and does not apply local mutations.
	EmitIntentsOnly
	// EmitIntentsAndMutate emits intents and applies them locally when the
	// host decision allows it.
	EmitIntentsAndMutate
)

// IntentKind identifies the semantic action requested by input handling.
type IntentKind uint8

const (
	IntentEdit IntentKind = iota
	IntentRestyle
	IntentMove
	IntentSelect
)

func (k IntentKind) String() string {
	switch k {
	case IntentEdit:
		return "edit"
	case IntentRestyle:
		return "restyle"
	case IntentMove:
		return "move"
	case IntentSelect:
		return "select"
	default:
		return "unknown"
	}
}

// EditorState captures session state before an intent is executed.
type EditorState struct {
	Version    uint64
	Start, End int
	Style      run.Style
}

// Intent is a typed semantic action emitted from input processing.
type Intent struct {
	Kind    IntentKind
	Before  EditorState
	Payload any
}

// IntentBatch groups intents produced from one input event.
type IntentBatch struct {
	Intents []Intent
}

// IntentDecision controls whether the editor applies mutations locally.
// It is used in EmitIntentsAndMutate mode.
type IntentDecision struct {
	ApplyLocally bool
}

// EditIntentPayload describes one classified edit.
type EditIntentPayload struct {
	Kind session.EditKind
	Text string
}

type RestyleOp uint8

const (
	RestyleFont RestyleOp = iota
	RestyleColor
	RestyleShuffle
)

// RestyleIntentPayload describes a font, color or shuffle request. Value is
// the font or color; it is empty for shuffle.
type RestyleIntentPayload struct {
	Op    RestyleOp
	Value string
}

// MoveIntentPayload describes a caret move.
type MoveIntentPayload struct {
	Move Move
}

// SelectIntentPayload describes an explicit selection, such as select-all.
type SelectIntentPayload struct {
	Anchor, Focus int
}

func normalizeMutationMode(mode MutationMode) MutationMode {
	switch mode {
	case MutateInEditor, EmitIntentsOnly, EmitIntentsAndMutate:
		return mode
	default:
		return MutateInEditor
	}
}

func (m Model) editorState() EditorState {
	start, end := m.surf.Offsets()
	return EditorState{
		Version: m.sess.Version(),
		Start:   start,
		End:     end,
		Style:   m.sess.ActiveStyle(),
	}
}

// allow emits in according to the mutation mode and reports whether the
// editor should apply it locally.
func (m Model) allow(kind IntentKind, payload any) bool {
	mode := normalizeMutationMode(m.cfg.MutationMode)
	if mode == MutateInEditor {
		return true
	}
	in := Intent{Kind: kind, Before: m.editorState(), Payload: payload}
	batch := IntentBatch{Intents: []Intent{in}}

	switch mode {
	case EmitIntentsOnly:
		if m.cfg.OnIntent != nil {
			_ = m.cfg.OnIntent(batch)
		}
		return false
	default:
		if m.cfg.OnIntent == nil {
			return true
		}
		return m.cfg.OnIntent(batch).ApplyLocally
	}
}
