package run

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrInvalidDocument reports a payload that is not a run array.
var ErrInvalidDocument = errors.New("invalid run document")

// Marshal encodes rs as a JSON array of {text, fontFamily, color} objects.
// A nil sequence encodes as an empty array.
func Marshal(rs Runs) ([]byte, error) {
	if rs == nil {
		rs = Runs{}
	}
	return json.Marshal(rs)
}

// Unmarshal decodes a JSON run array produced by Marshal. The sequence is
// returned as encoded; callers that need the run invariants apply Normalize.
func Unmarshal(data []byte) (Runs, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidDocument)
	}
	return decodeArray(gjson.ParseBytes(data))
}

// DecodeContent decodes a content field that holds either a run array or a
// JSON string containing a run array.
func DecodeContent(v gjson.Result) (Runs, error) {
	if v.Type == gjson.String {
		if !gjson.Valid(v.Str) {
			return nil, fmt.Errorf("%w: malformed embedded json", ErrInvalidDocument)
		}
		return decodeArray(gjson.Parse(v.Str))
	}
	return decodeArray(v)
}

func decodeArray(v gjson.Result) (Runs, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("%w: want array, got %s", ErrInvalidDocument, v.Type)
	}

	out := Runs{}
	var err error
	v.ForEach(func(key, item gjson.Result) bool {
		var r Run
		r, err = decodeRun(item)
		if err != nil {
			err = fmt.Errorf("run %d: %w", key.Int(), err)
			return false
		}
		out = append(out, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func decodeRun(item gjson.Result) (Run, error) {
	if !item.IsObject() {
		return Run{}, fmt.Errorf("%w: want object, got %s", ErrInvalidDocument, item.Type)
	}
	fields := [...]string{"text", "fontFamily", "color"}
	var vals [len(fields)]string
	for i, name := range fields {
		f := item.Get(name)
		if !f.Exists() {
			return Run{}, fmt.Errorf("%w: missing %q", ErrInvalidDocument, name)
		}
		if f.Type != gjson.String {
			return Run{}, fmt.Errorf("%w: %q is not a string", ErrInvalidDocument, name)
		}
		vals[i] = f.Str
	}
	return Run{Text: vals[0], Style: Style{FontFamily: vals[1], Color: vals[2]}}, nil
}
