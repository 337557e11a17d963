package story

import (
	"errors"

	"github.com/iw2rmb/stylerun/run"
)

// ErrInvalidPIN is returned for codes that are not exactly four ASCII digits.
var ErrInvalidPIN = errors.New("wrong PIN, try again")

// Message is one story submission.
type Message struct {
	Code    string
	Content run.Runs
}

// ValidatePIN reports ErrInvalidPIN unless pin is exactly four ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) != 4 {
		return ErrInvalidPIN
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}
