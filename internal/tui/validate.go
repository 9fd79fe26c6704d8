package tui

import (
	"errors"
	"strings"
)

// Validator checks a prompt answer. A non-nil error is shown to the user and
// the prompt is asked again.
type Validator func(value string) error

// NonEmpty rejects answers that are empty after trimming, with msg as the error.
func NonEmpty(msg string) Validator {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// Validate runs validators in order and returns the first failure.
func Validate(value string, validators ...Validator) error {
	for _, v := range validators {
		if v == nil {
			continue
		}
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// resolveAnswer trims raw and falls back to defaultValue when nothing was typed.
func resolveAnswer(raw, defaultValue string) string {
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return defaultValue
	}
	return answer
}
