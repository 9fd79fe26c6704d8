package tui

import (
	"fmt"
	"sync"
)

// ScriptedPrompter answers prompts from queues, for tests and demos.
// Text answers go through the same default and validation rules as the
// terminal prompt: an answer that fails validation is discarded and the next
// one is used. Running out of answers returns ErrInteractiveDisabled.
type ScriptedPrompter struct {
	mu       sync.Mutex
	texts    []string
	confirms []bool
	selects  []int
	asked    []string
	invalid  []string
}

// NewScriptedPrompter returns a ScriptedPrompter with no answers queued.
func NewScriptedPrompter() *ScriptedPrompter {
	return &ScriptedPrompter{}
}

// WithText queues answers for Text prompts.
func (s *ScriptedPrompter) WithText(answers ...string) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, answers...)
	return s
}

// WithConfirm queues answers for Confirm prompts.
func (s *ScriptedPrompter) WithConfirm(answers ...bool) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirms = append(s.confirms, answers...)
	return s
}

// WithSelect queues option indexes for Select prompts.
func (s *ScriptedPrompter) WithSelect(answers ...int) *ScriptedPrompter {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selects = append(s.selects, answers...)
	return s
}

// Asked returns every prompt shown, in order.
func (s *ScriptedPrompter) Asked() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.asked...)
}

// ValidationErrors returns the messages of rejected text answers.
func (s *ScriptedPrompter) ValidationErrors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.invalid...)
}

// Text implements Prompter.
func (s *ScriptedPrompter) Text(prompt, defaultValue string, validators ...Validator) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, prompt)

	for len(s.texts) > 0 {
		raw := s.texts[0]
		s.texts = s.texts[1:]

		answer := resolveAnswer(raw, defaultValue)
		if err := Validate(answer, validators...); err != nil {
			s.invalid = append(s.invalid, err.Error())
			continue
		}
		return answer, nil
	}
	return "", fmt.Errorf("%w: no scripted answer for %q", ErrInteractiveDisabled, prompt)
}

// Confirm implements Prompter.
func (s *ScriptedPrompter) Confirm(prompt string, _ bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, prompt)

	if len(s.confirms) == 0 {
		return false, fmt.Errorf("%w: no scripted answer for %q", ErrInteractiveDisabled, prompt)
	}
	answer := s.confirms[0]
	s.confirms = s.confirms[1:]
	return answer, nil
}

// Select implements Prompter.
func (s *ScriptedPrompter) Select(prompt string, options []string, _ int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, prompt)

	if len(s.selects) == 0 {
		return 0, fmt.Errorf("%w: no scripted answer for %q", ErrInteractiveDisabled, prompt)
	}
	answer := s.selects[0]
	s.selects = s.selects[1:]
	if answer < 0 || answer >= len(options) {
		return 0, fmt.Errorf("scripted answer %d out of range for %q", answer, prompt)
	}
	return answer, nil
}

var _ Prompter = (*ScriptedPrompter)(nil)
