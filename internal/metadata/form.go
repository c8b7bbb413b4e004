package metadata

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

var (
	// ErrSubmitInFlight is returned when Submit is called while a previous
	// submit has not finished. The attempt is rejected, never queued.
	ErrSubmitInFlight = errors.New("submit already in flight")

	// ErrInvalidDraft is returned when validation produced field errors and
	// the submit callback was therefore not invoked.
	ErrInvalidDraft = errors.New("draft failed validation")

	// ErrNameRequired is returned when the top-level name trims to empty.
	ErrNameRequired = errors.New("name is required")
)

// SubmitValues is the normalized outcome handed to the injected callback.
type SubmitValues struct {
	Name        string
	Notes       *string
	Metadata    map[string]any
	IsHighlight bool
}

// SubmitFunc persists a validated form. Failures surface verbatim as the
// session's top-level form error.
type SubmitFunc func(ctx context.Context, values SubmitValues) error

// FieldState is one dynamic metadata row of the renderer contract: the
// definition, the current draft value and any attached error.
type FieldState struct {
	Definition field.Definition
	Value      any
	Error      string
}

// FormSession binds the defaults builder and the validator to one editing
// session. Each item form owns exactly one session; nothing is shared across
// forms. All methods are safe for the serial access pattern of a UI event
// loop; a mutex guards the submit-in-flight flag so a second Submit during an
// outstanding one is rejected rather than interleaved.
type FormSession struct {
	mu sync.Mutex

	fields      []field.Definition
	draft       Draft
	fieldErrors map[uint]string
	formError   string

	name        string
	notes       *string
	isHighlight bool

	submitting bool
	submit     SubmitFunc
}

func NewFormSession(submit SubmitFunc) *FormSession {
	return &FormSession{
		submit:      submit,
		draft:       Draft{},
		fieldErrors: map[uint]string{},
	}
}

// Reset rebuilds the draft from the field definitions and the stored
// metadata, discarding edits and errors. Call it on mount and whenever the
// definitions or initial values change.
func (s *FormSession) Reset(defs []field.Definition, name string, notes *string, isHighlight bool, stored map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]field.Definition, len(defs))
	copy(sorted, defs)
	field.SortDefinitions(sorted)

	s.fields = sorted
	s.draft = BuildDefaults(sorted, stored)
	s.fieldErrors = map[uint]string{}
	s.formError = ""
	s.name = name
	s.notes = notes
	s.isHighlight = isHighlight
}

// SetValue updates a single field's draft entry and optimistically clears any
// error previously attached to that field. No re-validation happens until
// Submit.
func (s *FormSession) SetValue(fieldID uint, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft[DraftKey(fieldID)] = value
	delete(s.fieldErrors, fieldID)
}

func (s *FormSession) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *FormSession) SetNotes(notes *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = notes
}

func (s *FormSession) SetHighlight(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isHighlight = v
}

// Value returns the current draft entry for a field.
func (s *FormSession) Value(fieldID uint) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft[DraftKey(fieldID)]
}

// Submit validates the current draft and, when clean, invokes the injected
// callback. Field errors abort before the callback; a callback failure
// becomes the top-level form error. Success leaves the session as-is so the
// embedding page decides whether to reset or navigate.
func (s *FormSession) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	name := strings.TrimSpace(s.name)
	if name == "" {
		s.formError = "Name is required"
		s.mu.Unlock()
		return ErrNameRequired
	}

	notes := trimNotes(s.notes)
	result := Normalize(s.fields, s.draft)
	if len(result.Errors) > 0 {
		s.fieldErrors = map[uint]string{}
		for _, fe := range result.Errors {
			s.fieldErrors[fe.FieldID] = fe.Message
		}
		s.formError = ""
		s.mu.Unlock()
		return ErrInvalidDraft
	}

	values := SubmitValues{
		Name:        name,
		Notes:       notes,
		Metadata:    result.Payload,
		IsHighlight: s.isHighlight,
	}
	s.submitting = true
	s.formError = ""
	s.mu.Unlock()

	err := s.submit(ctx, values)

	s.mu.Lock()
	s.submitting = false
	if err != nil {
		s.formError = err.Error()
	}
	s.mu.Unlock()
	return err
}

// IsSubmitting reports whether a submit is outstanding; the UI disables the
// submit action while true.
func (s *FormSession) IsSubmitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// FormError is the top-level error section of the renderer contract.
func (s *FormSession) FormError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.formError
}

// BaseValues is the name/notes/highlight section of the renderer contract.
func (s *FormSession) BaseValues() (name string, notes *string, isHighlight bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.notes, s.isHighlight
}

// MetadataFields is the dynamic section of the renderer contract, in display
// order with current values and attached errors.
func (s *FormSession) MetadataFields() []FieldState {
	s.mu.Lock()
	defer s.mu.Unlock()
	states := make([]FieldState, len(s.fields))
	for i, def := range s.fields {
		states[i] = FieldState{
			Definition: def,
			Value:      s.draft[DraftKey(def.ID)],
			Error:      s.fieldErrors[def.ID],
		}
	}
	return states
}

func trimNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
