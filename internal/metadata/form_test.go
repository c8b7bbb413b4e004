package metadata

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Endogen/antique-catalogue-sub001/internal/domain/field"
)

func sessionFields() []field.Definition {
	return []field.Definition{
		{ID: 2, Name: "Year", FieldType: field.TypeNumber, Position: 2},
		{ID: 1, Name: "Maker", FieldType: field.TypeText, Position: 1, IsRequired: true},
	}
}

func TestFormSession_ResetSortsAndBuildsDefaults(t *testing.T) {
	s := NewFormSession(nil)
	s.Reset(sessionFields(), "Mantel clock", nil, false, map[string]any{"Maker": "Junghans"})

	states := s.MetadataFields()
	require.Len(t, states, 2)
	assert.Equal(t, "Maker", states[0].Definition.Name)
	assert.Equal(t, "Junghans", states[0].Value)
	assert.Equal(t, "Year", states[1].Definition.Name)
	assert.Equal(t, "", states[1].Value)
}

func TestFormSession_SubmitSuccess(t *testing.T) {
	var got SubmitValues
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		got = values
		return nil
	})
	notes := "  bought at auction  "
	s.Reset(sessionFields(), "  Mantel clock ", &notes, true, nil)
	s.SetValue(1, "Junghans")
	s.SetValue(2, "1912")

	err := s.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Mantel clock", got.Name)
	require.NotNil(t, got.Notes)
	assert.Equal(t, "bought at auction", *got.Notes)
	assert.True(t, got.IsHighlight)
	assert.Equal(t, map[string]any{"Maker": "Junghans", "Year": 1912.0}, got.Metadata)
	assert.Empty(t, s.FormError())
	assert.False(t, s.IsSubmitting())
}

func TestFormSession_ValidationAbortsBeforeCallback(t *testing.T) {
	called := false
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		called = true
		return nil
	})
	s.Reset(sessionFields(), "Mantel clock", nil, false, nil)
	s.SetValue(2, "not a year")

	err := s.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.False(t, called)

	states := s.MetadataFields()
	assert.Equal(t, "Field is required", states[0].Error)
	assert.Equal(t, "Value must be a number", states[1].Error)
}

func TestFormSession_SetValueClearsFieldError(t *testing.T) {
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error { return nil })
	s.Reset(sessionFields(), "Mantel clock", nil, false, nil)
	s.SetValue(2, "not a year")
	_ = s.Submit(context.Background())

	s.SetValue(2, "1912")

	states := s.MetadataFields()
	assert.Empty(t, states[1].Error)
	// the untouched field keeps its error until the next submit
	assert.Equal(t, "Field is required", states[0].Error)
}

func TestFormSession_CallbackFailureSurfacesAsFormError(t *testing.T) {
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		return errors.New("collection was deleted")
	})
	s.Reset(sessionFields(), "Mantel clock", nil, false, nil)
	s.SetValue(1, "Junghans")

	err := s.Submit(context.Background())

	require.Error(t, err)
	assert.Equal(t, "collection was deleted", s.FormError())
	assert.False(t, s.IsSubmitting())
}

func TestFormSession_ValidationErrorClearsStaleFormError(t *testing.T) {
	fail := true
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		if fail {
			return errors.New("collection was deleted")
		}
		return nil
	})
	s.Reset(sessionFields(), "Mantel clock", nil, false, nil)
	s.SetValue(1, "Junghans")

	require.Error(t, s.Submit(context.Background()))
	require.Equal(t, "collection was deleted", s.FormError())

	fail = false
	s.SetValue(2, "not a number")

	err := s.Submit(context.Background())

	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.Empty(t, s.FormError())
	assert.Equal(t, "Value must be a number", s.MetadataFields()[1].Error)
}

func TestFormSession_EmptyNameRejected(t *testing.T) {
	called := false
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		called = true
		return nil
	})
	s.Reset(sessionFields(), "   ", nil, false, nil)

	err := s.Submit(context.Background())

	assert.ErrorIs(t, err, ErrNameRequired)
	assert.False(t, called)
	assert.Equal(t, "Name is required", s.FormError())
}

func TestFormSession_SecondSubmitRejectedWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	s := NewFormSession(func(ctx context.Context, values SubmitValues) error {
		<-release
		return nil
	})
	s.Reset(sessionFields(), "Mantel clock", nil, false, nil)
	s.SetValue(1, "Junghans")

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Submit(context.Background())
	}()

	// wait for the first submit to be in flight
	deadline := time.After(time.Second)
	for !s.IsSubmitting() {
		select {
		case <-deadline:
			t.Fatal("first submit never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	err := s.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(release)
	wg.Wait()
	assert.False(t, s.IsSubmitting())
}
