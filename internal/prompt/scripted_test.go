package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var choices = []Choice{
	{Title: "One", Value: "1"},
	{Title: "Two", Value: "2"},
}

func TestScripted_Kinds(t *testing.T) {
	s := NewScripted("hello", "2", []string{"1", "2"})
	ctx := context.Background()

	a, err := s.Ask(ctx, Question{Name: "name", Kind: KindText})
	require.NoError(t, err)
	assert.Equal(t, "hello", a.Text)

	a, err = s.Ask(ctx, Question{Name: "pick", Kind: KindSelect, Choices: choices})
	require.NoError(t, err)
	assert.Equal(t, "2", a.Value)

	a, err = s.Ask(ctx, Question{Name: "many", Kind: KindMultiSelect, Choices: choices})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, a.Values)

	assert.Len(t, s.Asked(), 3)
	assert.Equal(t, 0, s.Remaining())
}

func TestScripted_Abort(t *testing.T) {
	s := NewScripted(Abort)
	_, err := s.Ask(context.Background(), Question{Name: "name", Kind: KindText})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestScripted_ValidatorRejects(t *testing.T) {
	rejected := errors.New("rejected")
	s := NewScripted("bad")

	_, err := s.Ask(context.Background(), Question{
		Name:     "name",
		Kind:     KindText,
		Validate: func(string) error { return rejected },
	})
	assert.ErrorIs(t, err, rejected)
}

func TestScripted_Errors(t *testing.T) {
	tests := []struct {
		name  string
		reply any
		q     Question
	}{
		{"invalid select value", "3", Question{Name: "pick", Kind: KindSelect, Choices: choices}},
		{"invalid multiselect value", []string{"1", "9"}, Question{Name: "many", Kind: KindMultiSelect, Choices: choices}},
		{"wrong reply type", 42, Question{Name: "name", Kind: KindText}},
		{"unsupported kind", "x", Question{Name: "odd", Kind: "slider"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScripted(tt.reply).Ask(context.Background(), tt.q)
			assert.Error(t, err)
		})
	}
}

func TestScripted_NoReplyLeft(t *testing.T) {
	_, err := NewScripted().Ask(context.Background(), Question{Name: "name", Kind: KindText})
	assert.ErrorContains(t, err, "no scripted reply")
}

func TestScripted_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScripted("x").Ask(ctx, Question{Name: "name", Kind: KindText})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestValues(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, Values(choices))
	assert.Empty(t, Values(nil))
}
