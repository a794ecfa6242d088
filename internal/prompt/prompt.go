// Package prompt defines the interactive question/answer boundary used to collect generation options.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned by a Prompter when the user cancels a question.
var ErrAborted = errors.New("prompt aborted")

// Kind is the type of a question.
type Kind string

const (
	// KindText asks for free text.
	KindText Kind = "text"

	// KindSelect asks for exactly one of Choices.
	KindSelect Kind = "select"

	// KindMultiSelect asks for any subset of Choices.
	KindMultiSelect Kind = "multiselect"
)

// Choice is one option of a select or multiselect question.
type Choice struct {
	// Title is the label shown to the user.
	Title string

	// Value is returned in the answer when the choice is picked.
	Value string

	// Selected marks the choice as initially toggled on (multiselect only).
	Selected bool
}

// Question describes a single prompt step.
type Question struct {
	// Name identifies the answer, e.g. "language".
	Name string

	Kind    Kind
	Message string
	Choices []Choice

	// Initial is the index of the preselected choice (select only).
	Initial int

	// Validate gates text answers. A non-nil error rejects the input.
	Validate func(string) error
}

// Answer is the typed response to a Question. Only the field matching the
// question's Kind is populated.
type Answer struct {
	Text   string
	Value  string
	Values []string
}

// Prompter asks questions. Implementations return ErrAborted when the user cancels.
type Prompter interface {
	Ask(ctx context.Context, q Question) (Answer, error)
}

// Values returns the values of all choices in order.
func Values(choices []Choice) []string {
	values := make([]string, len(choices))
	for i, c := range choices {
		values[i] = c.Value
	}
	return values
}
