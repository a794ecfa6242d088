package prompt

import (
	"context"
	"fmt"
	"slices"
)

// Scripted answers questions from a fixed list of canned replies, in order.
// It never re-prompts: a reply rejected by a question's validator is returned
// as an error.
//
// Each reply is interpreted according to the question kind:
//   - text: the reply string is the answer text
//   - select: the reply string must equal one of the choice values
//   - multiselect: the reply is a []string of choice values
//
// A reply equal to Abort cancels the question with ErrAborted.
type Scripted struct {
	replies []any
	asked   []Question
}

type abortReply struct{}

// Abort is a reply that makes Scripted return ErrAborted.
var Abort any = abortReply{}

// NewScripted creates a scripted prompter with the given replies.
func NewScripted(replies ...any) *Scripted {
	return &Scripted{replies: replies}
}

// Asked returns the questions asked so far.
func (s *Scripted) Asked() []Question {
	return s.asked
}

// Remaining returns the number of unused replies.
func (s *Scripted) Remaining() int {
	return len(s.replies)
}

// Ask implements Prompter.
func (s *Scripted) Ask(ctx context.Context, q Question) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}
	s.asked = append(s.asked, q)

	if len(s.replies) == 0 {
		return Answer{}, fmt.Errorf("no scripted reply for question %q", q.Name)
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]

	if reply == Abort {
		return Answer{}, ErrAborted
	}

	switch q.Kind {
	case KindText:
		text, ok := reply.(string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q: expected string reply, got %T", q.Name, reply)
		}
		if q.Validate != nil {
			if err := q.Validate(text); err != nil {
				return Answer{}, err
			}
		}
		return Answer{Text: text}, nil

	case KindSelect:
		value, ok := reply.(string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q: expected string reply, got %T", q.Name, reply)
		}
		if !slices.Contains(Values(q.Choices), value) {
			return Answer{}, fmt.Errorf("question %q: %q is not a valid choice", q.Name, value)
		}
		return Answer{Value: value}, nil

	case KindMultiSelect:
		values, ok := reply.([]string)
		if !ok {
			return Answer{}, fmt.Errorf("question %q: expected []string reply, got %T", q.Name, reply)
		}
		valid := Values(q.Choices)
		for _, v := range values {
			if !slices.Contains(valid, v) {
				return Answer{}, fmt.Errorf("question %q: %q is not a valid choice", q.Name, v)
			}
		}
		return Answer{Values: values}, nil

	default:
		return Answer{}, fmt.Errorf("question %q: unsupported kind %q", q.Name, q.Kind)
	}
}
