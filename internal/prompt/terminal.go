package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manifoldco/promptui"
)

// Terminal asks questions on an interactive terminal. Text and select
// questions use promptui; multiselect questions run a bubbletea list.
// Invalid text input is re-prompted until it passes the validator.
type Terminal struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

// NewTerminal creates a prompter bound to stdin and stdout.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stdout}
}

// Ask implements Prompter.
func (t *Terminal) Ask(ctx context.Context, q Question) (Answer, error) {
	if err := ctx.Err(); err != nil {
		return Answer{}, err
	}

	switch q.Kind {
	case KindText:
		return t.askText(q)
	case KindSelect:
		return t.askSelect(q)
	case KindMultiSelect:
		return t.askMultiSelect(ctx, q)
	default:
		return Answer{}, fmt.Errorf("question %q: unsupported kind %q", q.Name, q.Kind)
	}
}

func (t *Terminal) askText(q Question) (Answer, error) {
	p := promptui.Prompt{
		Label:  q.Message,
		Stdin:  t.In,
		Stdout: t.Out,
	}
	if q.Validate != nil {
		p.Validate = promptui.ValidateFunc(q.Validate)
	}

	result, err := p.Run()
	if err != nil {
		return Answer{}, mapPromptErr(err)
	}
	return Answer{Text: result}, nil
}

func (t *Terminal) askSelect(q Question) (Answer, error) {
	titles := make([]string, len(q.Choices))
	for i, c := range q.Choices {
		titles[i] = c.Title
	}

	s := promptui.Select{
		Label:     q.Message,
		Items:     titles,
		CursorPos: q.Initial,
		HideHelp:  true,
		Stdin:     t.In,
		Stdout:    t.Out,
	}

	idx, _, err := s.Run()
	if err != nil {
		return Answer{}, mapPromptErr(err)
	}
	return Answer{Value: q.Choices[idx].Value}, nil
}

func (t *Terminal) askMultiSelect(ctx context.Context, q Question) (Answer, error) {
	p := tea.NewProgram(
		newMultiSelectModel(q.Message, q.Choices),
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return Answer{}, ErrAborted
		}
		return Answer{}, fmt.Errorf("running multiselect: %w", err)
	}

	m := final.(multiSelectModel)
	if m.state == multiSelectAborted {
		return Answer{}, ErrAborted
	}
	return Answer{Values: m.Values()}, nil
}

// mapPromptErr converts promptui cancellation errors to ErrAborted.
func mapPromptErr(err error) error {
	switch {
	case errors.Is(err, promptui.ErrInterrupt),
		errors.Is(err, promptui.ErrEOF),
		errors.Is(err, promptui.ErrAbort):
		return ErrAborted
	default:
		return err
	}
}
