// Package prompt implements domain.Prompter with huh forms.
package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Prompter implements domain.Prompter.
var _ domain.Prompter = (*Prompter)(nil)

// Prompter renders each question as a single-field huh form.
type Prompter struct {
	in         io.Reader
	out        io.Writer
	theme      *huh.Theme
	accessible bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithIO sets the reader and writer the forms use instead of the process
// stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(p *Prompter) {
		p.in = in
		p.out = out
	}
}

// WithAccessible switches to line-based prompts, for input that is not a
// terminal (pipes, screen readers).
func WithAccessible(accessible bool) Option {
	return func(p *Prompter) {
		p.accessible = accessible
	}
}

// New creates a Prompter.
func New(opts ...Option) *Prompter {
	p := &Prompter{theme: huh.ThemeCharm()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Select returns the Value of the chosen option.
func (p *Prompter) Select(ctx context.Context, title string, choices []domain.Choice) (string, error) {
	var value string
	field := huh.NewSelect[string]().
		Title(title).
		Options(Options(choices)...).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Input reads one line of text.
func (p *Prompter) Input(ctx context.Context, title string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Password reads one line of text with masked echo.
func (p *Prompter) Password(ctx context.Context, title string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(ctx context.Context, title string) (bool, error) {
	var value bool
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)
	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return value, nil
}

func (p *Prompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithShowHelp(false).
		WithAccessible(p.accessible)
	if p.in != nil {
		form = form.WithInput(p.in)
	}
	if p.out != nil {
		form = form.WithOutput(p.out)
	}
	return translate(form.RunWithContext(ctx))
}

// Options converts choices into huh select options, keeping their order.
func Options(choices []domain.Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.Value))
	}
	return opts
}

// translate maps huh's cancellation errors onto domain.ErrAborted.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, huh.ErrTimeout):
		return domain.ErrAborted
	default:
		return err
	}
}
