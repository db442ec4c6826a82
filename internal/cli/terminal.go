package cli

import (
	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/prompt"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// fdHolder is implemented by *os.File.
type fdHolder interface {
	Fd() uintptr
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(fdHolder)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// resolvePrompter returns the container's prompter, or a huh prompter bound
// to the command's streams. Line-based prompts are used when stdin is not a
// terminal.
func resolvePrompter(c *app.Container, cmd *cobra.Command) domain.Prompter {
	if c.Prompter != nil {
		return c.Prompter
	}
	in := cmd.InOrStdin()
	return prompt.New(
		prompt.WithIO(in, cmd.OutOrStdout()),
		prompt.WithAccessible(!isTerminal(in)),
	)
}
