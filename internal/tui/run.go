package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/todo/internal/domain"
)

// Browse shows items in an interactive table until the user quits.
func Browse(title string, items []domain.Item, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(title, items), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse items: %w", err)
	}
	return nil
}
