package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/todo/internal/domain"
)

// listHeader is printed above filtered listings.
const listHeader = "Task   Status       Priority       Due_date               Reminder"

const ruleWidth = 90

var headerStyle = lipgloss.NewStyle().Bold(true)

// writeItems prints one Display line per item, optionally under the header.
func writeItems(w io.Writer, items []domain.Item, header bool) {
	if header {
		_, _ = fmt.Fprintln(w, headerStyle.Render(listHeader))
		_, _ = fmt.Fprintln(w, strings.Repeat("*", ruleWidth))
	}
	for _, it := range items {
		_, _ = fmt.Fprintln(w, it.Display())
	}
}
