package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A78BFA")). // Purple
			MarginTop(1)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

// banner prints a section heading followed by a horizontal rule. The rule
// shrinks to the terminal width when stdout is a terminal; lipgloss drops
// the coloring on its own when it is not.
func banner(title string) {
	width := 60
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 && w < width {
			width = w
		}
	}

	fmt.Println(bannerStyle.Render("== " + title + " =="))
	fmt.Println(ruleStyle.Render(strings.Repeat("─", width)))
}
