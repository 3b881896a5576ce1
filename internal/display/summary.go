package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/core/tui/theme"

	"github.com/grovetools/codeclean/internal/lineio"
)

// RunSummary renders the outcome of a transformation run for the terminal.
func RunSummary(stats lineio.Stats, input, output string) string {
	okStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Green)
	warnStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.Yellow)
	mutedStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.MutedText)
	textStyle := lipgloss.NewStyle().Foreground(theme.DefaultColors.LightText)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s %s %s\n",
		okStyle.Render(theme.IconFilePlus),
		textStyle.Render(stats.Transform),
		mutedStyle.Render(input),
		mutedStyle.Render(theme.IconChevron),
		textStyle.Render(output)))

	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d lines read, %d written (%s) in %s",
		stats.LinesRead, stats.LinesWritten, formatBytes(stats.BytesWritten), stats.Duration.Round(time.Microsecond))))
	b.WriteString("\n")

	if stats.LinesSkipped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("  %d lines skipped (no binary digits)", stats.LinesSkipped)))
		b.WriteString("\n")
	}
	return b.String()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
