package list

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/xhd2015/habits/models"
)

// RenderItem renders a single habit line for non-interactive output.
// Match segments are highlighted only when colorize is set (i.e. the
// output is a TTY).
func RenderItem(habit *models.HabitView, showID bool, colorize bool) string {
	var highlightStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	var archivedStyle = lipgloss.NewStyle().Faint(true)

	bullet := "•"
	if habit.Data.Archived {
		bullet = "✗"
	}

	name := habit.Data.Name
	if colorize && len(habit.MatchTexts) > 0 {
		name = ""
		for _, seg := range habit.MatchTexts {
			if seg.Match {
				name += highlightStyle.Render(seg.Text)
			} else {
				name += seg.Text
			}
		}
	}
	if habit.Data.Archived && colorize {
		name = archivedStyle.Render(name)
	}

	var idIndicator string
	if showID {
		idIndicator = fmt.Sprintf(" (%d)", habit.Data.ID)
	}

	return bullet + " " + name + idIndicator
}
