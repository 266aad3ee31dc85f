package run

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xhd2015/habits/data"
	"github.com/xhd2015/habits/models"
	"github.com/xhd2015/habits/ui/list"
	"github.com/xhd2015/habits/ui/search"
	"github.com/xhd2015/less-gen/flags"
	"golang.org/x/term"
)

const listHelp = `
list - Print the habit list

Options:
  --data <file.json>           habit list as a response-envelope JSON document (default: built-in sample)
  --include <pattern>          only include habits containing the pattern (case-insensitive)
  --show-archived              include archived habits
  --json                       output raw JSON data instead of formatted list
  --show-id                    show habit IDs
  -h,--help                    show this help message

Examples:
  habits list                  print all habits
  habits list --include "run"  print habits containing "run"
  habits list --json           output raw JSON data
`

func handleList(args []string) error {
	var dataFile string
	var includePattern string
	var showArchived bool
	var jsonOutput bool
	var showID bool

	args, err := flags.String("--data", &dataFile).
		String("--include", &includePattern).
		Bool("--show-archived", &showArchived).
		Bool("--json", &jsonOutput).
		Bool("--show-id", &showID).
		Help("-h,--help", listHelp).
		Parse(args)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		return fmt.Errorf("unrecognized extra argument: %s", strings.Join(args, " "))
	}

	result, err := data.Load(dataFile)
	if err != nil {
		return err
	}
	habits, err := result.Get()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}

	views := models.NewHabitViews(habits)
	if !showArchived {
		views = search.Filter(views, func(habit *models.HabitView) bool {
			return !habit.Data.Archived
		})
	}
	views = search.FilterQuery(views, includePattern)

	if jsonOutput {
		return outputJSON(views)
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	renderHabits(os.Stdout, isTTY, views, showID)

	return nil
}

func renderHabits(out io.Writer, isTTY bool, habits models.HabitViews, showID bool) {
	for _, habit := range habits {
		io.WriteString(out, list.RenderItem(habit, showID, isTTY)+"\n")
	}
}

func RenderToString(habits models.HabitViews, showID bool, simulateTTY bool) string {
	var b bytes.Buffer
	renderHabits(&b, simulateTTY, habits, showID)
	return b.String()
}

func outputJSON(habits models.HabitViews) error {
	items := make([]*models.Habit, 0, len(habits))
	for _, habit := range habits {
		items = append(items, habit.Data)
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}
