package app

import (
	"fmt"

	"github.com/xhd2015/habits/models"
	"github.com/xhd2015/habits/ui/search"
)

type ComputeResult struct {
	Above   int
	Below   int
	Visible models.HabitViews
	Full    models.HabitViews
}

func computeVisibleHabits(habits models.HabitViews, query string, showArchived bool, maxHabits int, sliceStart int) ComputeResult {
	filtered := applyFilter(habits, query, showArchived)
	above, below, visible := sliceHabits(filtered, maxHabits, sliceStart)
	return ComputeResult{
		Above:   above,
		Below:   below,
		Visible: visible,
		Full:    filtered,
	}
}

func applyFilter(habits models.HabitViews, query string, showArchived bool) models.HabitViews {
	filtered := habits
	if !showArchived {
		filtered = search.Filter(filtered, func(habit *models.HabitView) bool {
			return !habit.Data.Archived
		})
	}
	return search.FilterQuery(filtered, query)
}

func sliceHabits(habits models.HabitViews, maxHabits int, sliceStart int) (int, int, models.HabitViews) {
	if maxHabits <= 0 || len(habits) <= maxHabits {
		return 0, 0, habits
	}
	total := len(habits)
	if sliceStart < 0 {
		sliceStart = 0
	}
	if sliceStart >= total {
		sliceStart = total - maxHabits
		if sliceStart < 0 {
			sliceStart = 0
		}
	}

	end := sliceStart + maxHabits
	if end > total {
		end = total
	}

	return sliceStart, total - end, habits[sliceStart:end]
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
