package data

import (
	"time"

	"github.com/xhd2015/habits/api"
	"github.com/xhd2015/habits/models"
)

// Sample returns a built-in habit list wrapped the same way a server
// response would be, so the rest of the program has a single input
// shape.
func Sample() api.Result[[]models.Habit] {
	created := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	habits := []models.Habit{
		{ID: 1, Name: "Morning run", Description: "5km before work", CreateTime: created, UpdateTime: created},
		{ID: 2, Name: "Read 20 pages", CreateTime: created, UpdateTime: created},
		{ID: 3, Name: "Drink water", Description: "8 glasses", CreateTime: created, UpdateTime: created},
		{ID: 4, Name: "Meditate", CreateTime: created, UpdateTime: created},
		{ID: 5, Name: "Journal", CreateTime: created, UpdateTime: created},
		{ID: 6, Name: "Stretch", Archived: true, CreateTime: created, UpdateTime: created},
	}
	meta := api.NewMeta("").WithPagination(api.NewPaginationMeta(1, api.DefaultLimit, len(habits)))
	return api.Ok(habits, meta)
}
