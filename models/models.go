package models

import (
	"time"
)

// Habit is the list payload carried inside an api.Response envelope.
// Only identity and display fields live here: tracking rules are a
// server concern and never reach this client.
type Habit struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Archived    bool      `json:"archived,omitempty"`
	CreateTime  time.Time `json:"createdAt"`
	UpdateTime  time.Time `json:"updatedAt"`
}

type Config struct {
	LastQuery  string `json:"last_query"`
	RunningPID int    `json:"running_pid"`
}
