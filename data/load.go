package data

import (
	"fmt"
	"os"

	"github.com/xhd2015/habits/api"
	"github.com/xhd2015/habits/models"
)

// Load reads a habit list from a JSON document shaped as an
// api.Response envelope. An empty path yields the built-in sample.
// The envelope itself decoding cleanly but carrying a failure is
// returned as an Err result, not a Go error: the caller decides how
// to surface it.
func Load(path string) (api.Result[[]models.Habit], error) {
	if path == "" {
		return Sample(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return api.Result[[]models.Habit]{}, fmt.Errorf("failed to open data file: %w", err)
	}
	defer file.Close()

	result, err := api.Decode[[]models.Habit](file)
	if err != nil {
		return api.Result[[]models.Habit]{}, fmt.Errorf("%s: %w", path, err)
	}
	return result, nil
}
