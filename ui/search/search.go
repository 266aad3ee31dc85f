package search

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/xhd2015/habits/models"
)

func Filter(habits models.HabitViews, fn func(habit *models.HabitView) bool) models.HabitViews {
	if fn == nil {
		return habits
	}
	var filtered models.HabitViews
	for _, habit := range habits {
		if fn(habit) {
			filtered = append(filtered, habit)
		}
	}
	return filtered
}

// FilterQuery filters habits by case-insensitive substring match on the
// name, recording the matched segment for highlighting. An empty query
// returns the input unchanged with previous highlights cleared.
func FilterQuery(habits models.HabitViews, query string) models.HabitViews {
	if query == "" {
		for _, habit := range habits {
			habit.MatchTexts = nil
		}
		return habits
	}

	queryRunes := []rune(strings.ToLower(query))

	return Filter(habits, func(habit *models.HabitView) bool {
		name := habit.Data.Name
		start, end := matchRange(name, queryRunes)
		habit.MatchTexts = SplitMatch(name, start, end-start)
		return start >= 0
	})
}

// matchRange locates the first case-insensitive occurrence of query in
// name and returns its byte range, or (-1, -1) when there is none. The
// range is computed on the original string, so runes whose lowercase
// form encodes to a different byte length slice safely.
func matchRange(name string, query []rune) (start int, end int) {
	if len(query) == 0 {
		return 0, 0
	}

	runes := []rune(name)
	offsets := make([]int, len(runes)+1)
	offset := 0
	for i, r := range runes {
		offsets[i] = offset
		offset += utf8.RuneLen(r)
	}
	offsets[len(runes)] = offset

	for i := 0; i+len(query) <= len(runes); i++ {
		matched := true
		for j, q := range query {
			if unicode.ToLower(runes[i+j]) != q {
				matched = false
				break
			}
		}
		if matched {
			return offsets[i], offsets[i+len(query)]
		}
	}
	return -1, -1
}

// SplitMatch splits text into before/match/after segments. A negative
// index yields nil.
func SplitMatch(text string, index int, length int) []models.MatchText {
	if index < 0 {
		return nil
	}
	return []models.MatchText{
		{
			Text: text[:index],
		},
		{
			Text:  text[index : index+length],
			Match: true,
		},
		{
			Text: text[index+length:],
		},
	}
}
