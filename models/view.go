package models

// FocusState holds the DOM-transient parts of an input widget: focus
// and cursor placement. The displayed value is NOT here, it is passed
// down by the owner on every render.
type FocusState struct {
	Focused        bool
	CursorPosition int

	// ClearFocused tracks focus on the inline clear control
	ClearFocused bool
}

func (s *FocusState) Reset() {
	s.CursorPosition = 0
	s.ClearFocused = false
}

type MatchText struct {
	Text  string
	Match bool
}

type HabitView struct {
	Data *Habit

	// MatchTexts splits Data.Name into plain and matched segments,
	// populated by search filtering
	MatchTexts []MatchText
}

type HabitViews []*HabitView

func NewHabitViews(habits []Habit) HabitViews {
	views := make(HabitViews, 0, len(habits))
	for i := range habits {
		views = append(views, &HabitView{Data: &habits[i]})
	}
	return views
}
