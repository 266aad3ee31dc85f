package app

import (
	"github.com/atotto/clipboard"
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/habits/models"
	"github.com/xhd2015/habits/notify"
)

type HabitItemProps struct {
	Habit      *models.HabitView
	Index      int
	Count      int // number of visible items, for navigation clamping
	IsSelected bool
	State      *State
}

func HabitItem(props HabitItemProps) *dom.Node {
	habit := props.Habit
	i := props.Index
	isSelected := props.IsSelected
	state := props.State

	return dom.Li(dom.ListItemProps{
		Focusable: dom.Focusable(true),
		Selected:  isSelected,
		Focused:   isSelected,
		ItemPrefix: dom.String(func() string {
			if habit.Data.Archived {
				return "✗"
			}
			return "•"
		}()),
		OnFocus: func() {
			state.SelectedIndex = i
		},
		OnBlur: func() {
			state.SelectedIndex = -1
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			keyEvent := e.KeydownEvent
			if keyEvent == nil {
				return
			}
			moveDown := func() {
				state.SelectedIndex = i + 1
				if state.SelectedIndex >= props.Count {
					state.SelectedIndex = props.Count - 1
				}
			}
			moveUp := func() {
				state.SelectedIndex = i - 1
				if state.SelectedIndex < 0 {
					state.SelectedIndex = 0
					state.Focus.Focused = true
				}
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeDown:
				moveDown()
			case dom.KeyTypeUp:
				moveUp()
			case dom.KeyTypeEsc:
				state.SelectedIndex = -1
				state.Focus.Focused = true
			default:
				switch string(keyEvent.Runes) {
				case "/":
					// focus to input
					state.SelectedIndex = -1
					state.Focus.Focused = true
				case "j":
					moveDown()
				case "k":
					moveUp()
				case "c":
					err := clipboard.WriteAll(habit.Data.Name)
					if err != nil {
						state.notifier().Notify("copy failed: "+err.Error(), notify.Options{Kind: notify.KindError})
						return
					}
					state.notifier().Notify("copied "+habit.Data.Name, notify.Options{Kind: notify.KindSuccess})
				}
			}
		},
	}, habitText(habit, isSelected)...)
}

// habitText renders the habit name, splitting into highlighted match
// segments when search matched part of the name.
func habitText(habit *models.HabitView, isSelected bool) []*dom.Node {
	baseColor := ""
	if isSelected {
		baseColor = colors.GREEN_SUCCESS
	}
	if len(habit.MatchTexts) == 0 {
		return []*dom.Node{
			dom.Text(habit.Data.Name, styles.Style{
				Color: baseColor,
			}),
		}
	}
	nodes := make([]*dom.Node, 0, len(habit.MatchTexts))
	for _, seg := range habit.MatchTexts {
		if seg.Text == "" {
			continue
		}
		style := styles.Style{
			Color: baseColor,
		}
		if seg.Match {
			style.Bold = true
			style.Color = colors.PURPLE_PRIMARY
		}
		nodes = append(nodes, dom.Text(seg.Text, style))
	}
	return nodes
}
