package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/habits/component"
)

func MainPage(state *State, window *dom.Window) *dom.Node {
	result := computeVisibleHabits(state.Habits, state.Query, state.ShowArchived, MaxVisibleHabits, state.SliceStart)

	var children []*dom.Node
	if result.Above > 0 {
		children = append(children, dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↑ (%d more above)", result.Above), styles.Style{
				Color: "8",
			}),
		))
	}
	for i, habit := range result.Visible {
		children = append(children, HabitItem(HabitItemProps{
			Habit:      habit,
			Index:      i,
			Count:      len(result.Visible),
			IsSelected: i == state.SelectedIndex,
			State:      state,
		}))
	}
	if result.Below > 0 {
		children = append(children, dom.Div(dom.DivProps{},
			dom.Text(fmt.Sprintf("↓ (%d more below)", result.Below), styles.Style{
				Color: "8",
			}),
		))
	}
	if len(result.Visible) == 0 {
		message := "no habits yet"
		if state.Query != "" {
			message = fmt.Sprintf("no habits match %q", state.Query)
		}
		children = append(children, dom.Text(message, styles.Style{
			Color: "8",
		}))
	}

	height := window.Height
	availableHeight := height - 6 - len(children)
	if availableHeight < 3 {
		availableHeight = 3
	}
	var brs []*dom.Node
	if availableHeight > 3 {
		brs = make([]*dom.Node, availableHeight-3)
		for i := range brs {
			brs[i] = dom.Br()
		}
	}

	return dom.Fragment(
		dom.Ul(dom.DivProps{}, children...),
		dom.Fragment(brs...),
		component.SearchInput(component.SearchInputProps{
			Value: state.Query,
			OnChange: func(next string) {
				state.SetQuery(next)
			},
			Focus: &state.Focus,
			OnKeyDown: func(event *dom.DOMEvent) bool {
				keyEvent := event.KeydownEvent
				if keyEvent == nil {
					return false
				}
				switch keyEvent.KeyType {
				case dom.KeyTypeUp:
					if len(result.Visible) > 0 {
						state.SelectedIndex = len(result.Visible) - 1
						state.Focus.Focused = false
						event.PreventDefault()
						return true
					}
				case dom.KeyTypeEsc:
					if state.Query != "" {
						state.ClearSearch()
						return true
					}
				case dom.KeyTypeEnter:
					if state.Query == "q" || state.Query == "quit" || state.Query == "exit" {
						state.Quit()
						return true
					}
				}
				return false
			},
		}),
	)
}
