package app

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/habits/api"
	"github.com/xhd2015/habits/models"
	"github.com/xhd2015/habits/notify"
)

const (
	CtrlCExitDelayMs = 1000

	UIWidth = 80

	// MaxVisibleHabits caps the list window; the rest shows as
	// above/below indicators
	MaxVisibleHabits = 30
)

// State is the host page. It owns the search string and every other
// piece of page state; the widgets below it are pure functions of this
// struct.
type State struct {
	Habits models.HabitViews

	// Query is the controlled search value passed down to the
	// SearchInput on every render
	Query string
	Focus models.FocusState

	SelectedIndex int // index into the visible window, -1 when none
	SliceStart    int

	ShowArchived bool

	// Pagination carries the server-reported paging facts from the
	// loaded envelope, shown in the status bar
	Pagination *api.PaginationMeta

	StatusBar StatusBar

	Notifier notify.Service

	Quit    func()
	Refresh func()

	// Dispatch hands a mutation to the UI event loop so background
	// goroutines never touch State concurrently with a render
	Dispatch func(fn func())

	LastCtrlC time.Time
}

type StatusBar struct {
	Source string
	Error  string

	Notice     string
	NoticeKind notify.Kind
}

func (state *State) SetQuery(next string) {
	state.Query = next
	state.SelectedIndex = -1
	state.SliceStart = -1
}

func (state *State) ClearSearch() {
	state.SetQuery("")
	state.Focus.Reset()
}

// RunOnLoop runs fn on the UI event loop when a dispatcher is wired,
// falling back to a direct call otherwise.
func (state *State) RunOnLoop(fn func()) {
	if state.Dispatch != nil {
		state.Dispatch(fn)
		return
	}
	fn()
}

func (state *State) notifier() notify.Service {
	if state.Notifier == nil {
		return notify.Nop{}
	}
	return state.Notifier
}

func App(state *State, window *dom.Window) *dom.Node {
	return dom.Div(dom.DivProps{
		OnKeyDown: func(event *dom.DOMEvent) {
			keyEvent := event.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeCtrlC:
				if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
					state.Quit()
					return
				}
				state.LastCtrlC = time.Now()

				go func() {
					time.Sleep(time.Millisecond * CtrlCExitDelayMs)
					state.Refresh()
				}()
			}
			switch keyEvent.KeyType {
			case dom.KeyType("ctrl+y"):
				copyVisible(state)
			}
		},
	},
		dom.H1(dom.DivProps{}, dom.Text("Habits", styles.Style{
			Bold:        true,
			BorderColor: "orange",
		})),
		MainPage(state, window),
		AppStatusBar(state),
		func() *dom.Node {
			if time.Since(state.LastCtrlC) < time.Millisecond*CtrlCExitDelayMs {
				return dom.Text("press Ctrl-C again to exit", styles.Style{
					Bold:  true,
					Color: "1",
				})
			}
			return dom.Text("type 'q' to exit, ctrl+y to copy the visible list")
		}(),
	)
}

// copyVisible puts the currently visible habit names on the system
// clipboard, one per line.
func copyVisible(state *State) {
	result := computeVisibleHabits(state.Habits, state.Query, state.ShowArchived, MaxVisibleHabits, state.SliceStart)
	if len(result.Visible) == 0 {
		return
	}
	names := make([]string, 0, len(result.Visible))
	for _, habit := range result.Visible {
		names = append(names, habit.Data.Name)
	}
	err := clipboard.WriteAll(strings.Join(names, "\n"))
	if err != nil {
		state.notifier().Notify("copy failed: "+err.Error(), notify.Options{Kind: notify.KindError})
		return
	}
	state.notifier().Notify("copied "+plural(len(names), "habit"), notify.Options{Kind: notify.KindSuccess})
}
