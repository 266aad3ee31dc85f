package app

import (
	"fmt"

	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/habits/notify"
)

// AppStatusBar renders the application status bar
func AppStatusBar(state *State) *dom.Node {
	var nodes []*dom.Node

	// Left side: dot, source, pagination, error, notice
	nodes = append(nodes, dom.Text("•", styles.Style{
		Bold:  true,
		Color: colors.GREEN_SUCCESS,
	}))
	if state.StatusBar.Source != "" {
		nodes = append(nodes, dom.Text(state.StatusBar.Source, styles.Style{
			Bold:  true,
			Color: colors.GREY_TEXT,
		}))
	}
	if state.Pagination != nil {
		nodes = append(nodes, dom.Text(fmt.Sprintf("  p.%d/%d · %d total", state.Pagination.Page, state.Pagination.TotalPages, state.Pagination.Total), styles.Style{
			Color: colors.GREY_TEXT,
		}))
	}
	if state.StatusBar.Error != "" {
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Error, styles.Style{
			Bold:  true,
			Color: colors.RED_ERROR,
		}))
	}
	if state.StatusBar.Notice != "" {
		color := colors.GREY_TEXT
		switch state.StatusBar.NoticeKind {
		case notify.KindSuccess:
			color = colors.GREEN_SUCCESS
		case notify.KindError:
			color = colors.RED_ERROR
		}
		nodes = append(nodes, dom.Text("  "+state.StatusBar.Notice, styles.Style{
			Bold:  true,
			Color: color,
		}))
	}

	// Spacer to push modes to the right
	hasRightContent := state.Query != "" || state.ShowArchived
	if hasRightContent {
		nodes = append(nodes, dom.Spacer(dom.WithMaxSize(40)))

		var modeCount int
		if state.Query != "" {
			nodes = append(nodes, dom.Text("filter:on", styles.Style{
				Bold:  true,
				Color: "cyan",
			}))
			modeCount++
		}
		if state.ShowArchived {
			if modeCount > 0 {
				nodes = append(nodes, dom.Text(" ", styles.Style{}))
			}
			nodes = append(nodes, dom.Text("archived", styles.Style{
				Bold:  true,
				Color: colors.GREY_TEXT,
			}))
		}
	}

	return dom.HDiv(dom.DivProps{Width: UIWidth}, nodes...)
}
