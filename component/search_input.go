package component

import (
	"github.com/xhd2015/go-dom-tui/colors"
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/go-dom-tui/styles"
	"github.com/xhd2015/habits/models"
)

const (
	// DefaultPlaceholder is shown when the host supplies none.
	DefaultPlaceholder = "Search..."

	// ClearLabel is the accessible name of the clear control. It is
	// rendered next to the control whenever the control has focus.
	ClearLabel = "Clear search"
)

// SearchInputProps is the contract of the controlled search widget.
// Value and OnChange are required: the component never stores the
// value, it forwards every edit to the host and renders whatever the
// host passes back down.
type SearchInputProps struct {
	Value    string
	OnChange func(next string)

	Placeholder string // default: DefaultPlaceholder
	ShowClear   *bool  // default: true

	// Focus carries the DOM-transient focus and cursor state, owned
	// by the host like the rest of its page state
	Focus *models.FocusState

	// OnKeyDown receives key events for host-level handling (ESC to
	// clear, navigation); return true if the event was handled
	OnKeyDown func(event *dom.DOMEvent) bool

	Width int
}

// searchInputConfig is the resolved form of the optional props, fixed
// once per render.
type searchInputConfig struct {
	placeholder string
	showClear   bool
	width       int
}

func resolveConfig(props SearchInputProps) searchInputConfig {
	cfg := searchInputConfig{
		placeholder: props.Placeholder,
		showClear:   true,
		width:       props.Width,
	}
	if cfg.placeholder == "" {
		cfg.placeholder = DefaultPlaceholder
	}
	if props.ShowClear != nil {
		cfg.showClear = *props.ShowClear
	}
	if cfg.width == 0 {
		cfg.width = 50
	}
	return cfg
}

// clearVisible: the clear control shows iff the value is non-empty and
// showClear is not disabled.
func clearVisible(value string, cfg searchInputConfig) bool {
	return cfg.showClear && value != ""
}

// SearchInput renders a controlled single-line search field with an
// inline clear affordance.
func SearchInput(props SearchInputProps) *dom.Node {
	cfg := resolveConfig(props)
	if props.Focus == nil {
		props.Focus = &models.FocusState{}
	}

	input := dom.Input(buildInputProps(props, cfg))
	if !clearVisible(props.Value, cfg) {
		return input
	}
	return dom.HDiv(dom.DivProps{},
		input,
		clearControl(props),
	)
}

func buildInputProps(props SearchInputProps, cfg searchInputConfig) dom.InputProps {
	focus := props.Focus
	if focus == nil {
		focus = &models.FocusState{}
	}
	return dom.InputProps{
		Placeholder:    cfg.placeholder,
		Value:          props.Value,
		Focused:        focus.Focused,
		CursorPosition: focus.CursorPosition,
		Focusable:      dom.Focusable(true),
		Width:          cfg.width,
		OnFocus: func() {
			focus.Focused = true
		},
		OnBlur: func() {
			focus.Focused = false
		},
		OnChange: func(value string) {
			// forward the raw field content, exactly once per edit
			props.OnChange(value)
		},
		OnCursorMove: func(position int) {
			if position < 0 {
				position = 0
			}
			rnLen := runLength(props.Value)
			if position > rnLen+1 {
				position = rnLen + 1
			}
			focus.CursorPosition = position
		},
		OnKeyDown: func(event *dom.DOMEvent) {
			if props.OnKeyDown != nil {
				props.OnKeyDown(event)
			}
		},
	}
}

// activateClear resets the host value. The clear action performs no
// other mutation.
func activateClear(props SearchInputProps) {
	props.OnChange("")
}

func clearControl(props SearchInputProps) *dom.Node {
	focus := props.Focus
	label := " ✕"
	if focus.ClearFocused {
		label = " ✕ " + ClearLabel
	}
	return dom.Li(dom.ListItemProps{
		Focusable: dom.Focusable(true),
		Focused:   focus.ClearFocused,
		OnFocus: func() {
			focus.ClearFocused = true
		},
		OnBlur: func() {
			focus.ClearFocused = false
		},
		OnKeyDown: func(e *dom.DOMEvent) {
			keyEvent := e.KeydownEvent
			if keyEvent == nil {
				return
			}
			switch keyEvent.KeyType {
			case dom.KeyTypeEnter, dom.KeyTypeSpace:
				activateClear(props)
			}
		},
	}, dom.Text(label, styles.Style{
		Bold:  focus.ClearFocused,
		Color: colors.GREY_TEXT,
	}))
}

func runLength(s string) int {
	return len([]rune(s))
}
