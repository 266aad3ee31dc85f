package component

import (
	"strings"
	"testing"

	"github.com/xhd2015/go-dom-tui/charm/renderer"
	"github.com/xhd2015/habits/models"
)

func renderToString(props SearchInputProps) string {
	node := SearchInput(props)
	r := renderer.NewInteractiveCharmRenderer()
	return r.Render(node)
}

func boolPtr(b bool) *bool {
	return &b
}

func TestClearControlVisibility(t *testing.T) {
	cases := []struct {
		name      string
		value     string
		showClear *bool
		visible   bool
	}{
		{name: "empty value", value: "", visible: false},
		{name: "non-empty value", value: "run", visible: true},
		{name: "non-empty value, showClear false", value: "run", showClear: boolPtr(false), visible: false},
		{name: "empty value, showClear true", value: "", showClear: boolPtr(true), visible: false},
		{name: "non-empty value, showClear true", value: "run", showClear: boolPtr(true), visible: true},
	}
	for _, c := range cases {
		output := renderToString(SearchInputProps{
			Value:     c.value,
			OnChange:  func(string) {},
			ShowClear: c.showClear,
			Focus:     &models.FocusState{},
		})
		got := strings.Contains(output, "✕")
		if got != c.visible {
			t.Errorf("%s: expected clear visible=%v, output:\n%s", c.name, c.visible, output)
		}
	}
}

func TestOnChangeForwardsEveryKeystroke(t *testing.T) {
	var calls []string
	props := SearchInputProps{
		Value: "", // host never re-renders in this test
		OnChange: func(next string) {
			calls = append(calls, next)
		},
		Focus: &models.FocusState{Focused: true},
	}
	input := buildInputProps(props, resolveConfig(props))

	// three raw input events against an unchanging value prop
	input.OnChange("a")
	input.OnChange("b")
	input.OnChange("c")

	if len(calls) != 3 {
		t.Fatalf("expected 3 onChange calls, got %d", len(calls))
	}
	for i, want := range []string{"a", "b", "c"} {
		if calls[i] != want {
			t.Errorf("call %d: expected %q, got %q", i, want, calls[i])
		}
	}
}

func TestActivateClearEmitsEmptyString(t *testing.T) {
	for _, value := range []string{"run", "a longer query", "?"} {
		var calls []string
		activateClear(SearchInputProps{
			Value: value,
			OnChange: func(next string) {
				calls = append(calls, next)
			},
		})
		if len(calls) != 1 || calls[0] != "" {
			t.Errorf("value %q: expected exactly one onChange(\"\"), got %v", value, calls)
		}
	}
}

func TestPlaceholderDefault(t *testing.T) {
	props := SearchInputProps{Value: "", OnChange: func(string) {}}
	cfg := resolveConfig(props)
	if cfg.placeholder != DefaultPlaceholder {
		t.Errorf("expected default placeholder %q, got %q", DefaultPlaceholder, cfg.placeholder)
	}

	props.Placeholder = "filter habits"
	cfg = resolveConfig(props)
	if cfg.placeholder != "filter habits" {
		t.Errorf("expected custom placeholder, got %q", cfg.placeholder)
	}

	input := buildInputProps(props, cfg)
	if input.Placeholder != "filter habits" {
		t.Errorf("placeholder not passed through: %q", input.Placeholder)
	}
}

func TestShowClearDefaultTrue(t *testing.T) {
	cfg := resolveConfig(SearchInputProps{})
	if !cfg.showClear {
		t.Errorf("showClear must default to true")
	}
	if !clearVisible("x", cfg) {
		t.Errorf("expected clear visible for non-empty value with defaults")
	}
	if clearVisible("", cfg) {
		t.Errorf("expected clear hidden for empty value")
	}
}

func TestComponentDoesNotMutateValue(t *testing.T) {
	focus := &models.FocusState{Focused: true}
	props := SearchInputProps{
		Value:    "stable",
		OnChange: func(string) {},
		Focus:    focus,
	}
	input := buildInputProps(props, resolveConfig(props))

	input.OnChange("stable!")
	input.OnCursorMove(3)

	if props.Value != "stable" {
		t.Errorf("value prop must never change, got %q", props.Value)
	}
	if focus.CursorPosition != 3 {
		t.Errorf("cursor position should track moves, got %d", focus.CursorPosition)
	}
}

func TestCursorMoveClampedToValue(t *testing.T) {
	focus := &models.FocusState{}
	props := SearchInputProps{
		Value:    "abc",
		OnChange: func(string) {},
		Focus:    focus,
	}
	input := buildInputProps(props, resolveConfig(props))

	input.OnCursorMove(-2)
	if focus.CursorPosition != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", focus.CursorPosition)
	}
	input.OnCursorMove(10)
	if focus.CursorPosition != 4 {
		t.Errorf("expected cursor clamped to 4, got %d", focus.CursorPosition)
	}
}

func TestClearLabelShownWhenFocused(t *testing.T) {
	output := renderToString(SearchInputProps{
		Value:    "run",
		OnChange: func(string) {},
		Focus:    &models.FocusState{ClearFocused: true},
	})
	if !strings.Contains(output, ClearLabel) {
		t.Errorf("expected accessible label %q in output:\n%s", ClearLabel, output)
	}

	output = renderToString(SearchInputProps{
		Value:    "run",
		OnChange: func(string) {},
		Focus:    &models.FocusState{},
	})
	if strings.Contains(output, ClearLabel) {
		t.Errorf("label should only render while the control is focused:\n%s", output)
	}
}
