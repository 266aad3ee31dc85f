package app

import (
	"sync"
	"time"

	"github.com/xhd2015/habits/notify"
)

// statusBarNotifier binds the notify.Service capability to the status
// bar: notices show inline and auto-dismiss after their duration.
type statusBarNotifier struct {
	state *State

	mu      sync.Mutex
	nextID  notify.Handle
	current notify.Handle
}

func NewStatusBarNotifier(state *State) notify.Service {
	return &statusBarNotifier{state: state}
}

func (n *statusBarNotifier) Notify(message string, opts notify.Options) notify.Handle {
	n.mu.Lock()
	n.nextID++
	handle := n.nextID
	n.current = handle
	n.mu.Unlock()

	n.state.StatusBar.Notice = message
	n.state.StatusBar.NoticeKind = opts.Kind

	if duration := opts.EffectiveDuration(); duration > 0 {
		go func() {
			time.Sleep(duration)
			n.state.RunOnLoop(func() {
				n.Dismiss(handle)
			})
		}()
	}
	return handle
}

func (n *statusBarNotifier) Dismiss(handle notify.Handle) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// a newer notice may have replaced this one
	if handle != n.current {
		return
	}
	n.current = 0
	n.state.StatusBar.Notice = ""
	n.state.StatusBar.NoticeKind = notify.KindInfo
}
