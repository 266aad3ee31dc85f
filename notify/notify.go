package notify

import (
	"sync"
	"time"
)

// Handle identifies a delivered notification so it can be dismissed.
type Handle int64

type Kind int

const (
	KindInfo Kind = iota
	KindSuccess
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	}
	return "info"
}

const DefaultDuration = 3 * time.Second

type Options struct {
	Kind Kind
	// Duration before auto-dismiss; zero means DefaultDuration,
	// negative means sticky until dismissed
	Duration time.Duration
}

func (o Options) EffectiveDuration() time.Duration {
	if o.Duration == 0 {
		return DefaultDuration
	}
	return o.Duration
}

// Service is the capability surface of an external notification
// provider. Implementations live at the host boundary: this package
// never renders anything itself.
type Service interface {
	Notify(message string, opts Options) Handle
	Dismiss(handle Handle)
}

// Nop discards all notifications.
type Nop struct{}

func (Nop) Notify(message string, opts Options) Handle { return 0 }

func (Nop) Dismiss(handle Handle) {}

type Event struct {
	Handle  Handle
	Message string
	Options Options
}

// Recorder captures notifications for tests.
type Recorder struct {
	mu     sync.Mutex
	nextID Handle

	Events    []Event
	Dismissed []Handle
}

func (r *Recorder) Notify(message string, opts Options) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.Events = append(r.Events, Event{
		Handle:  r.nextID,
		Message: message,
		Options: opts,
	})
	return r.nextID
}

func (r *Recorder) Dismiss(handle Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Dismissed = append(r.Dismissed, handle)
}

// Active returns events that have not been dismissed yet.
func (r *Recorder) Active() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	dismissed := make(map[Handle]bool, len(r.Dismissed))
	for _, h := range r.Dismissed {
		dismissed[h] = true
	}
	var active []Event
	for _, e := range r.Events {
		if !dismissed[e.Handle] {
			active = append(active, e)
		}
	}
	return active
}
