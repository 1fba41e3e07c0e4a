// Package lightbox is the modal image overlay with its focus trap.
package lightbox

import (
	"sync"
	"time"

	"alexmorgan.design/internal/timing"
	"alexmorgan.design/internal/widgets/focus"
)

// DefaultCloseDelay matches the overlay fade-out transition
const DefaultCloseDelay = 300 * time.Millisecond

// DefaultControls are the focusable controls inside the overlay
var DefaultControls = []string{"lightbox-close"}

// Phase of the overlay
type Phase int

const (
	Closed Phase = iota
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// State is the visible state of the overlay
type State struct {
	Phase       string `json:"phase"`
	Show        bool   `json:"show"`
	Hidden      bool   `json:"hidden"`
	Src         string `json:"src"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Focus       string `json:"focus,omitempty"`
	ScrollLock  bool   `json:"scroll_lock"`
}

// Lightbox shows one image, title, and description at a time
type Lightbox struct {
	mu         sync.Mutex
	sched      timing.Scheduler
	closeDelay time.Duration
	controls   []string
	onChange   func()

	phase       Phase
	src         string
	title       string
	description string
	focus       int
	timer       timing.Timer
	gen         uint64
}

// New creates a closed Lightbox. controls lists the focusable element ids
// in tab order; nil uses DefaultControls.
func New(s timing.Scheduler, controls []string, onChange func()) *Lightbox {
	if controls == nil {
		controls = DefaultControls
	}
	return &Lightbox{
		sched:      s,
		closeDelay: DefaultCloseDelay,
		controls:   append([]string(nil), controls...),
		onChange:   onChange,
	}
}

// IsOpen reports whether the overlay is shown
func (l *Lightbox) IsOpen() bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase == Open
}

// Open populates and reveals the overlay. Opening while a close is in
// flight cancels the close.
func (l *Lightbox) Open(src, title, description string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.cancelLocked()
	l.phase = Open
	l.src = src
	l.title = title
	l.description = description
	l.focus = 0
}

// Close hides the overlay and clears the image source once the fade-out
// has finished.
func (l *Lightbox) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.phase != Open {
		return
	}
	l.cancelLocked()
	l.phase = Closing
	gen := l.gen
	l.timer = l.sched.AfterFunc(l.closeDelay, func() { l.finishClose(gen) })
}

func (l *Lightbox) finishClose(gen uint64) {
	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		return
	}
	l.timer = nil
	l.phase = Closed
	l.src = ""
	onChange := l.onChange
	l.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Key handles a key press while the overlay is open. It reports whether
// the key was consumed; keys are never consumed while closed.
func (l *Lightbox) Key(key string, shift bool) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	if l.phase != Open {
		l.mu.Unlock()
		return false
	}

	switch key {
	case "Escape":
		l.mu.Unlock()
		l.Close()
		return true
	case "Tab":
		l.focus = focus.Next(l.focus, len(l.controls), shift)
	case "ArrowLeft", "ArrowRight":
	default:
		l.mu.Unlock()
		return false
	}
	l.mu.Unlock()
	return true
}

// State returns the overlay state
func (l *Lightbox) State() State {
	if l == nil {
		return State{Phase: Closed.String(), Hidden: true}
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	st := State{
		Phase:       l.phase.String(),
		Show:        l.phase == Open,
		Hidden:      l.phase == Closed,
		Src:         l.src,
		Alt:         l.title,
		Title:       l.title,
		Description: l.description,
		ScrollLock:  l.phase == Open,
	}
	if l.phase == Open && len(l.controls) > 0 {
		st.Focus = l.controls[l.focus]
	}
	return st
}

// Stop cancels a pending close
func (l *Lightbox) Stop() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cancelLocked()
}

func (l *Lightbox) cancelLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
	l.gen++
}
