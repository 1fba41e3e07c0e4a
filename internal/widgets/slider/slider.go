// Package slider implements the testimonial carousel: a wrapping slide
// index with timer-driven autoplay, hover pause, and swipe navigation.
package slider

import (
	"sync"
	"time"

	"alexmorgan.design/internal/timing"
)

const (
	DefaultInterval       = 5000 * time.Millisecond
	DefaultSettleDelay    = 1000 * time.Millisecond
	DefaultSwipeThreshold = 50.0
)

// Phase is the autoplay state of a slider
type Phase int

const (
	// Idle means autoplay has not been started or was stopped
	Idle Phase = iota
	// Playing means the interval timer is armed
	Playing
	// Settling means a manual navigation is waiting out the settle delay
	Settling
	// Paused means autoplay was suspended by hover
	Paused
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case Settling:
		return "settling"
	case Paused:
		return "paused"
	default:
		return "idle"
	}
}

// Options tunes a Slider. Zero values fall back to the defaults.
type Options struct {
	Interval       time.Duration
	SettleDelay    time.Duration
	SwipeThreshold float64
	// OnChange is called after an autoplay tick moves the slide
	OnChange func(State)
}

// State is a copy of the slider's visible state
type State struct {
	Index  int    `json:"index"`
	Count  int    `json:"count"`
	Paused bool   `json:"paused"`
	Phase  string `json:"phase"`
	Slides []bool `json:"slides"`
	Dots   []bool `json:"dots"`
}

// Slider owns the current slide index and the single autoplay timer
type Slider struct {
	mu     sync.Mutex
	sched  timing.Scheduler
	opts   Options
	count  int
	index  int
	paused bool
	phase  Phase
	timer  timing.Timer
	gen    uint64
}

// New creates a Slider over count slides showing the first one. A slider
// with no slides is disabled and every operation is a no-op.
func New(count int, s timing.Scheduler, opts Options) *Slider {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = DefaultSwipeThreshold
	}
	if count < 0 {
		count = 0
	}
	return &Slider{sched: s, opts: opts, count: count}
}

// Enabled reports whether the slider has any slides
func (s *Slider) Enabled() bool {
	return s != nil && s.count > 0
}

// State returns the current state
func (s *Slider) State() State {
	if s == nil {
		return State{Phase: Idle.String()}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Slider) stateLocked() State {
	st := State{
		Index:  s.index,
		Count:  s.count,
		Paused: s.paused,
		Phase:  s.phase.String(),
		Slides: make([]bool, s.count),
		Dots:   make([]bool, s.count),
	}
	if s.count > 0 {
		st.Slides[s.index] = true
		st.Dots[s.index] = true
	}
	return st
}

// Index returns the current slide index
func (s *Slider) Index() int {
	if !s.Enabled() {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Show activates slide i, wrapping out-of-range values into [0, N)
func (s *Slider) Show(i int) {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = Wrap(i, s.count)
}

// Next moves one slide forward
func (s *Slider) Next() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = NextIndex(s.index, s.count)
}

// Previous moves one slide back
func (s *Slider) Previous() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = PrevIndex(s.index, s.count)
}

// StartAutoplay arms the interval timer, replacing any armed timer
func (s *Slider) StartAutoplay() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = false
	s.armIntervalLocked()
}

// PauseAutoplay cancels the timer on hover. It has no effect when
// autoplay is not running.
func (s *Slider) PauseAutoplay() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == Idle || s.phase == Paused {
		return
	}
	s.cancelLocked()
	s.paused = true
	s.phase = Paused
}

// ResumeAutoplay re-arms the timer only if it was paused by hover
func (s *Slider) ResumeAutoplay() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.paused {
		return
	}
	s.paused = false
	s.armIntervalLocked()
}

// ResetAutoplay restarts autoplay after the settle delay following a
// manual navigation. A hover-paused slider stays paused.
func (s *Slider) ResetAutoplay() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == Idle || s.paused {
		return
	}
	s.cancelLocked()
	gen := s.gen
	s.phase = Settling
	s.timer = s.sched.AfterFunc(s.opts.SettleDelay, func() { s.settle(gen) })
}

// Stop cancels autoplay and releases the timer
func (s *Slider) Stop() {
	if !s.Enabled() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()
	s.paused = false
	s.phase = Idle
}

// NavigateNext is the next-arrow handler
func (s *Slider) NavigateNext() {
	s.Next()
	s.ResetAutoplay()
}

// NavigatePrevious is the previous-arrow handler
func (s *Slider) NavigatePrevious() {
	s.Previous()
	s.ResetAutoplay()
}

// NavigateTo is the dot handler
func (s *Slider) NavigateTo(i int) {
	s.Show(i)
	s.ResetAutoplay()
}

// Swipe handles a touch gesture between start and end. It reports whether
// the gesture changed the slide.
func (s *Slider) Swipe(start, end Point) bool {
	if !s.Enabled() {
		return false
	}
	switch SwipeDirection(start, end, s.opts.SwipeThreshold) {
	case Forward:
		s.NavigateNext()
	case Backward:
		s.NavigatePrevious()
	default:
		return false
	}
	return true
}

// Key handles arrow keys and reports whether the key was consumed
func (s *Slider) Key(key string) bool {
	if !s.Enabled() {
		return false
	}
	switch key {
	case "ArrowLeft":
		s.NavigatePrevious()
	case "ArrowRight":
		s.NavigateNext()
	default:
		return false
	}
	return true
}

// armIntervalLocked replaces any armed timer with the autoplay interval.
func (s *Slider) armIntervalLocked() {
	s.cancelLocked()
	gen := s.gen
	s.phase = Playing
	s.timer = s.sched.AfterFunc(s.opts.Interval, func() { s.tick(gen) })
}

// cancelLocked stops the armed timer. Bumping gen invalidates a callback
// that already started running.
func (s *Slider) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

func (s *Slider) tick(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.index = NextIndex(s.index, s.count)
	s.armIntervalLocked()
	st := s.stateLocked()
	onChange := s.opts.OnChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(st)
	}
}

func (s *Slider) settle(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	s.timer = nil
	s.armIntervalLocked()
}
