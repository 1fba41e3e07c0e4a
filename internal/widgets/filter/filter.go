// Package filter partitions the portfolio grid by category and sequences
// the show/hide animation as a single timed transition.
package filter

import (
	"sync"
	"time"

	"alexmorgan.design/internal/timing"
)

// All is the tag that matches every category
const All = "all"

// Item is a portfolio grid entry as the filter sees it
type Item struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// Timings controls one transition. Item i animates in at
// Delay + i*Stagger; items leaving become hidden at HideDelay.
type Timings struct {
	Delay     time.Duration
	Stagger   time.Duration
	HideDelay time.Duration
}

// DefaultTimings is used for filter button clicks
var DefaultTimings = Timings{
	Stagger:   100 * time.Millisecond,
	HideDelay: 300 * time.Millisecond,
}

// RevealTimings is used for the first reveal after page load
var RevealTimings = Timings{
	Delay:     500 * time.Millisecond,
	Stagger:   150 * time.Millisecond,
	HideDelay: 300 * time.Millisecond,
}

// Phase of the filter transition
type Phase int

const (
	Idle Phase = iota
	Transitioning
	Settled
)

func (p Phase) String() string {
	switch p {
	case Transitioning:
		return "transitioning"
	case Settled:
		return "settled"
	default:
		return "idle"
	}
}

// ItemState is the class state of one grid item. While a change is
// pending, DelayMS is how long until it applies: animate-in for a
// visible item, hidden for a leaving one. The page uses it as the
// item's transition-delay.
type ItemState struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Visible   bool   `json:"visible"`
	AnimateIn bool   `json:"animate_in"`
	Hidden    bool   `json:"hidden"`
	DelayMS   int64  `json:"delay_ms"`
}

// Pending reports whether the item still has a change to apply
func (s ItemState) Pending() bool {
	if s.Visible {
		return !s.AnimateIn
	}
	return !s.Hidden
}

// Classes returns the CSS state classes of the item
func (s ItemState) Classes() []string {
	var classes []string
	if s.AnimateIn {
		classes = append(classes, "animate-in")
	}
	if s.Hidden {
		classes = append(classes, "hidden")
	}
	return classes
}

// Match reports whether an item of category is shown under tag
func Match(tag, category string) bool {
	return tag == "" || tag == All || tag == category
}

// Partition splits item indexes into shown and hidden under tag
func Partition(items []Item, tag string) (shown, hidden []int) {
	for i, item := range items {
		if Match(tag, item.Category) {
			shown = append(shown, i)
		} else {
			hidden = append(hidden, i)
		}
	}
	return shown, hidden
}

// Frame computes item states elapsed into a transition toward tag,
// starting from the states in from.
func Frame(items []Item, from []ItemState, tag string, tm Timings, elapsed time.Duration) []ItemState {
	out := make([]ItemState, len(items))
	for i, item := range items {
		var prev ItemState
		if i < len(from) {
			prev = from[i]
		}
		st := ItemState{ID: item.ID, Category: item.Category}
		var at time.Duration
		if Match(tag, item.Category) {
			at = tm.Delay + time.Duration(i)*tm.Stagger
			st.Visible = true
			st.AnimateIn = prev.AnimateIn || elapsed >= at
		} else {
			at = tm.HideDelay
			st.Hidden = prev.Hidden || elapsed >= at
		}
		if st.Pending() {
			st.DelayMS = (at - elapsed).Milliseconds()
		}
		out[i] = st
	}
	return out
}

// Duration is how long a transition toward tag takes to settle
func Duration(items []Item, tag string, tm Timings) time.Duration {
	var d time.Duration
	shown, hidden := Partition(items, tag)
	if len(shown) > 0 {
		d = tm.Delay + time.Duration(shown[len(shown)-1])*tm.Stagger
	}
	if len(hidden) > 0 && tm.HideDelay > d {
		d = tm.HideDelay
	}
	return d
}

// Filter owns the active tag and the grid's transition
type Filter struct {
	mu       sync.Mutex
	sched    timing.Scheduler
	items    []Item
	timings  Timings
	onChange func()

	active  string
	phase   Phase
	from    []ItemState
	current Timings
	started time.Time
	timer   timing.Timer
	gen     uint64
}

// New creates a Filter over items with every item visible
func New(items []Item, s timing.Scheduler, tm Timings, onChange func()) *Filter {
	if tm == (Timings{}) {
		tm = DefaultTimings
	}
	f := &Filter{
		sched:    s,
		items:    append([]Item(nil), items...),
		timings:  tm,
		onChange: onChange,
		active:   All,
	}
	f.from = Frame(f.items, nil, All, Timings{}, 0)
	for i := range f.from {
		f.from[i].AnimateIn = false
	}
	return f
}

// Enabled reports whether there is anything to filter
func (f *Filter) Enabled() bool {
	return f != nil && len(f.items) > 0
}

// Active returns the active filter tag
func (f *Filter) Active() string {
	if f == nil {
		return All
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.active
}

// Phase returns the transition phase
func (f *Filter) Phase() Phase {
	if f == nil {
		return Idle
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.phase
}

// Apply switches to tag and starts its transition, superseding any
// transition still running.
func (f *Filter) Apply(tag string) {
	f.begin(tag, f.timingsOrDefault())
}

// Reveal staggers every currently visible item in after page load
func (f *Filter) Reveal() {
	f.begin(f.Active(), RevealTimings)
}

func (f *Filter) timingsOrDefault() Timings {
	if f == nil {
		return DefaultTimings
	}
	return f.timings
}

func (f *Filter) begin(tag string, tm Timings) {
	if f == nil {
		return
	}
	if tag == "" {
		tag = All
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.active = tag
	if len(f.items) == 0 {
		return
	}

	now := f.sched.Now()
	f.from = f.frameLocked(now)
	f.current = tm
	f.started = now
	f.phase = Transitioning

	if f.timer != nil {
		f.timer.Stop()
	}
	f.gen++
	gen := f.gen
	f.timer = f.sched.AfterFunc(Duration(f.items, tag, tm), func() { f.settle(gen) })
}

func (f *Filter) settle(gen uint64) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.from = Frame(f.items, f.from, f.active, f.current, Duration(f.items, f.active, f.current))
	f.phase = Settled
	f.timer = nil
	onChange := f.onChange
	f.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// frameLocked returns item states at now. Caller holds mu.
func (f *Filter) frameLocked(now time.Time) []ItemState {
	if f.phase != Transitioning {
		return append([]ItemState(nil), f.from...)
	}
	return Frame(f.items, f.from, f.active, f.current, now.Sub(f.started))
}

// Items returns the item states at the scheduler's current time
func (f *Filter) Items() []ItemState {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frameLocked(f.sched.Now())
}

// Visible returns the ids of the items the active tag selects
func (f *Filter) Visible() []string {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []string
	for _, item := range f.items {
		if Match(f.active, item.Category) {
			ids = append(ids, item.ID)
		}
	}
	return ids
}

// Stop cancels a running transition, freezing the grid where it is
func (f *Filter) Stop() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == Transitioning {
		f.from = f.frameLocked(f.sched.Now())
		for i := range f.from {
			f.from[i].DelayMS = 0
		}
		f.phase = Settled
	}
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}
