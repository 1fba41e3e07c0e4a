package navigation

import (
	"sync"

	"alexmorgan.design/internal/timing"
)

const (
	// HeaderScrolledAt is the offset past which the header is compacted
	HeaderScrolledAt = 50.0
	// ScrollTopShownAt is the offset past which the scroll-to-top button shows
	ScrollTopShownAt = 500.0
)

// Section is a page section's vertical extent
type Section struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y falls in [Top, Top+Height)
func (s Section) Contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Probe locates the reading line inside the viewport. The line sits at
// ScrollY + HeaderHeight + Margin + ViewportHeight*ViewportFraction.
type Probe struct {
	HeaderHeight     float64 `json:"header_height"`
	Margin           float64 `json:"margin"`
	ViewportFraction float64 `json:"viewport_fraction"`
}

// HeaderProbe places the line just below a fixed header
var HeaderProbe = Probe{Margin: 50}

// SidebarProbe places the line a third of the way down the viewport
var SidebarProbe = Probe{ViewportFraction: 1.0 / 3}

// Line returns the document offset the probe tests sections against
func (p Probe) Line(scrollY, viewportHeight float64) float64 {
	return scrollY + p.HeaderHeight + p.Margin + viewportHeight*p.ViewportFraction
}

// ActiveSection returns the id of the last section containing line, or ""
func ActiveSection(sections []Section, line float64) string {
	active := ""
	for _, s := range sections {
		if s.Contains(line) {
			active = s.ID
		}
	}
	return active
}

// ScrollState is what the tracker reflects into the page
type ScrollState struct {
	ScrollY       float64 `json:"scroll_y"`
	ActiveSection string  `json:"active_section"`
	HeaderScroll  bool    `json:"header_scrolled"`
	ScrollTopShow bool    `json:"scroll_top_shown"`
}

// Tracker follows the scroll position, recomputing at most once a frame
type Tracker struct {
	mu       sync.Mutex
	sections []Section
	probe    Probe
	viewport float64
	pending  float64
	state    ScrollState
	frames   *timing.FrameThrottle
	onChange func()
}

// NewTracker creates a Tracker over sections
func NewTracker(s timing.Scheduler, sections []Section, probe Probe, viewportHeight float64, onChange func()) *Tracker {
	t := &Tracker{
		sections: append([]Section(nil), sections...),
		probe:    probe,
		viewport: viewportHeight,
		onChange: onChange,
	}
	t.frames = timing.NewFrameThrottle(s, t.frame)
	t.state = t.compute(0)
	return t
}

// Scroll records a scroll event
func (t *Tracker) Scroll(y float64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.pending = y
	t.mu.Unlock()
	t.frames.Request()
}

// SetViewport updates the viewport height used by the probe
func (t *Tracker) SetViewport(height float64) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.viewport = height
	t.mu.Unlock()
	t.frames.Request()
}

// SetSections replaces the section layout
func (t *Tracker) SetSections(sections []Section) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.sections = append([]Section(nil), sections...)
	t.mu.Unlock()
	t.frames.Request()
}

func (t *Tracker) frame() {
	t.mu.Lock()
	next := t.compute(t.pending)
	changed := next != t.state
	t.state = next
	onChange := t.onChange
	t.mu.Unlock()

	if changed && onChange != nil {
		onChange()
	}
}

// compute derives the state for offset y. Caller holds mu.
func (t *Tracker) compute(y float64) ScrollState {
	return ScrollState{
		ScrollY:       y,
		ActiveSection: ActiveSection(t.sections, t.probe.Line(y, t.viewport)),
		HeaderScroll:  y > HeaderScrolledAt,
		ScrollTopShow: y > ScrollTopShownAt,
	}
}

// State returns the state as of the last frame
func (t *Tracker) State() ScrollState {
	if t == nil {
		return ScrollState{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Stop cancels a pending frame
func (t *Tracker) Stop() {
	if t == nil {
		return
	}
	t.frames.Stop()
}
