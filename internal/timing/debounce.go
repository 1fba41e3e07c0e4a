package timing

import (
	"sync"
	"time"
)

// FrameInterval approximates one display frame
const FrameInterval = 16 * time.Millisecond

// Debouncer delays fn until calls have stopped for the wait period.
// With immediate set, fn runs on the leading edge instead and further
// calls inside the window are dropped.
type Debouncer struct {
	mu        sync.Mutex
	sched     Scheduler
	wait      time.Duration
	immediate bool
	fn        func()
	timer     Timer
	gen       uint64
}

// NewDebouncer creates a Debouncer
func NewDebouncer(s Scheduler, wait time.Duration, immediate bool, fn func()) *Debouncer {
	return &Debouncer{
		sched:     s,
		wait:      wait,
		immediate: immediate,
		fn:        fn,
	}
}

// Call registers an invocation
func (d *Debouncer) Call() {
	d.mu.Lock()
	callNow := d.immediate && d.timer == nil
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = d.sched.AfterFunc(d.wait, func() { d.fire(gen) })
	d.mu.Unlock()

	if callNow {
		d.fn()
	}
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	run := !d.immediate
	d.mu.Unlock()

	if run {
		d.fn()
	}
}

// Stop drops any pending invocation
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// FrameThrottle coalesces a burst of calls into a single fn call per frame
type FrameThrottle struct {
	mu      sync.Mutex
	sched   Scheduler
	fn      func()
	ticking bool
	timer   Timer
}

// NewFrameThrottle creates a FrameThrottle
func NewFrameThrottle(s Scheduler, fn func()) *FrameThrottle {
	return &FrameThrottle{sched: s, fn: fn}
}

// Request asks for fn on the next frame. Requests made before that frame
// runs are absorbed.
func (f *FrameThrottle) Request() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ticking {
		return
	}
	f.ticking = true
	f.timer = f.sched.AfterFunc(FrameInterval, f.frame)
}

func (f *FrameThrottle) frame() {
	f.mu.Lock()
	if !f.ticking {
		f.mu.Unlock()
		return
	}
	f.ticking = false
	f.timer = nil
	f.mu.Unlock()

	f.fn()
}

// Stop cancels a pending frame
func (f *FrameThrottle) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.ticking = false
}
