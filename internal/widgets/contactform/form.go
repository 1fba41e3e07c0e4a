package contactform

import (
	"sync"
	"time"

	"alexmorgan.design/internal/timing"
)

const (
	DefaultSendDelay    = 2000 * time.Millisecond
	DefaultSuccessDelay = 5000 * time.Millisecond

	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."
)

// Sink receives a message once the simulated send completes
type Sink interface {
	Accept(Values)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Values)

// Accept calls f
func (f SinkFunc) Accept(v Values) { f(v) }

// Phase of a submission
type Phase int

const (
	Editing Phase = iota
	Sending
	Sent
)

func (p Phase) String() string {
	switch p {
	case Sending:
		return "sending"
	case Sent:
		return "sent"
	default:
		return "editing"
	}
}

// State is the visible state of the form
type State struct {
	Phase          string `json:"phase"`
	Values         Values `json:"values"`
	Errors         Errors `json:"errors"`
	SubmitDisabled bool   `json:"submit_disabled"`
	SubmitLabel    string `json:"submit_label"`
	SuccessShown   bool   `json:"success_shown"`
}

// Form holds the field values and the submission sequence
type Form struct {
	mu           sync.Mutex
	sched        timing.Scheduler
	sink         Sink
	onChange     func()
	sendDelay    time.Duration
	successDelay time.Duration

	values  Values
	errors  Errors
	phase   Phase
	success bool
	timer   timing.Timer
	gen     uint64
}

// New creates an empty form. sink may be nil.
func New(s timing.Scheduler, sink Sink, onChange func()) *Form {
	return &Form{
		sched:        s,
		sink:         sink,
		onChange:     onChange,
		sendDelay:    DefaultSendDelay,
		successDelay: DefaultSuccessDelay,
		errors:       Errors{},
	}
}

// SetDelays overrides the simulated send and success display times.
// Non-positive values keep the current setting.
func (f *Form) SetDelays(send, success time.Duration) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if send > 0 {
		f.sendDelay = send
	}
	if success > 0 {
		f.successDelay = success
	}
}

// Input records a keystroke's new value and clears that field's error
func (f *Form) Input(field, value string) {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.Set(field, value)
	delete(f.errors, field)
}

// Blur validates a single field. It reports whether it passed.
func (f *Form) Blur(field string) bool {
	if f == nil {
		return true
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if msg := ValidateField(field, f.values.Get(field)); msg != "" {
		f.errors[field] = msg
		return false
	}
	delete(f.errors, field)
	return true
}

// Submit validates every field and, when they pass, starts the simulated
// send. It returns the validation errors. Submitting while a send is in
// flight is ignored.
func (f *Form) Submit() Errors {
	if f == nil {
		return Errors{}
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == Sending {
		return Errors{}
	}

	f.success = false
	f.errors = Validate(f.values)
	if !f.errors.Valid() {
		f.phase = Editing
		return copyErrors(f.errors)
	}

	f.cancelLocked()
	f.phase = Sending
	gen := f.gen
	submitted := f.values.Trimmed()
	f.timer = f.sched.AfterFunc(f.sendDelay, func() { f.finishSend(gen, submitted) })
	return Errors{}
}

func (f *Form) finishSend(gen uint64, submitted Values) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.phase = Sent
	f.success = true
	f.values = Values{}
	f.errors = Errors{}
	f.timer = f.sched.AfterFunc(f.successDelay, func() { f.hideSuccess(gen) })
	sink, onChange := f.sink, f.onChange
	f.mu.Unlock()

	if sink != nil {
		sink.Accept(submitted)
	}
	if onChange != nil {
		onChange()
	}
}

func (f *Form) hideSuccess(gen uint64) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	f.timer = nil
	f.success = false
	f.phase = Editing
	onChange := f.onChange
	f.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// State returns the visible form state
func (f *Form) State() State {
	if f == nil {
		return State{Phase: Editing.String(), Errors: Errors{}, SubmitLabel: SubmitLabel}
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	st := State{
		Phase:        f.phase.String(),
		Values:       f.values,
		Errors:       copyErrors(f.errors),
		SubmitLabel:  SubmitLabel,
		SuccessShown: f.success,
	}
	if f.phase == Sending {
		st.SubmitDisabled = true
		st.SubmitLabel = SendingLabel
	}
	return st
}

// Stop cancels any pending step of the submission
func (f *Form) Stop() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelLocked()
}

func (f *Form) cancelLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}

func copyErrors(e Errors) Errors {
	out := make(Errors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}
