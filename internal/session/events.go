package session

import (
	"go.uber.org/zap"

	"alexmorgan.design/internal/widgets/slider"
)

// Event types
const (
	EventClick  = "click"
	EventKey    = "key"
	EventHover  = "hover"
	EventSwipe  = "swipe"
	EventScroll = "scroll"
	EventResize = "resize"
	EventInput  = "input"
	EventBlur   = "blur"
	EventSubmit = "submit"
)

// Click targets
const (
	TargetSidebarToggle = "sidebarToggle"
	TargetOverlay       = "mobileOverlay"
	TargetSidebarLink   = "sidebar__link"
	TargetOutside       = "document"
	TargetPrev          = "prevBtn"
	TargetNext          = "nextBtn"
	TargetDot           = "dot"
	TargetFilter        = "filter-btn"
	TargetItem          = "portfolio-item"
	TargetLightboxClose = "lightbox-close"
	TargetBackdrop      = "lightbox-backdrop"
	TargetScrollTop     = "scrollToTop"
	TargetSlider        = "testimonialsSlider"
)

// Event is a DOM-style event reported by the page
type Event struct {
	Type   string       `json:"type"`
	Target string       `json:"target,omitempty"`
	Value  string       `json:"value,omitempty"`
	Index  int          `json:"index,omitempty"`
	Key    string       `json:"key,omitempty"`
	Shift  bool         `json:"shift,omitempty"`
	Enter  bool         `json:"enter,omitempty"`
	Field  string       `json:"field,omitempty"`
	Start  slider.Point `json:"start"`
	End    slider.Point `json:"end"`
	Y      float64      `json:"y,omitempty"`
	Width  int          `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
}

// Dispatch applies ev to the widgets and returns the resulting snapshot.
// Events aimed at missing widgets or unknown targets change nothing.
func (c *Controller) Dispatch(ev Event) Snapshot {
	if c.isClosed() {
		return c.Snapshot()
	}

	switch ev.Type {
	case EventClick:
		c.click(ev)
	case EventKey:
		c.key(ev)
	case EventHover:
		if ev.Target == TargetSlider || ev.Target == "" {
			if ev.Enter {
				c.slider.PauseAutoplay()
			} else {
				c.slider.ResumeAutoplay()
			}
		}
	case EventSwipe:
		c.slider.Swipe(ev.Start, ev.End)
	case EventScroll:
		c.scrollTo(ev.Y)
	case EventResize:
		c.resize(ev)
	case EventInput:
		c.form.Input(ev.Field, ev.Value)
	case EventBlur:
		c.form.Blur(ev.Field)
	case EventSubmit:
		c.form.Submit()
	default:
		c.logger.Debug("unknown event", zap.String("session", c.id), zap.String("type", ev.Type))
	}
	return c.Snapshot()
}

func (c *Controller) click(ev Event) {
	switch ev.Target {
	case TargetSidebarToggle:
		c.menu.Toggle()
	case TargetOverlay:
		c.menu.Close()
	case TargetOutside:
		c.menu.ClickOutside()
	case TargetSidebarLink:
		c.menu.ClickLink()
		if top, ok := c.sectionTop(ev.Value); ok {
			c.scrollTo(top)
		}
	case TargetScrollTop:
		c.scrollTo(0)
	case TargetPrev:
		c.slider.NavigatePrevious()
	case TargetNext:
		c.slider.NavigateNext()
	case TargetDot:
		c.slider.NavigateTo(ev.Index)
	case TargetFilter:
		c.filter.Apply(ev.Value)
	case TargetItem:
		c.openEntry(ev.Value)
	case TargetLightboxClose, TargetBackdrop:
		c.lightbox.Close()
	}
}

// key routes a key press: the open lightbox takes it first, then the
// open menu's Escape and Tab trap, then the slider's arrow navigation.
func (c *Controller) key(ev Event) {
	if c.lightbox.Key(ev.Key, ev.Shift) {
		return
	}
	if ev.Key == "Enter" && ev.Target == TargetItem {
		c.openEntry(ev.Value)
		return
	}
	if c.menu.Key(ev.Key, ev.Shift) {
		return
	}
	c.slider.Key(ev.Key)
}

func (c *Controller) resize(ev Event) {
	if ev.Width > 0 {
		c.menu.Resize(ev.Width)
	}
	if ev.Height > 0 {
		c.mu.Lock()
		c.viewport = ev.Height
		c.mu.Unlock()
		c.tracker.SetViewport(ev.Height)
		c.observeImages()
	}
}
