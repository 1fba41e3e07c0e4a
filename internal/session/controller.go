package session

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alexmorgan.design/internal/timing"
	"alexmorgan.design/internal/widgets/contactform"
	"alexmorgan.design/internal/widgets/filter"
	"alexmorgan.design/internal/widgets/lazyload"
	"alexmorgan.design/internal/widgets/lightbox"
	"alexmorgan.design/internal/widgets/navigation"
	"alexmorgan.design/internal/widgets/slider"
)

// Controller is the view state of one page. It owns one instance of each
// widget whose anchors exist.
type Controller struct {
	id     string
	page   Page
	opts   Options
	logger *zap.Logger

	menu     *navigation.Menu
	tracker  *navigation.Tracker
	filter   *filter.Filter
	lightbox *lightbox.Lightbox
	slider   *slider.Slider
	form     *contactform.Form
	images   *lazyload.Loader

	entries map[string]Entry

	mu       sync.Mutex
	scrollY  float64
	viewport float64
	closed   bool
}

// New wires the widgets for page on scheduler s
func New(page Page, s timing.Scheduler, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Controller{
		id:       uuid.NewString(),
		page:     page,
		opts:     opts,
		logger:   logger,
		entries:  make(map[string]Entry, len(page.Entries)),
		viewport: page.ViewportHeight,
	}

	if page.HasSidebar {
		c.menu = navigation.NewMenu(s, page.Width, sectionIDs(page.Sections), c.notify)
	}
	if len(page.Sections) > 0 {
		c.tracker = navigation.NewTracker(s, page.Sections, opts.Probe, page.ViewportHeight, c.notify)
	}
	if len(page.Entries) > 0 {
		items := make([]filter.Item, len(page.Entries))
		for i, e := range page.Entries {
			items[i] = filter.Item{ID: e.ID, Category: e.Category}
			c.entries[e.ID] = e
		}
		c.filter = filter.New(items, s, opts.FilterTimings, c.notify)
	}
	if page.HasLightbox {
		c.lightbox = lightbox.New(s, nil, c.notify)
	}
	if page.Slides > 0 {
		c.slider = slider.New(page.Slides, s, slider.Options{
			Interval:       opts.SliderInterval,
			SettleDelay:    opts.SliderSettleDelay,
			SwipeThreshold: opts.SwipeThreshold,
			OnChange:       func(slider.State) { c.notify() },
		})
	}
	if page.HasForm {
		c.form = contactform.New(s, opts.Sink, c.notify)
		c.form.SetDelays(opts.SendDelay, opts.SuccessDelay)
	}
	if len(page.Images) > 0 {
		c.images = lazyload.New(page.Images, opts.LazyRootMargin, opts.Observer)
	}
	return c
}

// ID identifies the session
func (c *Controller) ID() string {
	return c.id
}

// Start runs the page-load sequence: first slide and autoplay, the
// staggered grid reveal, and the first lazy-load pass.
func (c *Controller) Start() Snapshot {
	c.slider.Show(0)
	c.slider.StartAutoplay()
	c.filter.Reveal()
	c.observeImages()

	c.logger.Debug("view session started",
		zap.String("session", c.id),
		zap.Int("entries", len(c.page.Entries)),
		zap.Int("slides", c.page.Slides))
	return c.Snapshot()
}

// Close stops every timer. Events after Close are ignored.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.slider.Stop()
	c.filter.Stop()
	c.lightbox.Stop()
	c.form.Stop()
	c.menu.Stop()
	c.tracker.Stop()
	c.logger.Debug("view session closed", zap.String("session", c.id))
}

func (c *Controller) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller) notify() {
	if c.opts.OnChange == nil || c.isClosed() {
		return
	}
	c.opts.OnChange(c.Snapshot())
}

func (c *Controller) observeImages() {
	c.mu.Lock()
	y, h := c.scrollY, c.viewport
	c.mu.Unlock()

	if loaded := c.images.Observe(y, h); len(loaded) > 0 {
		c.logger.Debug("images revealed", zap.String("session", c.id), zap.Strings("ids", loaded))
	}
}

func (c *Controller) scrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	c.mu.Lock()
	c.scrollY = y
	c.mu.Unlock()

	c.tracker.Scroll(y)
	c.observeImages()
}

func (c *Controller) openEntry(id string) bool {
	e, ok := c.entries[id]
	if !ok || c.lightbox == nil {
		return false
	}
	c.lightbox.Open(e.Image, e.Title, e.Description)
	return true
}

func (c *Controller) sectionTop(id string) (float64, bool) {
	for _, s := range c.sections() {
		if s.ID == id {
			return s.Top, true
		}
	}
	return 0, false
}

func (c *Controller) sections() []navigation.Section {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Sections
}

// SetSections replaces the section layout after a content change. The
// sidebar links follow it and the active section is recomputed on the
// next frame. A page that started without sections stays without a
// tracker.
func (c *Controller) SetSections(sections []navigation.Section) {
	if c.isClosed() {
		return
	}
	sections = append([]navigation.Section(nil), sections...)
	c.mu.Lock()
	c.page.Sections = sections
	c.mu.Unlock()

	c.menu.SetLinks(sectionIDs(sections))
	c.tracker.SetSections(sections)
	c.logger.Debug("sections replaced", zap.String("session", c.id), zap.Int("sections", len(sections)))
}

func sectionIDs(sections []navigation.Section) []string {
	ids := make([]string, len(sections))
	for i, sec := range sections {
		ids[i] = sec.ID
	}
	return ids
}
