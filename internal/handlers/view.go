package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"alexmorgan.design/internal/config"
	"alexmorgan.design/internal/services"
	"alexmorgan.design/internal/session"
	"alexmorgan.design/internal/timing"
	"alexmorgan.design/internal/widgets/filter"
)

// Page size used when the client does not report one
const (
	DefaultWidth    = 1280
	DefaultViewport = 800
	maxDimension    = 16384
)

// viewMessage is the outgoing socket message format
type viewMessage struct {
	Type     string            `json:"type"` // "snapshot" or "error"
	Snapshot *session.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// ViewDeps holds what a view session needs. When Content is set, live
// sessions pick up section layout changes on every content reload.
type ViewDeps struct {
	Content      *services.ContentStore
	Portfolio    *services.PortfolioService
	Testimonials *services.TestimonialService
	Sections     *services.SectionService
	Contact      *services.ContactService
	Widgets      config.WidgetConfig
	// AllowedOrigins lists the browser origins that may open sessions,
	// with at most one "*" wildcard per entry
	AllowedOrigins []string
	Scheduler      timing.Scheduler
	Logger         *zap.Logger
}

// ViewHandler runs one view session per socket
type ViewHandler struct {
	deps     ViewDeps
	upgrader websocket.Upgrader
}

// NewViewHandler creates a new ViewHandler
func NewViewHandler(deps ViewDeps) *ViewHandler {
	deps.Logger = orNop(deps.Logger)
	if deps.Scheduler == nil {
		deps.Scheduler = timing.NewReal()
	}
	h := &ViewHandler{deps: deps}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// checkOrigin accepts requests without an Origin header, same-host
// origins, and the configured origins
func (h *ViewHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if u, err := url.Parse(origin); err == nil && strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range h.deps.AllowedOrigins {
		if originMatches(strings.ToLower(allowed), strings.ToLower(origin)) {
			return true
		}
	}
	h.deps.Logger.Warn("view socket origin rejected", zap.String("origin", origin))
	return false
}

// originMatches reports whether origin fits pattern, where one "*" in
// pattern stands for any run of characters
func originMatches(pattern, origin string) bool {
	if pattern == "*" {
		return true
	}
	prefix, suffix, wild := strings.Cut(pattern, "*")
	if !wild {
		return pattern == origin
	}
	return len(origin) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(origin, prefix) &&
		strings.HasSuffix(origin, suffix)
}

// viewConn serializes writes from the read loop and timer callbacks
type viewConn struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *zap.Logger
}

func (c *viewConn) send(msg viewMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.WriteJSON(msg); err != nil {
		c.logger.Debug("view socket write", zap.Error(err))
	}
}

func (c *viewConn) sendSnapshot(s session.Snapshot) {
	c.send(viewMessage{Type: "snapshot", Snapshot: &s})
}

func (c *viewConn) sendError(message string) {
	c.send(viewMessage{Type: "error", Error: message})
}

// Serve handles GET /ws/view?width=&height=
func (h *ViewHandler) Serve(w http.ResponseWriter, r *http.Request) {
	page := h.Page(
		clamp(parseIntParam(r, "width", DefaultWidth), 0, maxDimension),
		float64(clamp(parseIntParam(r, "height", DefaultViewport), 0, maxDimension)),
	)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.deps.Logger.Warn("view socket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()

	vc := &viewConn{conn: conn, logger: h.deps.Logger}
	ctrl := session.New(page, h.deps.Scheduler, h.Options(vc.sendSnapshot))
	defer ctrl.Close()

	if h.deps.Content != nil {
		cancel := h.deps.Content.OnReload(func() {
			ctrl.SetSections(h.deps.Sections.Sections())
			vc.sendSnapshot(ctrl.Snapshot())
		})
		defer cancel()
	}

	vc.sendSnapshot(ctrl.Start())

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.deps.Logger.Warn("view socket read", zap.String("session", ctrl.ID()), zap.Error(err))
			}
			return
		}

		var ev session.Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			vc.sendError("invalid event format")
			continue
		}
		if ev.Type == "" {
			vc.sendError("event type is required")
			continue
		}

		vc.sendSnapshot(ctrl.Dispatch(ev))
	}
}

// Page builds the page anchors from the site content
func (h *ViewHandler) Page(width int, viewport float64) session.Page {
	items := h.deps.Portfolio.GetAll()
	entries := make([]session.Entry, len(items))
	for i, it := range items {
		entries[i] = session.Entry{
			ID:          it.ID,
			Category:    it.Category,
			Image:       it.Image,
			Title:       it.Title,
			Description: it.Description,
		}
	}

	return session.Page{
		Entries:        entries,
		Slides:         h.deps.Testimonials.Count(),
		Sections:       h.deps.Sections.Sections(),
		Images:         h.deps.Sections.Images(),
		HasSidebar:     true,
		HasLightbox:    true,
		HasForm:        true,
		Width:          width,
		ViewportHeight: viewport,
	}
}

// Options maps the widget configuration onto session options
func (h *ViewHandler) Options(onChange func(session.Snapshot)) session.Options {
	wc := h.deps.Widgets
	opts := session.Options{
		SliderInterval:    wc.SliderInterval,
		SliderSettleDelay: wc.SliderSettleDelay,
		SwipeThreshold:    wc.SwipeThreshold,
		FilterTimings: filter.Timings{
			Stagger:   wc.FilterStagger,
			HideDelay: wc.FilterHideDelay,
		},
		SendDelay:      wc.SendDelay,
		SuccessDelay:   wc.SuccessDelay,
		Probe:          h.deps.Sections.Probe(0),
		LazyRootMargin: wc.LazyRootMargin,
		Observer:       true,
		Logger:         h.deps.Logger,
		OnChange:       onChange,
	}
	if h.deps.Contact != nil {
		opts.Sink = h.deps.Contact
	}
	return opts
}
