// Package session binds page events to the widget set of one open page.
package session

import (
	"time"

	"go.uber.org/zap"

	"alexmorgan.design/internal/widgets/contactform"
	"alexmorgan.design/internal/widgets/filter"
	"alexmorgan.design/internal/widgets/lazyload"
	"alexmorgan.design/internal/widgets/navigation"
)

// Entry is a portfolio grid item with what the lightbox shows for it
type Entry struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Page describes the anchors present on a page. A zero count or nil
// slice means the anchor is missing and its widget stays disabled.
type Page struct {
	Entries        []Entry              `json:"entries"`
	Slides         int                  `json:"slides"`
	Sections       []navigation.Section `json:"sections"`
	Images         []lazyload.Image     `json:"images"`
	HasSidebar     bool                 `json:"has_sidebar"`
	HasLightbox    bool                 `json:"has_lightbox"`
	HasForm        bool                 `json:"has_form"`
	Width          int                  `json:"width"`
	ViewportHeight float64              `json:"viewport_height"`
}

// Options configures the widgets of a Controller
type Options struct {
	SliderInterval    time.Duration
	SliderSettleDelay time.Duration
	SwipeThreshold    float64
	FilterTimings     filter.Timings
	SendDelay         time.Duration
	SuccessDelay      time.Duration
	Probe             navigation.Probe
	LazyRootMargin    float64
	// Observer reports whether the page supports intersection observers
	Observer bool
	Sink     contactform.Sink
	Logger   *zap.Logger
	// OnChange receives a snapshot after every timer-driven change
	OnChange func(Snapshot)
}
