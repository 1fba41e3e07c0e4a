package session

import (
	"fmt"

	"alexmorgan.design/internal/widgets/contactform"
	"alexmorgan.design/internal/widgets/filter"
	"alexmorgan.design/internal/widgets/lightbox"
	"alexmorgan.design/internal/widgets/navigation"
	"alexmorgan.design/internal/widgets/slider"
)

// FilterState is the portfolio grid state
type FilterState struct {
	Active string             `json:"active"`
	Phase  string             `json:"phase"`
	Items  []filter.ItemState `json:"items"`
}

// Snapshot is the full view state of a page. Classes maps each anchor
// (element id, or class-index for repeated elements) to the state
// classes it should carry.
type Snapshot struct {
	Session  string                 `json:"session"`
	Menu     navigation.MenuState   `json:"menu"`
	Scroll   navigation.ScrollState `json:"scroll"`
	Filter   FilterState            `json:"filter"`
	Lightbox lightbox.State         `json:"lightbox"`
	Slider   slider.State           `json:"slider"`
	Form     contactform.State      `json:"form"`
	Images   map[string]bool        `json:"images,omitempty"`
	Classes  map[string][]string    `json:"classes"`
}

// Snapshot collects the current state of every widget
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		Session:  c.id,
		Menu:     c.menu.State(),
		Scroll:   c.tracker.State(),
		Lightbox: c.lightbox.State(),
		Slider:   c.slider.State(),
		Form:     c.form.State(),
		Images:   c.images.Loaded(),
		Filter: FilterState{
			Active: c.filter.Active(),
			Phase:  c.filter.Phase().String(),
			Items:  c.filter.Items(),
		},
	}
	snap.Classes = c.classes(snap)
	return snap
}

func (c *Controller) classes(s Snapshot) map[string][]string {
	out := make(map[string][]string)
	add := func(anchor string, on bool, class string) {
		if on {
			out[anchor] = append(out[anchor], class)
		}
	}

	if c.menu != nil {
		add("sidebar", s.Menu.Open, "open")
		add("sidebarToggle", s.Menu.Open, "open")
		add("mobileOverlay", s.Menu.Overlay, "show")
		if s.Menu.Focus != "" {
			add("sidebar__link#"+s.Menu.Focus, true, "focus")
		}
	}
	add("body", s.Menu.ScrollLock || s.Lightbox.ScrollLock, "no-scroll")

	if c.tracker != nil {
		add("header", s.Scroll.HeaderScroll, "scrolled")
		add("scrollToTop", s.Scroll.ScrollTopShow, "show")
		for _, sec := range c.sections() {
			add("sidebar__link#"+sec.ID, sec.ID == s.Scroll.ActiveSection, "active")
		}
	}

	if c.filter != nil {
		for _, tag := range c.filterTags() {
			add("filter-btn#"+tag, tag == s.Filter.Active, "active")
		}
		for _, it := range s.Filter.Items {
			out["portfolio-item#"+it.ID] = append(out["portfolio-item#"+it.ID], it.Classes()...)
		}
	}

	if c.lightbox != nil {
		add("lightbox", s.Lightbox.Show, "show")
		add("lightbox", s.Lightbox.Hidden, "hidden")
	}

	for i := range s.Slider.Slides {
		add(fmt.Sprintf("testimonial-slide#%d", i), s.Slider.Slides[i], "active")
		add(fmt.Sprintf("dot#%d", i), s.Slider.Dots[i], "active")
	}

	if c.form != nil {
		for field := range s.Form.Errors {
			add(field+"-error", true, "show")
		}
		add("formSuccess", s.Form.SuccessShown, "show")
	}

	for id, loaded := range s.Images {
		add("img#"+id, loaded, "loaded")
	}
	return out
}

// filterTags returns "all" followed by each category in first-seen order
func (c *Controller) filterTags() []string {
	tags := []string{filter.All}
	seen := map[string]bool{filter.All: true}
	for _, e := range c.page.Entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			tags = append(tags, e.Category)
		}
	}
	return tags
}
