// Package navigation covers the collapsible sidebar menu and the
// scroll-position tracker that highlights the active section link.
package navigation

import (
	"sync"
	"time"

	"alexmorgan.design/internal/timing"
	"alexmorgan.design/internal/widgets/focus"
)

const (
	// Breakpoint is the widest viewport that uses the collapsible menu
	Breakpoint = 768
	// ResizeDebounce delays the resize check until resizing stops
	ResizeDebounce = 250 * time.Millisecond
)

// MenuState is the class state of the menu, its toggle, and the overlay.
// Focus is the sidebar link holding keyboard focus while the menu is open.
type MenuState struct {
	Open       bool   `json:"open"`
	Overlay    bool   `json:"overlay"`
	ScrollLock bool   `json:"scroll_lock"`
	Focus      string `json:"focus,omitempty"`
}

// Menu is the sidebar toggle and its focus trap
type Menu struct {
	mu       sync.Mutex
	open     bool
	width    int
	links    []string
	focus    int
	resize   *timing.Debouncer
	onChange func()
}

// NewMenu creates a closed menu for a viewport of the given width. links
// are the sidebar's focusable link ids in tab order. Resize events are
// debounced on s.
func NewMenu(s timing.Scheduler, width int, links []string, onChange func()) *Menu {
	m := &Menu{
		width:    width,
		links:    append([]string(nil), links...),
		focus:    -1,
		onChange: onChange,
	}
	m.resize = timing.NewDebouncer(s, ResizeDebounce, false, m.applyResize)
	return m
}

// setOpenLocked opens or closes the menu. Opening focuses the first
// link. Caller holds mu.
func (m *Menu) setOpenLocked(open bool) {
	m.open = open
	m.focus = -1
	if open && len(m.links) > 0 {
		m.focus = 0
	}
}

// SetLinks replaces the focusable links. An open menu moves focus back
// to the first link.
func (m *Menu) SetLinks(links []string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links = append([]string(nil), links...)
	m.setOpenLocked(m.open)
}

// Toggle flips the menu
func (m *Menu) Toggle() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setOpenLocked(!m.open)
}

// Close closes the menu
func (m *Menu) Close() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setOpenLocked(false)
}

// ClickOutside handles a document click landing outside the menu and
// its toggle. Only mobile layouts close.
func (m *Menu) ClickOutside() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.width <= Breakpoint {
		m.setOpenLocked(false)
	}
}

// ClickLink handles a menu link click. The menu closes on mobile so the
// target section is visible.
func (m *Menu) ClickLink() {
	m.ClickOutside()
}

// Key handles Escape and the Tab trap of the open menu. Tab and
// Shift+Tab cycle through the links, wrapping at both ends. It reports
// whether the menu consumed the key.
func (m *Menu) Key(key string, shift bool) bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.open {
		return false
	}

	switch key {
	case "Escape":
		m.setOpenLocked(false)
		return true
	case "Tab":
		if len(m.links) == 0 {
			return false
		}
		m.focus = focus.Next(m.focus, len(m.links), shift)
		return true
	}
	return false
}

// Resize records a new viewport width; the breakpoint check runs once
// resizing settles.
func (m *Menu) Resize(width int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.width = width
	m.mu.Unlock()
	m.resize.Call()
}

func (m *Menu) applyResize() {
	m.mu.Lock()
	changed := m.open && m.width > Breakpoint
	if changed {
		m.setOpenLocked(false)
	}
	onChange := m.onChange
	m.mu.Unlock()

	if changed && onChange != nil {
		onChange()
	}
}

// Width returns the last known viewport width
func (m *Menu) Width() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.width
}

// State returns the menu's class state
func (m *Menu) State() MenuState {
	if m == nil {
		return MenuState{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	st := MenuState{Open: m.open, Overlay: m.open, ScrollLock: m.open}
	if m.open && m.focus >= 0 {
		st.Focus = m.links[m.focus]
	}
	return st
}

// Stop drops a pending resize check
func (m *Menu) Stop() {
	if m == nil {
		return
	}
	m.resize.Stop()
}
