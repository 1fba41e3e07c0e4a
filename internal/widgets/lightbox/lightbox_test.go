package lightbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"alexmorgan.design/internal/timing"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestOpenPopulatesOverlay(t *testing.T) {
	lb := New(timing.NewManual(epoch), nil, nil)

	st := lb.State()
	assert.True(t, st.Hidden)
	assert.False(t, st.Show)

	lb.Open("/img/loft.jpg", "Urban Loft", "Exposed brick and oak.")
	st = lb.State()
	assert.True(t, lb.IsOpen())
	assert.True(t, st.Show)
	assert.False(t, st.Hidden)
	assert.True(t, st.ScrollLock)
	assert.Equal(t, "/img/loft.jpg", st.Src)
	assert.Equal(t, "Urban Loft", st.Alt)
	assert.Equal(t, "Exposed brick and oak.", st.Description)
	assert.Equal(t, "lightbox-close", st.Focus)
}

func TestCloseClearsSourceAfterDelay(t *testing.T) {
	m := timing.NewManual(epoch)
	closed := 0
	lb := New(m, nil, func() { closed++ })
	lb.Open("/img/a.jpg", "A", "")

	lb.Close()
	st := lb.State()
	assert.Equal(t, "closing", st.Phase)
	assert.False(t, st.Show)
	assert.False(t, st.Hidden)
	assert.Equal(t, "/img/a.jpg", st.Src)

	m.Advance(DefaultCloseDelay)
	st = lb.State()
	assert.True(t, st.Hidden)
	assert.Empty(t, st.Src)
	assert.Equal(t, 1, closed)
}

func TestReopenDuringCloseKeepsNewImage(t *testing.T) {
	m := timing.NewManual(epoch)
	lb := New(m, nil, nil)
	lb.Open("/img/a.jpg", "A", "")
	lb.Close()
	m.Advance(100 * time.Millisecond)

	lb.Open("/img/b.jpg", "B", "")
	m.Advance(time.Second)

	st := lb.State()
	assert.True(t, st.Show)
	assert.Equal(t, "/img/b.jpg", st.Src)
}

func TestEscapeClosesOnlyWhenOpen(t *testing.T) {
	m := timing.NewManual(epoch)
	lb := New(m, nil, nil)

	assert.False(t, lb.Key("Escape", false))
	assert.Equal(t, 0, m.Pending())

	lb.Open("/img/a.jpg", "A", "")
	assert.True(t, lb.Key("Escape", false))
	assert.False(t, lb.IsOpen())
	assert.Equal(t, 1, m.Pending())
}

func TestTabIsTrapped(t *testing.T) {
	lb := New(timing.NewManual(epoch), []string{"lightbox-close", "lightbox-prev", "lightbox-next"}, nil)
	lb.Open("/img/a.jpg", "A", "")

	var order []string
	for i := 0; i < 4; i++ {
		assert.True(t, lb.Key("Tab", false))
		order = append(order, lb.State().Focus)
	}
	assert.Equal(t, []string{"lightbox-prev", "lightbox-next", "lightbox-close", "lightbox-prev"}, order)

	lb.Key("Tab", true)
	lb.Key("Tab", true)
	assert.Equal(t, "lightbox-next", lb.State().Focus)
}

func TestArrowsSwallowedWhileOpen(t *testing.T) {
	lb := New(timing.NewManual(epoch), nil, nil)
	assert.False(t, lb.Key("ArrowLeft", false))

	lb.Open("/img/a.jpg", "A", "")
	assert.True(t, lb.Key("ArrowLeft", false))
	assert.True(t, lb.Key("ArrowRight", false))
	assert.False(t, lb.Key("Enter", false))
}

func TestNilLightbox(t *testing.T) {
	var lb *Lightbox
	assert.NotPanics(t, func() {
		lb.Open("x", "y", "z")
		lb.Close()
		assert.False(t, lb.Key("Escape", false))
		assert.True(t, lb.State().Hidden)
	})
}
