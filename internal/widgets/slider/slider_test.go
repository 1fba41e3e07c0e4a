package slider

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"alexmorgan.design/internal/timing"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSlider(count int) (*Slider, *timing.Manual) {
	m := timing.NewManual(epoch)
	return New(count, m, Options{}), m
}

func activeCount(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func TestWrap(t *testing.T) {
	tests := []struct {
		i, n, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{3, 3, 0},
		{7, 3, 1},
		{-1, 3, 2},
		{-4, 3, 2},
		{5, 0, 0},
		{5, -2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Wrap(tt.i, tt.n), "Wrap(%d, %d)", tt.i, tt.n)
	}
}

func TestShowOutOfRangeLeavesExactlyOneActive(t *testing.T) {
	for n := 1; n <= 6; n++ {
		s, _ := newTestSlider(n)
		for _, i := range []int{-13, -1, 0, n - 1, n, n + 5, 100} {
			s.Show(i)
			st := s.State()
			assert.Equal(t, 1, activeCount(st.Slides), "n=%d i=%d", n, i)
			assert.Equal(t, 1, activeCount(st.Dots), "n=%d i=%d", n, i)
			assert.True(t, st.Slides[st.Index])
			assert.True(t, st.Index >= 0 && st.Index < n)
		}
	}
}

func TestNextIsCyclic(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for start := 0; start < n; start++ {
			s, _ := newTestSlider(n)
			s.Show(start)
			for k := 0; k < n; k++ {
				s.Next()
			}
			assert.Equal(t, start, s.Index(), "n=%d start=%d", n, start)
		}
	}
}

func TestPreviousWrapsBackward(t *testing.T) {
	s, _ := newTestSlider(4)
	s.Previous()
	assert.Equal(t, 3, s.Index())
	s.Previous()
	assert.Equal(t, 2, s.Index())
}

func TestEmptySliderIsNoop(t *testing.T) {
	s, m := newTestSlider(0)

	assert.False(t, s.Enabled())
	s.Show(3)
	s.Next()
	s.Previous()
	s.StartAutoplay()
	s.PauseAutoplay()
	s.ResumeAutoplay()
	s.NavigateTo(2)
	assert.False(t, s.Swipe(Point{X: 200}, Point{X: 0}))
	assert.False(t, s.Key("ArrowRight"))

	assert.Equal(t, 0, m.Pending())
	st := s.State()
	assert.Equal(t, 0, st.Count)
	assert.Empty(t, st.Slides)

	var nilSlider *Slider
	assert.NotPanics(t, func() {
		nilSlider.Next()
		nilSlider.StartAutoplay()
		_ = nilSlider.State()
	})
}

func TestAutoplayAdvancesEveryInterval(t *testing.T) {
	var mu sync.Mutex
	var seen []int
	m := timing.NewManual(epoch)
	s := New(3, m, Options{OnChange: func(st State) {
		mu.Lock()
		seen = append(seen, st.Index)
		mu.Unlock()
	}})

	s.StartAutoplay()
	require.Equal(t, 1, m.Pending())

	m.Advance(4999 * time.Millisecond)
	assert.Equal(t, 0, s.Index())

	m.Advance(time.Millisecond)
	assert.Equal(t, 1, s.Index())

	m.Advance(10 * time.Second)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, 1, m.Pending())
}

func TestStartTwiceKeepsOneTimer(t *testing.T) {
	s, m := newTestSlider(3)

	s.StartAutoplay()
	s.StartAutoplay()
	assert.Equal(t, 1, m.Pending())

	m.Advance(DefaultInterval)
	assert.Equal(t, 1, s.Index(), "two starts must not advance twice")
}

func TestPauseAndResume(t *testing.T) {
	s, m := newTestSlider(3)
	s.StartAutoplay()

	s.PauseAutoplay()
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, Paused.String(), s.State().Phase)
	assert.True(t, s.State().Paused)

	m.Advance(time.Minute)
	assert.Equal(t, 0, s.Index())

	s.ResumeAutoplay()
	assert.Equal(t, 1, m.Pending())
	assert.False(t, s.State().Paused)

	m.Advance(DefaultInterval)
	assert.Equal(t, 1, s.Index())
}

func TestResumeWithoutPauseDoesNothing(t *testing.T) {
	s, m := newTestSlider(3)

	s.ResumeAutoplay()
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, Idle.String(), s.State().Phase)
}

func TestManualNavigationSettlesBeforeRestart(t *testing.T) {
	s, m := newTestSlider(5)
	s.StartAutoplay()
	m.Advance(4 * time.Second)

	s.NavigateNext()
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, Settling.String(), s.State().Phase)
	assert.Equal(t, 1, m.Pending())

	m.Advance(DefaultSettleDelay)
	assert.Equal(t, Playing.String(), s.State().Phase)
	assert.Equal(t, 1, m.Pending())

	m.Advance(DefaultInterval - time.Millisecond)
	assert.Equal(t, 1, s.Index())
	m.Advance(time.Millisecond)
	assert.Equal(t, 2, s.Index())
}

func TestNavigationWhileHoveredStaysPaused(t *testing.T) {
	s, m := newTestSlider(4)
	s.StartAutoplay()
	s.PauseAutoplay()

	s.NavigateTo(2)
	assert.Equal(t, 2, s.Index())
	assert.Equal(t, 0, m.Pending())

	m.Advance(time.Minute)
	assert.Equal(t, 2, s.Index())

	s.ResumeAutoplay()
	m.Advance(DefaultInterval)
	assert.Equal(t, 3, s.Index())
}

func TestRepeatedNavigationKeepsOneTimer(t *testing.T) {
	s, m := newTestSlider(4)
	s.StartAutoplay()

	for i := 0; i < 5; i++ {
		s.NavigateNext()
		m.Advance(200 * time.Millisecond)
	}
	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, 1, s.Index())
}

func TestNavigationBeforeStartDoesNotArm(t *testing.T) {
	s, m := newTestSlider(3)
	s.NavigateNext()
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, 0, m.Pending())
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       int
		changed    bool
	}{
		{"left swipe advances", Point{X: 160, Y: 100}, Point{X: 100, Y: 90}, 1, true},
		{"right swipe goes back", Point{X: 100, Y: 100}, Point{X: 160, Y: 110}, 2, true},
		{"short swipe ignored", Point{X: 130, Y: 100}, Point{X: 100, Y: 100}, 0, false},
		{"vertical scroll ignored", Point{X: 160, Y: 0}, Point{X: 100, Y: 200}, 0, false},
		{"exact threshold ignored", Point{X: 150}, Point{X: 100}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSlider(3)
			assert.Equal(t, tt.changed, s.Swipe(tt.start, tt.end))
			assert.Equal(t, tt.want, s.Index())
		})
	}
}

func TestKey(t *testing.T) {
	s, _ := newTestSlider(3)

	assert.True(t, s.Key("ArrowRight"))
	assert.Equal(t, 1, s.Index())
	assert.True(t, s.Key("ArrowLeft"))
	assert.True(t, s.Key("ArrowLeft"))
	assert.Equal(t, 2, s.Index())
	assert.False(t, s.Key("Enter"))
}

func TestStopReleasesRealTimer(t *testing.T) {
	defer goleak.VerifyNone(t)

	ticked := make(chan State, 4)
	s := New(2, timing.NewReal(), Options{
		Interval: 5 * time.Millisecond,
		OnChange: func(st State) {
			select {
			case ticked <- st:
			default:
			}
		},
	})
	s.StartAutoplay()

	select {
	case st := <-ticked:
		assert.Equal(t, 1, st.Index)
	case <-time.After(2 * time.Second):
		t.Fatal("autoplay did not tick")
	}

	s.Stop()
	assert.Equal(t, Idle.String(), s.State().Phase)
}
