package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alexmorgan.design/internal/timing"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var testItems = []Item{
	{ID: "loft", Category: "residential"},
	{ID: "office", Category: "commercial"},
	{ID: "villa", Category: "residential"},
	{ID: "cafe", Category: "hospitality"},
	{ID: "studio", Category: "commercial"},
}

func ids(states []ItemState, pred func(ItemState) bool) []string {
	var out []string
	for _, s := range states {
		if pred(s) {
			out = append(out, s.ID)
		}
	}
	return out
}

func TestPartition(t *testing.T) {
	shown, hidden := Partition(testItems, All)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, shown)
	assert.Empty(t, hidden)

	shown, hidden = Partition(testItems, "commercial")
	assert.Equal(t, []int{1, 4}, shown)
	assert.Equal(t, []int{0, 2, 3}, hidden)

	shown, _ = Partition(testItems, "nonexistent")
	assert.Empty(t, shown)
}

func TestFilterAllShowsEverything(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)

	f.Apply("residential")
	m.Advance(time.Second)
	f.Apply(All)
	m.Advance(time.Second)

	assert.Equal(t, []string{"loft", "office", "villa", "cafe", "studio"}, f.Visible())
	states := f.Items()
	assert.Len(t, ids(states, func(s ItemState) bool { return s.AnimateIn && !s.Hidden }), len(testItems))
}

func TestFilterTagSelectsMatchingSubset(t *testing.T) {
	for _, tag := range []string{"residential", "commercial", "hospitality"} {
		m := timing.NewManual(epoch)
		f := New(testItems, m, Timings{}, nil)
		f.Apply(tag)
		m.Advance(time.Second)

		var want []string
		for _, item := range testItems {
			if item.Category == tag {
				want = append(want, item.ID)
			}
		}
		assert.Equal(t, want, f.Visible(), tag)
		assert.Equal(t, want, ids(f.Items(), func(s ItemState) bool { return !s.Hidden }), tag)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)

	f.Apply("commercial")
	m.Advance(time.Second)
	first := f.Items()

	f.Apply("commercial")
	m.Advance(time.Second)
	assert.Equal(t, first, f.Items())
}

func TestStaggeredReveal(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)
	f.Apply("residential")

	animated := func() []string {
		return ids(f.Items(), func(s ItemState) bool { return s.AnimateIn })
	}

	assert.Equal(t, []string{"loft"}, animated())
	assert.Equal(t, Transitioning, f.Phase())

	m.Advance(199 * time.Millisecond)
	assert.Equal(t, []string{"loft"}, animated())
	assert.Empty(t, ids(f.Items(), func(s ItemState) bool { return s.Hidden }))

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"loft", "villa"}, animated())

	m.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"office", "cafe", "studio"}, ids(f.Items(), func(s ItemState) bool { return s.Hidden }))
	assert.Equal(t, Settled, f.Phase())
}

func delays(states []ItemState) map[string]int64 {
	out := make(map[string]int64, len(states))
	for _, s := range states {
		out[s.ID] = s.DelayMS
	}
	return out
}

func TestPendingChangesCarryDelay(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)
	f.Apply("commercial")

	assert.Equal(t, map[string]int64{
		"loft":   300,
		"office": 100,
		"villa":  300,
		"cafe":   300,
		"studio": 400,
	}, delays(f.Items()))

	m.Advance(250 * time.Millisecond)
	assert.Equal(t, map[string]int64{
		"loft":   50,
		"office": 0,
		"villa":  50,
		"cafe":   50,
		"studio": 150,
	}, delays(f.Items()))

	m.Advance(50 * time.Millisecond)
	assert.Equal(t, []string{"loft", "villa", "cafe"}, ids(f.Items(), func(s ItemState) bool { return s.Hidden }))

	m.Advance(time.Second)
	for _, s := range f.Items() {
		assert.False(t, s.Pending(), s.ID)
		assert.Zero(t, s.DelayMS, s.ID)
	}
}

func TestSupersededTransitionDoesNotHideItem(t *testing.T) {
	m := timing.NewManual(epoch)
	changes := 0
	f := New(testItems, m, Timings{}, func() { changes++ })

	f.Apply("commercial")
	m.Advance(100 * time.Millisecond)
	f.Apply(All)
	m.Advance(time.Second)

	assert.Empty(t, ids(f.Items(), func(s ItemState) bool { return s.Hidden }))
	assert.Equal(t, 1, changes)
	assert.Equal(t, 0, m.Pending())
}

func TestRevealUsesInitialDelay(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)
	f.Reveal()

	m.Advance(499 * time.Millisecond)
	assert.Empty(t, ids(f.Items(), func(s ItemState) bool { return s.AnimateIn }))

	m.Advance(151 * time.Millisecond)
	assert.Equal(t, []string{"loft", "office"}, ids(f.Items(), func(s ItemState) bool { return s.AnimateIn }))
}

func TestEmptyFilter(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(nil, m, Timings{}, nil)

	assert.False(t, f.Enabled())
	f.Apply("residential")
	assert.Equal(t, "residential", f.Active())
	assert.Empty(t, f.Items())
	assert.Equal(t, 0, m.Pending())

	var nilFilter *Filter
	require.NotPanics(t, func() {
		nilFilter.Apply("x")
		nilFilter.Stop()
		assert.Equal(t, All, nilFilter.Active())
	})
}

func TestStopFreezesGrid(t *testing.T) {
	m := timing.NewManual(epoch)
	f := New(testItems, m, Timings{}, nil)
	f.Apply("hospitality")
	m.Advance(50 * time.Millisecond)
	f.Stop()

	before := f.Items()
	m.Advance(time.Second)
	assert.Equal(t, before, f.Items())
	assert.Equal(t, Settled, f.Phase())
}
