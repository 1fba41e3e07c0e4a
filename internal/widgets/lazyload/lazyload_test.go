package lazyload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testImages = []Image{
	{ID: "hero", Top: 0, Height: 600},
	{ID: "loft", Top: 1200, Height: 300},
	{ID: "villa", Top: 2000, Height: 300},
}

func TestObserveLoadsIntersecting(t *testing.T) {
	l := New(testImages, DefaultRootMargin, true)
	assert.Equal(t, 3, l.Pending())

	assert.Equal(t, []string{"hero"}, l.Observe(0, 900))
	assert.Equal(t, map[string]bool{"hero": true, "loft": false, "villa": false}, l.Loaded())

	assert.Equal(t, []string{"loft"}, l.Observe(200, 960), "margin pulls loft in early")
	assert.Empty(t, l.Observe(0, 900), "loaded images are unobserved")
	assert.Equal(t, 1, l.Pending())
}

func TestUnsupportedShowsAll(t *testing.T) {
	l := New(testImages, DefaultRootMargin, false)
	assert.Equal(t, 0, l.Pending())
	assert.Equal(t, map[string]bool{"hero": true, "loft": true, "villa": true}, l.Loaded())
	assert.Empty(t, l.Observe(0, 10000))
}

func TestNilLoader(t *testing.T) {
	var l *Loader
	assert.Nil(t, l.Observe(0, 100))
	assert.Equal(t, 0, l.Pending())
}
