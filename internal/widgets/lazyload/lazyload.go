// Package lazyload reveals images as they scroll into view.
package lazyload

import "sync"

// DefaultRootMargin grows the viewport so images load slightly early
const DefaultRootMargin = 50.0

// Image is an observed image and its vertical extent
type Image struct {
	ID     string  `json:"id"`
	Src    string  `json:"src"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Intersects reports whether the image overlaps [top-margin, bottom+margin]
func (img Image) Intersects(top, bottom, margin float64) bool {
	return img.Top+img.Height >= top-margin && img.Top <= bottom+margin
}

// Loader tracks which images have been revealed
type Loader struct {
	mu       sync.Mutex
	images   []Image
	margin   float64
	loaded   map[string]bool
	observed map[string]bool
}

// New starts observing images. When supported is false the page has no
// intersection observer and every image is shown at once.
func New(images []Image, margin float64, supported bool) *Loader {
	l := &Loader{
		images:   append([]Image(nil), images...),
		margin:   margin,
		loaded:   make(map[string]bool, len(images)),
		observed: make(map[string]bool, len(images)),
	}
	for _, img := range images {
		if supported {
			l.observed[img.ID] = true
		} else {
			l.loaded[img.ID] = true
		}
	}
	return l
}

// Observe checks the viewport [scrollY, scrollY+height] and marks every
// intersecting image loaded. Loaded images are no longer observed. It
// returns the ids newly loaded.
func (l *Loader) Observe(scrollY, height float64) []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	var fresh []string
	for _, img := range l.images {
		if !l.observed[img.ID] {
			continue
		}
		if img.Intersects(scrollY, scrollY+height, l.margin) {
			delete(l.observed, img.ID)
			l.loaded[img.ID] = true
			fresh = append(fresh, img.ID)
		}
	}
	return fresh
}

// Loaded returns the loaded flag for every image in document order
func (l *Loader) Loaded() map[string]bool {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]bool, len(l.images))
	for _, img := range l.images {
		out[img.ID] = l.loaded[img.ID]
	}
	return out
}

// Pending returns how many images are still observed
func (l *Loader) Pending() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.observed)
}
