package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"alexmorgan.design/internal/models"
)

// ErrNotFound is returned when a requested item does not exist
var ErrNotFound = errors.New("not found")

// Content file base names under the data directory
const (
	PortfolioFile    = "portfolio"
	TestimonialsFile = "testimonials"
	SiteFile         = "site"
)

// ContentStore loads the site content from the data directory
type ContentStore struct {
	dataPath string
	logger   *zap.Logger

	mu           sync.RWMutex
	portfolio    *models.Portfolio
	testimonials *models.TestimonialList
	site         *models.SiteLayout

	subMu  sync.Mutex
	subSeq uint64
	subs   map[uint64]func()
}

// NewContentStore creates a ContentStore and loads every content file
func NewContentStore(dataPath string, logger *zap.Logger) (*ContentStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cs := &ContentStore{dataPath: dataPath, logger: logger}
	if err := cs.Reload(); err != nil {
		return nil, err
	}
	return cs, nil
}

// NewContentStoreFrom wraps already loaded content
func NewContentStoreFrom(p *models.Portfolio, t *models.TestimonialList, s *models.SiteLayout) *ContentStore {
	if p == nil {
		p = &models.Portfolio{}
	}
	if t == nil {
		t = &models.TestimonialList{}
	}
	if s == nil {
		s = &models.SiteLayout{}
	}
	return &ContentStore{logger: zap.NewNop(), portfolio: p, testimonials: t, site: s}
}

// Reload re-reads every content file. The previous content stays in
// place if any file fails.
func (cs *ContentStore) Reload() error {
	var (
		portfolio    models.Portfolio
		testimonials models.TestimonialList
		site         models.SiteLayout
	)

	if err := cs.load(PortfolioFile, &portfolio); err != nil {
		return err
	}
	if err := cs.load(TestimonialsFile, &testimonials); err != nil {
		return err
	}
	if err := cs.load(SiteFile, &site); err != nil {
		return err
	}

	cs.mu.Lock()
	cs.portfolio = &portfolio
	cs.testimonials = &testimonials
	cs.site = &site
	cs.mu.Unlock()

	cs.logger.Info("content loaded",
		zap.String("path", cs.dataPath),
		zap.Int("items", len(portfolio.Items)),
		zap.Int("testimonials", len(testimonials.Testimonials)),
		zap.Int("sections", len(site.Sections)))

	for _, fn := range cs.subscribers() {
		fn()
	}
	return nil
}

// OnReload registers fn to run after every successful Reload. The
// returned function removes it.
func (cs *ContentStore) OnReload(fn func()) (cancel func()) {
	cs.subMu.Lock()
	defer cs.subMu.Unlock()
	if cs.subs == nil {
		cs.subs = make(map[uint64]func())
	}
	cs.subSeq++
	id := cs.subSeq
	cs.subs[id] = fn
	return func() {
		cs.subMu.Lock()
		defer cs.subMu.Unlock()
		delete(cs.subs, id)
	}
}

func (cs *ContentStore) subscribers() []func() {
	cs.subMu.Lock()
	defer cs.subMu.Unlock()
	out := make([]func(), 0, len(cs.subs))
	for _, fn := range cs.subs {
		out = append(out, fn)
	}
	return out
}

// load decodes name.json, name.yaml, or name.yml, whichever exists first
func (cs *ContentStore) load(name string, v interface{}) error {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(cs.dataPath, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if ext == ".json" {
			err = json.Unmarshal(data, v)
		} else {
			err = yaml.Unmarshal(data, v)
		}
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no %s content file in %s: %w", name, cs.dataPath, ErrNotFound)
}

// Portfolio returns the portfolio content
func (cs *ContentStore) Portfolio() *models.Portfolio {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.portfolio
}

// Testimonials returns the testimonial content
func (cs *ContentStore) Testimonials() *models.TestimonialList {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.testimonials
}

// Site returns the page layout
func (cs *ContentStore) Site() *models.SiteLayout {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.site
}
