package services

import (
	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/widgets/lazyload"
	"alexmorgan.design/internal/widgets/navigation"
)

// SectionService handles page layout lookups
type SectionService struct {
	content *ContentStore
	probe   navigation.Probe
}

// NewSectionService creates a new SectionService that reads the scroll
// position through probe
func NewSectionService(content *ContentStore, probe navigation.Probe) *SectionService {
	return &SectionService{content: content, probe: probe}
}

// GetLayout returns the page layout
func (s *SectionService) GetLayout() *models.SiteLayout {
	return s.content.Site()
}

// Sections returns the layout as the scroll tracker sees it
func (s *SectionService) Sections() []navigation.Section {
	site := s.content.Site()
	out := make([]navigation.Section, len(site.Sections))
	for i, sec := range site.Sections {
		out[i] = navigation.Section{ID: sec.ID, Top: sec.Top, Height: sec.Height}
	}
	return out
}

// Probe returns the probe with the layout's header height applied when
// the request does not give one
func (s *SectionService) Probe(headerHeight float64) navigation.Probe {
	p := s.probe
	if headerHeight > 0 {
		p.HeaderHeight = headerHeight
	} else if p.ViewportFraction == 0 {
		p.HeaderHeight = s.content.Site().HeaderHeight
	}
	return p
}

// GetActiveSection returns the section under the reading line for a
// scroll offset and viewport height
func (s *SectionService) GetActiveSection(scrollY, viewportHeight, headerHeight float64) *models.ActiveSectionResponse {
	line := s.Probe(headerHeight).Line(scrollY, viewportHeight)
	return &models.ActiveSectionResponse{
		ScrollY:       scrollY,
		Line:          line,
		ActiveSection: navigation.ActiveSection(s.Sections(), line),
	}
}

// GetVisibleSections returns every section overlapping the viewport
func (s *SectionService) GetVisibleSections(scrollY, viewportHeight float64) []models.Section {
	var out []models.Section
	for _, sec := range s.content.Site().Sections {
		if sec.Top < scrollY+viewportHeight && sec.Top+sec.Height > scrollY {
			out = append(out, sec)
		}
	}
	return out
}

// Images returns the lazily loaded image slots as the loader sees them
func (s *SectionService) Images() []lazyload.Image {
	slots := s.content.Site().Images
	out := make([]lazyload.Image, len(slots))
	for i, img := range slots {
		out[i] = lazyload.Image{ID: img.ID, Src: img.Src, Top: img.Top, Height: img.Height}
	}
	return out
}
