package services

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/widgets/filter"
)

// PortfolioService handles portfolio-related operations
type PortfolioService struct {
	content *ContentStore
	md      goldmark.Markdown
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(content *ContentStore) *PortfolioService {
	return &PortfolioService{content: content, md: goldmark.New()}
}

// GetAll returns all portfolio items in grid order
func (s *PortfolioService) GetAll() []models.PortfolioItem {
	return s.content.Portfolio().Items
}

// GetByID returns a specific item by ID
func (s *PortfolioService) GetByID(id string) (*models.PortfolioItem, error) {
	items := s.content.Portfolio().Items
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("portfolio item %s: %w", id, ErrNotFound)
}

// Categories returns the filter buttons, "all" first
func (s *PortfolioService) Categories() []models.Category {
	configured := s.content.Portfolio().Categories
	out := []models.Category{{Tag: filter.All, Label: "All"}}
	for _, c := range configured {
		if c.Tag != filter.All {
			out = append(out, c)
		}
	}
	return out
}

// Filter returns the items the tag selects, in grid order
func (s *PortfolioService) Filter(tag string) []models.PortfolioItem {
	items := s.content.Portfolio().Items
	out := make([]models.PortfolioItem, 0, len(items))
	for _, item := range items {
		if filter.Match(tag, item.Category) {
			out = append(out, item)
		}
	}
	return out
}

// Lightbox returns the overlay payload for an item with its description
// rendered from markdown
func (s *PortfolioService) Lightbox(id string) (*models.Lightbox, error) {
	item, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.md.Convert([]byte(item.Description), &buf); err != nil {
		return nil, fmt.Errorf("failed to render description for %s: %w", id, err)
	}

	return &models.Lightbox{
		ID:              item.ID,
		Src:             item.Image,
		Title:           item.Title,
		Description:     item.Description,
		DescriptionHTML: buf.String(),
	}, nil
}
