package services

import "alexmorgan.design/internal/models"

// TestimonialService handles testimonial-related operations
type TestimonialService struct {
	content *ContentStore
}

// NewTestimonialService creates a new TestimonialService
func NewTestimonialService(content *ContentStore) *TestimonialService {
	return &TestimonialService{content: content}
}

// GetAll returns the testimonials in slide order
func (s *TestimonialService) GetAll() []models.Testimonial {
	return s.content.Testimonials().Testimonials
}

// Count returns the number of slides
func (s *TestimonialService) Count() int {
	return len(s.content.Testimonials().Testimonials)
}
