package models

// Testimonial is one slide of the testimonial carousel
type Testimonial struct {
	ID     string `json:"id" yaml:"id"`
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
	Role   string `json:"role,omitempty" yaml:"role,omitempty"`
	Avatar string `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Rating int    `json:"rating,omitempty" yaml:"rating,omitempty"`
}

// TestimonialList wraps the array of testimonials
type TestimonialList struct {
	Testimonials []Testimonial `json:"testimonials" yaml:"testimonials"`
}
