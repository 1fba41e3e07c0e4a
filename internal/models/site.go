package models

// Section is a page section and its vertical extent in CSS pixels
type Section struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Top    float64 `json:"top" yaml:"top"`
	Height float64 `json:"height" yaml:"height"`
}

// ImageSlot is a lazily loaded image and where it sits on the page
type ImageSlot struct {
	ID     string  `json:"id" yaml:"id"`
	Src    string  `json:"src" yaml:"src"`
	Top    float64 `json:"top" yaml:"top"`
	Height float64 `json:"height" yaml:"height"`
}

// SiteLayout describes the page sections in document order
type SiteLayout struct {
	HeaderHeight float64     `json:"header_height" yaml:"header_height"`
	Sections     []Section   `json:"sections" yaml:"sections"`
	Images       []ImageSlot `json:"images,omitempty" yaml:"images,omitempty"`
}

// ActiveSectionResponse is what we send for a scroll position lookup
type ActiveSectionResponse struct {
	ScrollY       float64 `json:"scroll_y"`
	Line          float64 `json:"line"`
	ActiveSection string  `json:"active_section"`
}
