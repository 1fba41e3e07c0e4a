package models

// PortfolioItem represents a project shown in the portfolio grid
type PortfolioItem struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Image       string   `json:"image" yaml:"image"`
	Thumbnail   string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Year        int      `json:"year,omitempty" yaml:"year,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Featured    bool     `json:"featured" yaml:"featured"`
}

// Portfolio wraps the array of portfolio items
type Portfolio struct {
	Categories []Category      `json:"categories" yaml:"categories"`
	Items      []PortfolioItem `json:"items" yaml:"items"`
}

// Category is a filter button
type Category struct {
	Tag   string `json:"tag" yaml:"tag"`
	Label string `json:"label" yaml:"label"`
}

// Lightbox is the payload the overlay binds to
type Lightbox struct {
	ID              string `json:"id"`
	Src             string `json:"src"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
}
