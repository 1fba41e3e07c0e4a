package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"alexmorgan.design/internal/config"
	"alexmorgan.design/internal/models"
	"alexmorgan.design/internal/services"
)

// seedPortfolio is the starting project grid
var seedPortfolio = models.Portfolio{
	Categories: []models.Category{
		{Tag: "residential", Label: "Residential"},
		{Tag: "commercial", Label: "Commercial"},
		{Tag: "hospitality", Label: "Hospitality"},
	},
	Items: []models.PortfolioItem{
		{
			ID:          "brooklyn-loft",
			Title:       "Brooklyn Loft",
			Category:    "residential",
			Description: "An open-plan loft where **exposed brick** meets warm oak and linen. Storage is hidden in full-height joinery.",
			Image:       "/static/images/brooklyn-loft.jpg",
			Location:    "Brooklyn, NY",
			Year:        2023,
			Tags:        []string{"loft", "industrial"},
			Featured:    true,
		},
		{
			ID:          "harbor-office",
			Title:       "Harbor Office",
			Category:    "commercial",
			Description: "A creative agency floor with quiet rooms along the windows and a *gallery corridor* for client work.",
			Image:       "/static/images/harbor-office.jpg",
			Location:    "Boston, MA",
			Year:        2022,
			Tags:        []string{"workplace"},
		},
		{
			ID:          "sage-bistro",
			Title:       "Sage Bistro",
			Category:    "hospitality",
			Description: "Banquettes in sage velvet, terrazzo tables, and pendant lighting tuned for evening service.",
			Image:       "/static/images/sage-bistro.jpg",
			Location:    "Portland, OR",
			Year:        2024,
			Tags:        []string{"restaurant"},
			Featured:    true,
		},
		{
			ID:          "coastal-villa",
			Title:       "Coastal Villa",
			Category:    "residential",
			Description: "A weekend house opened to the sea with limewashed walls and a palette taken from the dunes.",
			Image:       "/static/images/coastal-villa.jpg",
			Location:    "Montauk, NY",
			Year:        2021,
			Tags:        []string{"beach", "minimal"},
		},
		{
			ID:          "atelier-boutique",
			Title:       "Atelier Boutique",
			Category:    "commercial",
			Description: "A fashion boutique built around one sculptural plaster display wall.",
			Image:       "/static/images/atelier-boutique.jpg",
			Location:    "Chicago, IL",
			Year:        2023,
			Tags:        []string{"retail"},
		},
		{
			ID:          "alder-hotel-suite",
			Title:       "Alder Hotel Suites",
			Category:    "hospitality",
			Description: "Twelve suites refitted with custom headboards, walnut millwork, and soft layered lighting.",
			Image:       "/static/images/alder-hotel.jpg",
			Location:    "Austin, TX",
			Year:        2024,
			Tags:        []string{"hotel"},
		},
	},
}

// seedTestimonials are the starting slider entries
var seedTestimonials = models.TestimonialList{
	Testimonials: []models.Testimonial{
		{ID: "jordan", Quote: "Alex turned a dark row house into the calmest place we have ever lived.", Author: "Jordan Lee", Role: "Homeowner", Rating: 5},
		{ID: "priya", Quote: "The office redesign changed how our team works. Clients notice it the moment they walk in.", Author: "Priya Shah", Role: "Founder, Northline Studio", Rating: 5},
		{ID: "marco", Quote: "On time, on budget, and our guests keep asking who designed the dining room.", Author: "Marco Ricci", Role: "Owner, Sage Bistro", Rating: 5},
	},
}

// seedSite is the starting page layout
var seedSite = models.SiteLayout{
	HeaderHeight: 80,
	Sections: []models.Section{
		{ID: "home", Title: "Home", Top: 0, Height: 900},
		{ID: "about", Title: "About", Top: 900, Height: 700},
		{ID: "services", Title: "Services", Top: 1600, Height: 800},
		{ID: "portfolio", Title: "Portfolio", Top: 2400, Height: 1400},
		{ID: "testimonials", Title: "Testimonials", Top: 3800, Height: 600},
		{ID: "contact", Title: "Contact", Top: 4400, Height: 900},
	},
	Images: []models.ImageSlot{
		{ID: "about-portrait", Src: "/static/images/alex-morgan.jpg", Top: 1000, Height: 500},
		{ID: "services-hero", Src: "/static/images/services.jpg", Top: 1700, Height: 400},
		{ID: "contact-studio", Src: "/static/images/studio.jpg", Top: 4500, Height: 420},
	},
}

var writeConfig bool

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Write seed content files",
	Long:  `Writes portfolio, testimonial, and layout seed files into the output directory, and optionally a default config file.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputDir := args[0]

		// Ensure output directory exists
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		files := []struct {
			name string
			data interface{}
		}{
			{services.PortfolioFile, seedPortfolio},
			{services.TestimonialsFile, seedTestimonials},
			{services.SiteFile, seedSite},
		}

		out := cmd.OutOrStdout()
		for _, f := range files {
			path := filepath.Join(outputDir, f.name+".json")
			if err := writeJSON(path, f.data); err != nil {
				return err
			}
			fmt.Fprintf(out, "  Created %s\n", path)
		}

		if writeConfig {
			cfg := config.Default()
			cfg.DataPath = outputDir
			if err := cfg.Save(cfgFile); err != nil {
				return err
			}
			fmt.Fprintf(out, "  Created %s\n", cfgFile)
		}

		fmt.Fprintln(out, "Done!")
		return nil
	},
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func init() {
	generateCmd.Flags().BoolVar(&writeConfig, "config-file", false, "also write a default config to the --config path")
	rootCmd.AddCommand(generateCmd)
}
