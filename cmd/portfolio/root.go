package main

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Alex Morgan Interiors portfolio site",
	Long: `Serves the interior design portfolio: the project grid with its
category filter, the lightbox, the testimonial slider, the contact form,
and live view sessions that keep the page widgets in sync over a
websocket.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
}
