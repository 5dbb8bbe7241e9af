package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "facturx",
	Short: "Read, write and convert ZUGFeRD / Factur-X invoices",
	Long: `facturx is a CLI tool for working with hybrid electronic invoices.

Supports:
  - CII XML documents (ZUGFeRD 2.1 / Factur-X 1.0, XRechnung)
  - Hybrid PDFs with an embedded invoice attachment
  - Profile conversion between MINIMUM, BASIC, EN 16931, EXTENDED and XRechnung

Examples:
  # Show a summary of an invoice
  facturx info invoice.xml

  # Pull the XML out of a hybrid PDF
  facturx extract invoice.pdf -o factur-x.xml

  # Rewrite an invoice under another profile
  facturx convert invoice.xml --profile urn:cen.eu:en16931:2017 -o out.xml`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format (text, json)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A .env next to the binary is optional; flags and real env win.
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
