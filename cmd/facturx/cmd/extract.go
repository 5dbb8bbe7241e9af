package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/pdf"
)

var extractOutput string

var extractCmd = &cobra.Command{
	Use:   "extract <file.pdf>",
	Short: "Pull the embedded invoice XML out of a hybrid PDF",
	Long: `Extract the invoice attachment from a hybrid PDF.

The attachment is located by its well-known name (factur-x.xml,
zugferd-invoice.xml or xrechnung.xml).

Examples:
  facturx extract invoice.pdf
  facturx extract invoice.pdf -o factur-x.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	xmlData, name, err := pdf.ExtractXML(data)
	if err != nil {
		return err
	}
	log.Debug().Str("attachment", name).Int("bytes", len(xmlData)).Msg("extracted")

	if extractOutput == "" {
		_, err = os.Stdout.Write(xmlData)
		return err
	}
	if err := os.WriteFile(extractOutput, xmlData, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d bytes) to %s\n", name, len(xmlData), extractOutput)
	return nil
}
