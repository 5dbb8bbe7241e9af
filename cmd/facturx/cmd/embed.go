package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/pdf"
)

var (
	embedOutput string
	embedName   string
)

var embedCmd = &cobra.Command{
	Use:   "embed <file.pdf> <file.xml>",
	Short: "Attach an invoice XML to a PDF",
	Long: `Embed an invoice XML document as an attachment of a PDF, producing a
hybrid invoice.

Examples:
  facturx embed letter.pdf factur-x.xml -o invoice.pdf
  facturx embed letter.pdf invoice.xml --name xrechnung.xml -o invoice.pdf`,
	Args: cobra.ExactArgs(2),
	RunE: runEmbed,
}

func init() {
	rootCmd.AddCommand(embedCmd)

	embedCmd.Flags().StringVarP(&embedOutput, "output", "o", "", "Output file (required)")
	embedCmd.Flags().StringVar(&embedName, "name", "factur-x.xml", "Attachment name")
	_ = embedCmd.MarkFlagRequired("output")
}

func runEmbed(cmd *cobra.Command, args []string) error {
	pdfData, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	xmlData, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}

	combined, err := pdf.EmbedXML(pdfData, xmlData, embedName)
	if err != nil {
		return err
	}

	if err := os.WriteFile(embedOutput, combined, 0o644); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%d bytes)\n", embedOutput, len(combined))
	return nil
}
