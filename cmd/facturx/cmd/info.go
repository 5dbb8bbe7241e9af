package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/model"
	"github.com/rezonia/facturx/internal/pdf"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show a summary of invoice files",
	Long: `Display a summary of invoice files without rewriting them.

Accepts CII XML documents and hybrid PDFs; for PDFs the embedded invoice
attachment is located first.

Examples:
  facturx info invoice.xml
  facturx info *.pdf -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	for _, file := range args {
		if err := printFileInfo(file); err != nil {
			fmt.Printf("File: %s\n  Error: %v\n\n", file, err)
			continue
		}
		fmt.Println()
	}
	return nil
}

// loadInvoiceFile reads an XML or hybrid PDF invoice from disk.
func loadInvoiceFile(path string) (*model.InvoiceDescriptor, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if bytes.HasPrefix(data, []byte("%PDF")) {
		log.Debug().Str("file", path).Msg("extracting attachment from PDF")
		xmlData, _, err := pdf.ExtractXML(data)
		if err != nil {
			return nil, nil, err
		}
		data = xmlData
	}

	d, err := cii.LoadBytes(data)
	if err != nil {
		return nil, nil, err
	}
	return d, data, nil
}

func printFileInfo(path string) error {
	d, xmlData, err := loadInvoiceFile(path)
	if err != nil {
		return err
	}

	version, err := cii.DetectVersion(bytes.NewReader(xmlData))
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		out, err := json.MarshalIndent(map[string]any{
			"file":    path,
			"version": version.String(),
			"invoice": d,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("File: %s\n", path)
	fmt.Printf("  Version: %s\n", version)
	fmt.Printf("  Profile: %s\n", d.Profile)
	fmt.Printf("  Invoice: %s\n", d.InvoiceNo)
	if d.InvoiceDate != nil {
		fmt.Printf("  Date: %s\n", d.InvoiceDate.Format("2006-01-02"))
	}
	if d.Seller != nil {
		fmt.Printf("  Seller: %s\n", d.Seller.Name)
	}
	if d.Buyer != nil {
		fmt.Printf("  Buyer: %s\n", d.Buyer.Name)
	}
	fmt.Printf("  Lines: %d\n", len(d.LineItems))
	fmt.Printf("  Grand total: %s %s\n", d.GrandTotalAmount.StringFixed(2), d.Currency)
	fmt.Printf("  Due payable: %s %s\n", d.DuePayableAmount.StringFixed(2), d.Currency)
	return nil
}
