package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/codes"
)

var (
	convertOutput  string
	convertProfile string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite an invoice, optionally under another profile",
	Long: `Parse an invoice and write it back out as version 2.1 XML.

With --profile the document is rewritten under the given guideline URN;
sections the target profile does not carry are dropped.

Examples:
  facturx convert invoice.xml -o normalized.xml
  facturx convert invoice.pdf --profile urn:factur-x.eu:1p0:minimum -o minimum.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVar(&convertProfile, "profile", "", "Target guideline URN")
}

func runConvert(cmd *cobra.Command, args []string) error {
	d, _, err := loadInvoiceFile(args[0])
	if err != nil {
		return err
	}

	profile := codes.ProfileUnknown
	if convertProfile != "" {
		profile = codes.ProfileFromString(convertProfile)
		if profile == codes.ProfileUnknown {
			return fmt.Errorf("unknown target profile %q", convertProfile)
		}
		log.Debug().Stringer("from", d.Profile).Stringer("to", profile).Msg("switching profile")
	}

	out := os.Stdout
	if convertOutput != "" {
		f, err := os.Create(convertOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return cii.SaveProfile(d, out, cii.Version21, profile)
}
