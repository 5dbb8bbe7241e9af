package cmd

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rezonia/facturx/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server exposing the codec.

The API provides endpoints for:
  - POST /api/v1/invoices/parse      - Parse XML invoice
  - POST /api/v1/invoices/parse/pdf  - Parse hybrid PDF invoice
  - POST /api/v1/invoices/convert    - Rewrite invoice, optional target profile
  - POST /api/v1/invoices/detect     - Detect version and profile
  - GET  /health                     - Health check

All flags can also be set via FACTURX_* environment variables
(e.g. FACTURX_ADDRESS=:9090).

Examples:
  facturx serve
  facturx serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("address", ":8080", "Server listen address")
	serveCmd.Flags().Bool("debug", false, "Enable debug mode")
	serveCmd.Flags().Duration("read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	v := viper.New()
	v.SetEnvPrefix("FACTURX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	config := &server.Config{
		Address:      v.GetString("address"),
		ReadTimeout:  v.GetDuration("read-timeout"),
		WriteTimeout: v.GetDuration("write-timeout"),
		Debug:        v.GetBool("debug"),
		Logger:       log,
	}

	srv := server.NewServer(config)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("shutting down server")
		os.Exit(0)
	}()

	return srv.Run()
}
