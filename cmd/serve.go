package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dotcommander/fitcheck/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scorecard evaluation over HTTP",
	Long: `The serve command starts a stateless HTTP service.

Endpoints:
  POST /v1/scorecards           {"garment": {...}, "size": "M", "user": {...}}
  POST /v1/scorecards/all       {"garment": {...}, "user": {...}}
  GET  /v1/measurements         measurement explanations and categories
  GET  /v1/measurements/{key}
  GET  /healthz
  GET  /metrics                 Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runServe(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(ctx context.Context) error {
	rt, err := setup(os.Stdout)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	srv, err := server.New(server.Options{
		Config:    rt.cfg.Server,
		Evaluator: rt.evaluator(),
		Logger:    rt.logger,
	})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx)
}
