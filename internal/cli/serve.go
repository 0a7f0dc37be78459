package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"hwmedic/internal/config"
	"hwmedic/internal/flags"
	"hwmedic/internal/hostcmd"
	"hwmedic/internal/probe"
	"hwmedic/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP shell over the diagnostic engine",
	Long: `Run an HTTP server exposing the diagnostic engine to a web client.

Endpoints:
	POST /api/runs     start a run (409 while one is in progress)
	GET  /api/status   live run state: current probe, progress, complete
	GET  /api/results  results with analysis and summary (409 until complete)
	POST /api/export   write report artifacts for the completed run

When started with --config, the file is watched and threshold changes apply
to subsequent runs without a restart.

Examples:
	hwmedic serve
	hwmedic serve --config hwmedic.yaml --listen 0.0.0.0:8686
`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runServe())
	},
}

func runServe() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 3
	}

	addr := serveListen
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler := server.New(cfg, probe.List(), hostcmd.System{})

	if cfgPath != "" {
		go func() {
			if err := config.Watch(ctx, cfgPath, handler.SetConfig); err != nil {
				slog.Error("config watch stopped", "err", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("serving diagnostics API", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 3
		}
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
			return 3
		}
	}
	return 0
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, flags.FlagListen, "", "Listen address (default: from config, 127.0.0.1:8686)")
}
