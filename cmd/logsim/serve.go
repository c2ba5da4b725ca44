// cmd/logsim/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/logsim/internal/handler"
	"github.com/dangerclosesec/logsim/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the check API over HTTP",
	Long:  `Start an HTTP server that checks posted definitions and, when a database is configured, serves the run history.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(os.Stdout)
		if err != nil {
			return err
		}

		repo, err := openRepository(cfg, false)
		if err != nil {
			return err
		}
		if repo == nil {
			logger.Warn("database disabled, run history will not be recorded")
		}

		checkService := service.NewCheckService(repo, logger, cfg.Server.MaxSourceBytes)
		checkHandler := handler.NewCheckHandler(checkService, cfg.Server.MaxSourceBytes*2)

		// Create server
		srv := &http.Server{
			Addr:              ":" + cfg.Server.Port,
			Handler:           handler.NewRouter(checkHandler, logger, 30*time.Second),
			ReadTimeout:       cfg.Server.ReadTimeout.Duration,
			WriteTimeout:      cfg.Server.WriteTimeout.Duration,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Server error channel
		serverErrors := make(chan error, 1)

		// Start server
		go func() {
			logger.Info("server starting", "port", cfg.Server.Port)
			serverErrors <- srv.ListenAndServe()
		}()

		// Shutdown channel
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Wait for shutdown or error
		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutdown started", "signal", sig)

			// Give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				srv.Close()
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}

		return nil
	},
}
