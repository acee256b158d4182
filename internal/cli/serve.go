package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/quizbank-lambda/internal/config"
	"github.com/saulo-duarte/quizbank-lambda/internal/container"
)

// NewServeCmd starts the API as a plain HTTP server.
func NewServeCmd(port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *port)
		},
	}
}

func runServer(ctx context.Context, portFlag string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	c, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      c.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	return serve(ctx, server, stop)
}

// serve runs server until stop fires, ctx is canceled or the listener fails.
// A listener failure is returned as is.
func serve(ctx context.Context, server *http.Server, stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		config.Log.WithField("addr", server.Addr).Info("Starting quizbank server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		config.Log.WithError(err).Error("Server stopped unexpectedly")
		return err
	case <-stop:
		config.Log.Info("Shutting down server")
	case <-ctx.Done():
		config.Log.Info("Context canceled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
