package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/prefgrid/board"
	"github.com/danielhkuo/prefgrid/cliparse"
	"github.com/danielhkuo/prefgrid/metrics"
	"github.com/danielhkuo/prefgrid/middleware"
	"github.com/danielhkuo/prefgrid/router"
	"github.com/danielhkuo/prefgrid/storage"
)

func main() {
	var err error

	// Human-readable logs on a terminal, JSON otherwise
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, nil)
	}
	slog.SetDefault(slog.New(handler))

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Open the storage slot
	slot, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("storage open failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	m := metrics.New()
	adapter := storage.NewAdapter(slot)
	adapter.SetObserver(m)
	defer adapter.Close()
	slog.Info("Storage ready", "store", cfg.StoreType, "key", cfg.StoreKey)

	// Restore state; unreadable data falls back to defaults
	b := board.New(adapter.Load(ctx), adapter, cfg.Locale)

	// Create router
	mux := router.NewRouter(b, m)

	// Create server
	server := &http.Server{
		Handler:           middleware.Stack(m, mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server; storage is closed by the deferred adapter.Close only
	// after in-flight requests have drained
	slog.Info("Listening", "port", cfg.Port)
	if err := serve(server, ln, ctrlc, 5*time.Second); err != nil {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// serve runs srv on ln until stop fires, then shuts it down. It returns
// only once Shutdown has finished, so no handler is still running.
func serve(srv *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration) error {
	done := make(chan error, 1)
	go func() {
		<-stop
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		done <- srv.Shutdown(shutdownCtx)
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	if err := <-done; err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
