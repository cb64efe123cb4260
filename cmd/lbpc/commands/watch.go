package commands

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/lbpc/internal/directive"
	"git.home.luguber.info/inful/lbpc/internal/metrics"
	"git.home.luguber.info/inful/lbpc/internal/transpile"
	"git.home.luguber.info/inful/lbpc/internal/watch"
)

// WatchCmd implements the 'watch' command: translate once, then retranslate
// whenever the input file changes, until interrupted. A failed run is logged
// and the watcher keeps going.
type WatchCmd struct {
	Input       string `arg:"" help:"Input .lbp file"`
	Output      string `short:"o" help:"Output file path (default: input with configured extension)"`
	MetricsAddr string `name:"metrics-addr" help:"Serve Prometheus metrics on this address (e.g. :9090)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := LoadConfig(root)
	if err != nil {
		return err
	}

	outputPath := w.Output
	if outputPath == "" {
		outputPath = DeriveOutputPath(w.Input, cfg)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	recorder := metrics.Recorder(metrics.NoopRecorder{})
	var metricsServer *http.Server
	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		metricsServer = &http.Server{Addr: w.MetricsAddr, Handler: mux}
		go func() {
			slog.Info("Serving metrics", "addr", w.MetricsAddr)
			if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	translator := transpile.NewTranslator(cfg.Policy(),
		transpile.WithEventSink(directive.SlogSink{Logger: slog.Default()}),
		transpile.WithRecorder(recorder))

	watcher, err := watch.NewWatcher(w.Input, func() error {
		return translator.TranslateFile(w.Input, outputPath)
	})
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping watcher")

	if err := watcher.Stop(); err != nil {
		slog.Warn("Failed to stop watcher cleanly", "error", err)
	}
	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Failed to stop metrics server cleanly", "error", err)
		}
	}
	return nil
}
