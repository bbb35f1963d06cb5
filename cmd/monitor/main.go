package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.etcd.io/bbolt"

	"github.com/Roma7-7-7/dtek-notifier/internal/calendar"
	"github.com/Roma7-7-7/dtek-notifier/internal/config"
	"github.com/Roma7-7-7/dtek-notifier/internal/dal"
	"github.com/Roma7-7-7/dtek-notifier/internal/dal/migrations"
	"github.com/Roma7-7-7/dtek-notifier/internal/metrics"
	"github.com/Roma7-7-7/dtek-notifier/internal/providers"
	"github.com/Roma7-7-7/dtek-notifier/internal/service"
	"github.com/Roma7-7-7/dtek-notifier/internal/telegram"
	"github.com/Roma7-7-7/dtek-notifier/pkg/clock"
)

func main() {
	once := flag.Bool("once", false, "run a single cycle and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	if err := run(ctx, conf, flag.Args(), *once, log); err != nil {
		log.Error("Monitor failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, args []string, once bool, log *slog.Logger) error {
	chatIDs, err := conf.ChatIDs(args)
	if err != nil {
		return fmt.Errorf("resolve chat ids: %w", err)
	}
	log.Info("Resolved chats", "count", len(chatIDs), "chatIDs", chatIDs)

	clk := clock.New(conf.Location)

	db, err := openDB(conf.DBPath, log)
	if err != nil {
		return err
	}
	store, err := dal.NewBoltDB(db, clk)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("create store: %w", err)
	}
	defer store.Close()

	provider, err := providers.NewDTEKProvider(conf.ShutdownsPage, conf.City, conf.Street, clk.Location(), clk)
	if err != nil {
		return fmt.Errorf("create provider: %w", err)
	}

	tg, err := telegram.NewClient(conf.TelegramToken, conf.TelegramAPIURL, log)
	if err != nil {
		return fmt.Errorf("create telegram client: %w", err)
	}

	var calendarSyncer service.CalendarSyncer
	if conf.CalendarEnabled {
		syncSvc, err := newCalendarSync(ctx, conf, clk, log)
		if err != nil {
			return err
		}
		calendarSyncer = syncSvc
	}

	var m service.Metrics = metrics.Noop{}
	if conf.MetricsAddr != "" {
		pm := metrics.New(prometheus.NewRegistry())
		go serveMetrics(ctx, conf.MetricsAddr, pm.Handler(), log.With("component", "metrics"))
		m = pm
	}

	monitor := service.NewMonitor(provider, store, store, tg, calendarSyncer, m, clk, service.MonitorConfig{
		House: conf.House,
		Address: service.Address{
			City:   conf.City,
			Street: conf.Street,
			House:  conf.House,
		},
		ChatIDs:  chatIDs,
		Location: clk.Location(),
	}, log)

	if once {
		return monitor.Run(ctx)
	}

	refresh(ctx, monitor, conf.RefreshInterval, log.With("component", "schedule").With("action", "refresh"))
	return nil
}

func openDB(path string, log *slog.Logger) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func newCalendarSync(ctx context.Context, conf *config.Config, clk *clock.Clock, log *slog.Logger) (*calendar.SyncService, error) {
	api, err := calendar.NewGoogle(ctx, conf.CalendarCredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}

	res := calendar.NewSyncService(api, calendar.SyncConfig{
		CalendarID:   conf.CalendarID,
		SyncPossible: conf.CalendarSyncPossible,
	}, conf.Location, log)

	if err := res.CleanupStale(ctx, clk.Now(), conf.CalendarCleanupDays); err != nil {
		log.WarnContext(ctx, "Failed to cleanup stale calendar events", "error", err)
	}
	return res, nil
}

// refresh runs the first cycle right away and then every delay until ctx is done.
func refresh(ctx context.Context, monitor *service.Monitor, delay time.Duration, log *slog.Logger) {
	defer func() {
		log.InfoContext(ctx, "Stopped monitor schedule")
	}()

	log.InfoContext(ctx, "Starting monitor schedule", "interval", delay)
	wait := time.Duration(0)
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
			wait = delay
			err := monitor.Run(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				if errors.Is(err, context.DeadlineExceeded) {
					log.WarnContext(ctx, "Monitor cycle timed out", "error", err)
					continue
				}

				log.ErrorContext(ctx, "Error running monitor cycle", "error", err)
			}
		}
	}
}

func serveMetrics(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.InfoContext(ctx, "Serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.ErrorContext(ctx, "Metrics server failed", "error", err)
	}
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
