package main

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

	"alvares/internal/config"
	"alvares/internal/grid"
	"alvares/internal/service/attendance"
	generate_excel "alvares/internal/service/generate-excel"
	generate_word "alvares/internal/service/generate-word"
	"alvares/internal/service/reconcile"
	"alvares/internal/service/roles"
	"alvares/internal/service/roster"
	"alvares/internal/storage/mysql"
	"alvares/internal/storage/sqlite"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// personnelStorage - спільне для sqlite і mysql.
type personnelStorage interface {
	roles.RoleStorage
	roster.PersonnelStorage
	Init(ctx context.Context) error
	Close() error
}

func main() {
	cfg := config.MustConfig()

	log := setupLogger(cfg.Env, cfg.ErrorLog)

	store, err := openStorage(cfg.Storage)
	if err != nil {
		log.Error("failed to open db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer store.Close()

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = store.Init(initCtx)
	cancel()
	if err != nil {
		log.Error("failed to init db", slog.String("error", err.Error()))
		os.Exit(1)
	}

	open := grid.OpenDocument
	reader := attendance.NewReader(log)
	renderer := generate_word.NewWordRenderer(log, cfg.Files.Template, cfg.Files.BR4ShB, cfg.Files.OutputDir)

	svc := services{
		fill:   reconcile.NewFillService(log, open, cfg.Files.Tabel, cfg.Files.SourceDir),
		roles:  roles.NewService(log, store, reader, open, cfg.Files.Tabel),
		excel:  generate_excel.NewGenerateService(log, reader, open, cfg.Files.Tabel, cfg.Files.OutputDir),
		roster: roster.NewService(log, store, reader, renderer, open, cfg.Files.Tabel, cfg.BRWorkers),
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      routes(*cfg, log, svc),
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: 5 * time.Minute, // генерація БР за діапазон
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("address", cfg.Address), slog.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

func openStorage(cfg config.Storage) (personnelStorage, error) {
	switch cfg.Driver {
	case "mysql":
		s, err := mysql.New(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite", "":
		s, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
