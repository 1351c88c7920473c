package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/vbonduro/movecheck/internal/config"
	"github.com/vbonduro/movecheck/internal/db"
	"github.com/vbonduro/movecheck/internal/domain"
	"github.com/vbonduro/movecheck/internal/engine"
	"github.com/vbonduro/movecheck/internal/logging"
	"github.com/vbonduro/movecheck/internal/service"
	"github.com/vbonduro/movecheck/internal/store"
	"github.com/vbonduro/movecheck/internal/tariff"
	"github.com/vbonduro/movecheck/internal/web"
	"github.com/vbonduro/movecheck/internal/wire"
)

const usage = `usage: movecheck [command] [flags]

commands:
  serve      run the HTTP API (default)
  compare    -exit exit.json [-entry entry.json]
  estimate   -exit exit.json -deposit 900 [-entry entry.json] [-tariffs grid.yaml]
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, os.Args[1:], os.Stdout); err != nil {
		logger.Error("movecheck failed", "error", err)
		cleanup()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	cmd := "serve"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		return serve(ctx, cfg, logger)
	case "compare":
		return compare(ctx, cfg, logger, args, out)
	case "estimate":
		return estimate(ctx, cfg, logger, args, out)
	case "help", "-h", "--help":
		_, err := fmt.Fprint(out, usage)
		return err
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	tariffs, err := loadTariffs(cfg, cfg.TariffFile)
	if err != nil {
		return err
	}
	logger.Info("tariffs loaded", "file", cfg.TariffFile, "categories", len(tariffs.Items), "key_types", len(tariffs.Keys), "currency", tariffs.Currency)

	svc := service.NewEstimationService(store.NewEstimateStore(database), tariffs, logger)
	server := web.NewServer(svc, logger)
	srv := server.HTTPServer(cfg.ListenAddr)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func compare(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	entryFile := fs.String("entry", "", "Path to the entry inspection JSON file (optional)")
	exitFile := fs.String("exit", "", "Path to the exit inspection JSON file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *exitFile == "" {
		return errors.New("compare: -exit is required")
	}

	entry, exit, err := readPair(*entryFile, *exitFile)
	if err != nil {
		return err
	}

	svc := service.NewEstimationService(nil, engine.Tariffs{}, logger)
	cmp, err := svc.Compare(ctx, entry, exit)
	if err != nil {
		return err
	}
	return writeJSON(out, cmp)
}

func estimate(ctx context.Context, cfg *config.Config, logger *slog.Logger, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	entryFile := fs.String("entry", "", "Path to the entry inspection JSON file (optional)")
	exitFile := fs.String("exit", "", "Path to the exit inspection JSON file (required)")
	depositStr := fs.String("deposit", "", "Security deposit amount, e.g. 900 or 1250.50 (required)")
	tariffFile := fs.String("tariffs", cfg.TariffFile, "Path to a tariff YAML file (default: shipped grid)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *exitFile == "" || *depositStr == "" {
		return errors.New("estimate: -exit and -deposit are required")
	}

	deposit, err := decimal.NewFromString(*depositStr)
	if err != nil {
		return fmt.Errorf("invalid deposit %q: %w", *depositStr, err)
	}

	entry, exit, err := readPair(*entryFile, *exitFile)
	if err != nil {
		return err
	}

	tariffs, err := loadTariffs(cfg, *tariffFile)
	if err != nil {
		return err
	}

	svc := service.NewEstimationService(nil, tariffs, logger)
	report, err := svc.Calculate(ctx, service.EstimateRequest{Entry: entry, Exit: exit, Deposit: deposit})
	if err != nil {
		return err
	}
	return writeJSON(out, report)
}

func loadTariffs(cfg *config.Config, path string) (engine.Tariffs, error) {
	tariffs, err := tariff.Load(path)
	if err != nil {
		return engine.Tariffs{}, err
	}
	if tariffs.Currency == "" {
		tariffs.Currency = cfg.DefaultCurrency
	}
	return tariffs, nil
}

func readPair(entryFile, exitFile string) (*domain.Snapshot, domain.Snapshot, error) {
	v := wire.NewValidator()
	exit, err := readSnapshot(v, exitFile, domain.RoleExit)
	if err != nil {
		return nil, domain.Snapshot{}, err
	}
	if entryFile == "" {
		return nil, *exit, nil
	}
	entry, err := readSnapshot(v, entryFile, domain.RoleEntry)
	if err != nil {
		return nil, domain.Snapshot{}, err
	}
	return entry, *exit, nil
}

// readSnapshot accepts the same document the HTTP API takes for one slot.
func readSnapshot(v *validator.Validate, path string, slot domain.Role) (*domain.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	snap, err := wire.DecodeSnapshot(v, data, slot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
