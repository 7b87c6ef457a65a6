package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"fintrack/internal/backend"
	"fintrack/internal/cli"
	"fintrack/internal/log"
	"fintrack/internal/seed"
)

func main() {
	userID := flag.Int64("user", 1, "user id to seed")
	months := flag.Int("months", 24, "months of history to generate, current month included")
	budgetMonths := flag.Int("budget-months", 12, "months that get budgets, current month included")
	flag.Parse()

	cfg, logger := cli.LoadAndValidateConfig(log.ComponentSeed)
	if !backend.BackendType(cfg.DataBackend).Shared() {
		logger.Error("Seeding needs a persistent backend", "backend", cfg.DataBackend,
			"supported", backend.SharedBackendTypes())
		os.Exit(1)
	}

	ctx := context.Background()
	store, err := cli.OpenBackend(ctx, logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize ledger backend", log.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	res, err := seed.Demo(ctx, store.Store, seed.Options{
		UserID:       *userID,
		Months:       *months,
		BudgetMonths: *budgetMonths,
		Logger:       logger,
	})
	if cerr := store.Cleanup(); cerr != nil {
		logger.Warn("Failed to close ledger backend", log.FieldError, cerr)
	}
	switch {
	case errors.Is(err, seed.ErrAlreadySeeded):
		logger.Info("Nothing to do", log.FieldError, err, log.FieldUserID, *userID)
	case err != nil:
		logger.Error("Seeding failed", log.FieldError, err, "partial", res)
		os.Exit(1)
	}
}
