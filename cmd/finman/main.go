package main

import (
	"context"
	"os"

	"finman/internal/cli"
	"finman/internal/services"
)

func main() {
	cli.LoadEnvFile()

	logger := cli.SetupLogger("info")
	cfg := cli.LoadAndValidateConfig(logger)
	logger = cli.SetupLogger(cfg.LogLevel)

	repo := cli.InitSQLite(logger, cfg.SQLiteDBPath)
	defer repo.Close()

	menu := cli.NewMenu(
		services.NewAuthService(repo),
		services.NewLedgerService(repo),
		services.NewBudgetService(repo),
		services.NewReportService(repo),
		os.Stdin,
		os.Stdout,
	)

	logger.Info("Session started", "db_path", cfg.SQLiteDBPath)
	if err := menu.Run(context.Background()); err != nil {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
}
