package main

import (
	"fmt"
	"os"

	"cafe-cli/cli"
	"cafe-cli/config"
	"cafe-cli/logging"
	"cafe-cli/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := services.NewMenuStore(cfg.MenuFile, logger)
	store.Load()

	ledger := services.NewOrderLedger()
	exporter := services.NewBillExporter(cfg.BillDir, cfg.Currency, logger)

	app := cli.New(cfg, store, ledger, exporter)
	app.Run(os.Stdin, os.Stdout)
}
