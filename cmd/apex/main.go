package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/apex/internal/catalog"
	"github.com/alexanderramin/apex/internal/cli"
	"github.com/alexanderramin/apex/internal/config"
	"github.com/alexanderramin/apex/internal/db"
	"github.com/alexanderramin/apex/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	deps := service.Deps{
		Catalog:         cat,
		Store:           service.NewStore(database, cfg.StorageVersion),
		ReadinessWindow: cfg.ReadinessWindow,
	}
	profiles := service.NewProfileService(deps, observer)
	data := service.NewDataService(deps, observer)

	app := &cli.App{
		Onboard:   profiles,
		Profile:   profiles,
		Readiness: profiles,
		Sessions:  service.NewSessionService(deps, observer),
		Rewards:   service.NewRewardService(deps, observer),
		Status:    service.NewStatusService(deps),
		Import:    data,
		Export:    data,
		Catalog:   cat,
		RestTick:  cfg.RestTick,
	}

	// Prompts and the full-screen rest timer need a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
