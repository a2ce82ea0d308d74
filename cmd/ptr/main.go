package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/alexanderramin/ptr/internal/cli"
	"github.com/alexanderramin/ptr/internal/config"
	"github.com/alexanderramin/ptr/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory supplies PTR_* variables for
	// development runs; a missing file is fine.
	_ = godotenv.Load()

	path := os.Getenv("PTR_CONFIG")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	app := &cli.App{
		Settings: settings,
		Observer: service.NewLogObserver(os.Stderr, slog.LevelInfo),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
