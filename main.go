// main.go - Entry point and dependency injection
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/sstent/trainingstats/internal/config"
	"github.com/sstent/trainingstats/internal/parser"
	"github.com/sstent/trainingstats/internal/report"
	"github.com/sstent/trainingstats/internal/training"
)

type App struct {
	cfg      config.Config
	stdin    io.Reader
	reporter *report.Service
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	app := &App{
		cfg:      cfg,
		stdin:    os.Stdin,
		reporter: report.NewService(os.Stdout),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx); err != nil {
		log.Fatalf("trainingstats: %v", err)
	}
}

func (app *App) run(ctx context.Context) error {
	if err := app.cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	packages, err := app.loadPackages()
	if err != nil {
		return err
	}

	return app.reporter.Run(ctx, packages)
}

// loadPackages reads the configured input, falling back to the sample packages.
func (app *App) loadPackages() ([]training.Package, error) {
	athlete := app.cfg.Athlete()

	switch app.cfg.InputPath {
	case "":
		return training.SamplePackages(), nil
	case "-":
		data, err := io.ReadAll(app.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		p, err := parser.NewParserFromData(data, athlete)
		if err != nil {
			return nil, err
		}
		return p.ParseData(data)
	default:
		return parser.ParseFile(app.cfg.InputPath, athlete)
	}
}
