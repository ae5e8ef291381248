package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"stripe-accounting-export/internal/config"
	"stripe-accounting-export/internal/domain"
	"stripe-accounting-export/internal/gateway"
	"stripe-accounting-export/internal/logger"
	"stripe-accounting-export/internal/usecase"
)

const reportDir = "generated_reports"

func main() {
	log := logger.New()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <start-date> <end-date>\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "Dates are inclusive, format YYYY-MM-DD.")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: start and end dates are required.")
		flag.Usage()
		os.Exit(1)
	}

	startArg, endArg := flag.Arg(0), flag.Arg(1)

	start, err := domain.ParseDay(startArg)
	if err != nil {
		log.Fatal().Err(err).Str("date", startArg).Msg("Invalid start date")
	}
	end, err := domain.ParseDay(endArg)
	if err != nil {
		log.Fatal().Err(err).Str("date", endArg).Msg("Invalid end date")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration error")
	}

	// --- Dependency injection, wired by hand ---
	stripeGateway := gateway.NewStripeGateway(cfg.StripeKey)
	export := usecase.NewExportUseCase(stripeGateway, log)
	writer := gateway.NewCSVReportWriter()

	ctx := context.Background()

	entries, err := export.Export(ctx, start, end)
	if err != nil {
		log.Fatal().Err(err).Msg("Export failed")
	}

	path := filepath.Join(reportDir, fmt.Sprintf("ecritures_comptables_%s_to_%s.csv", startArg, endArg))
	if err := writer.Write(path, entries); err != nil {
		log.Fatal().Err(err).Msg("Could not write report")
	}

	log.Info().Str("path", path).Int("entries", len(entries)).Msg("Report generated")
	fmt.Println(path)
}
