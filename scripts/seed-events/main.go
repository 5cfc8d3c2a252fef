// scripts/seed-events/main.go
//
// Loads events from a YAML seed file into the configured event store and
// reports how each stored date is interpreted.
//
// Usage:
//   go run ./scripts/seed-events <seed.yaml> [--check]
//
// With --check nothing is written; every date is parsed and unrecognized
// ones are listed, which is handy before importing a new agenda.

package main

import (
	"context"
	"fmt"
	"os"

	"integra-recife/config"
	"integra-recife/internal/event/repository/sqlite"
	"integra-recife/pkg/datemath"
	"integra-recife/pkg/log"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/seed-events <seed.yaml> [--check]")
		os.Exit(1)
	}
	seedPath := os.Args[1]
	checkOnly := len(os.Args) > 2 && os.Args[2] == "--check"

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:    cfg.Logger.Level,
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})
	ctx := context.Background()

	events, err := sqlite.LoadSeedFile(seedPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to load seed file: %v", err)
	}

	var unparseable []string
	parser, err := datemath.NewParser(cfg.Calendar.Timezone, datemath.WithReporter(
		datemath.ReporterFunc(func(raw string) { unparseable = append(unparseable, raw) }),
	))
	if err != nil {
		logger.Fatalf(ctx, "Invalid calendar.timezone: %v", err)
	}

	for _, ev := range events {
		n := parser.ParseString(ev.RawDate)
		layout := datemath.DayLayout
		if n.HasTime {
			layout = "2006-01-02 15:04"
		}
		fmt.Printf("%-40.40s %-28q -> %s\n", ev.Title, ev.RawDate, n.Time.Format(layout))
	}
	for _, raw := range unparseable {
		logger.Warnf(ctx, "Unrecognized date %q will be shown on the import day", raw)
	}

	if checkOnly {
		fmt.Printf("\n%d event(s) checked, %d unrecognized date(s)\n", len(events), len(unparseable))
		return
	}

	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open event store: %v", err)
	}
	defer db.Close()

	n, err := sqlite.Seed(ctx, sqlite.New(db, logger), events)
	if err != nil {
		logger.Fatalf(ctx, "Seeding failed: %v", err)
	}
	if n == 0 {
		fmt.Println("\nEvent store is not empty, nothing imported")
		return
	}
	fmt.Printf("\n%d event(s) imported into %s\n", n, cfg.Database.Path)
}
