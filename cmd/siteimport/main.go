package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/repository"
	"github.com/joseph-ayodele/mowbot/internal/sites"
)

// siteimport loads a site spreadsheet into the job store, creating a job
// row per site and updating existing rows in place. Run it against the
// same DB_URL the bot uses.
func main() {
	var (
		file = flag.String("file", "", "XLSX spreadsheet to import (required)")
	)
	flag.Parse()

	if *file == "" {
		if _, err := fmt.Fprintln(os.Stderr, "Error: --file is required"); err != nil {
			fmt.Println("Error: --file is required")
		}
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	dbCfg := repository.Config{
		DSN:         cfg.Database.DSN,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		DialTimeout: cfg.Database.DialTimeout,
	}
	entc, pool, err := repository.Open(ctx, dbCfg, logger)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.Migrate(ctx, entc, logger); err != nil {
		os.Exit(1)
	}

	jobRepo := repository.NewJobRepository(entc, logger)
	importer := sites.NewImporter(jobRepo, logger)

	result, err := importer.ImportXLSX(ctx, *file)
	if err != nil {
		logger.Error("import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	logger.Info("import complete",
		"file", *file,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	fmt.Printf("Import complete: %d created, %d updated, %d skipped\n",
		result.Created, result.Updated, result.Skipped)
}
