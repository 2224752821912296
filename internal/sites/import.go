package sites

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/mowbot/internal/repository"
)

// ImportResult summarizes one spreadsheet import run.
type ImportResult struct {
	Created int
	Updated int
	Skipped int
}

// Importer provisions job rows from the company site spreadsheet. Rows are
// matched by site name; existing jobs only have their reference data
// refreshed, lifecycle fields are never touched.
type Importer struct {
	jobs   repository.JobRepository
	logger *slog.Logger
}

func NewImporter(jobs repository.JobRepository, logger *slog.Logger) *Importer {
	return &Importer{jobs: jobs, logger: logger}
}

// Expected header columns; matching is case-insensitive on the first row.
var columns = []string{
	"site_name", "quote", "address", "order_no", "order_period",
	"area", "summer_schedule", "winter_schedule", "contact", "gate_code", "map_link",
}

// ImportXLSX reads the first sheet of an XLSX workbook and upserts one job
// per data row. Rows without a site name are skipped.
func (im *Importer) ImportXLSX(ctx context.Context, path string) (ImportResult, error) {
	var out ImportResult

	f, err := excelize.OpenFile(path)
	if err != nil {
		return out, fmt.Errorf("open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			im.logger.Error("close workbook failed", "error", err)
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return out, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return out, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return out, fmt.Errorf("sheet %s has no data rows", sheets[0])
	}

	idx, err := headerIndex(rows[0])
	if err != nil {
		return out, err
	}

	for n, row := range rows[1:] {
		fields := repository.SiteFields{
			SiteName:       cell(row, idx["site_name"]),
			Quote:          cell(row, idx["quote"]),
			Address:        cell(row, idx["address"]),
			OrderNo:        cell(row, idx["order_no"]),
			OrderPeriod:    cell(row, idx["order_period"]),
			Area:           cell(row, idx["area"]),
			SummerSchedule: cell(row, idx["summer_schedule"]),
			WinterSchedule: cell(row, idx["winter_schedule"]),
			Contact:        cell(row, idx["contact"]),
			GateCode:       cell(row, idx["gate_code"]),
			MapLink:        cell(row, idx["map_link"]),
		}
		if fields.SiteName == "" {
			im.logger.Warn("skipping row without site name", "row", n+2)
			out.Skipped++
			continue
		}
		_, created, err := im.jobs.UpsertSite(ctx, fields)
		if err != nil {
			return out, fmt.Errorf("row %d (%s): %w", n+2, fields.SiteName, err)
		}
		if created {
			out.Created++
		} else {
			out.Updated++
		}
	}

	im.logger.Info("site import complete",
		"created", out.Created, "updated", out.Updated, "skipped", out.Skipped)
	return out, nil
}

func headerIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(columns))
	for _, c := range columns {
		idx[c] = -1
	}
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, known := idx[name]; known {
			idx[name] = i
		}
	}
	if idx["site_name"] < 0 {
		return nil, fmt.Errorf("header row is missing site_name")
	}
	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
