package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/timeutil"
)

const metricsDir = "metrics"

// Writer persists metrics reports and a manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMetricsReport writes the density table for the given date (YYYY-MM-DD)
// as a CSV report and prunes old reports. Re-running with an unchanged table
// leaves the file bytes untouched.
func (w *Writer) WriteMetricsReport(date string, table domain.MetricsTable) error {
	if w == nil {
		return fmt.Errorf("report writer not configured")
	}
	if date == "" {
		return fmt.Errorf("date required")
	}

	data, err := encodeCSV(table)
	if err != nil {
		return err
	}

	target := MetricsReportPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(date)
}

// encodeCSV renders the table as Team plus the canonical metric columns,
// one row per team sorted by team id.
func encodeCSV(table domain.MetricsTable) ([]byte, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	header := append([]string{"Team"}, table.Columns...)
	if err := cw.Write(header); err != nil {
		return nil, err
	}

	rows := make([]domain.TeamMetrics, len(table.Rows))
	copy(rows, table.Rows)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })

	record := make([]string, len(header))
	for _, row := range rows {
		record[0] = row.Team
		for i, col := range table.Columns {
			record[i+1] = strconv.Itoa(row.Value(col))
		}
		if err := cw.Write(record); err != nil {
			return nil, err
		}
	}
	cw.Flush()
	return buf.Bytes(), cw.Error()
}

func (w *Writer) updateManifest(date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, w.retentionDays)
	now := time.Now().UTC()

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldReports(dates)
	if err != nil {
		return err
	}

	m.Metrics.Dates = pruned
	m.Metrics.LastRefreshed = now
	m.Retention.MetricsDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Join(w.basePath, metricsDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var (
		dates []string
		seen  = make(map[string]struct{})
	)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".csv" {
			continue
		}
		base := name[:len(name)-len(".csv")]
		if _, ok := seen[base]; ok {
			continue
		}
		seen[base] = struct{}{}
		dates = append(dates, base)
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldReports(dates []string) ([]string, error) {
	now := time.Now().UTC()
	cutoff := timeutil.Day(now).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(MetricsReportPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}
