package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"schedule-density-service/internal/reports"
)

func TestParseFlagsRequiresFile(t *testing.T) {
	if _, err := parseFlags([]string{}); err == nil {
		t.Fatal("expected error for missing -file")
	}
}

func TestParseFlagsDefaultsDate(t *testing.T) {
	opts, err := parseFlags([]string{"-file", "schedule.csv"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.date == "" {
		t.Fatal("expected default date")
	}
	if opts.league != "nba" || opts.retention != 14 {
		t.Fatalf("unexpected defaults %+v", opts)
	}
}

func TestParseFlagsRejectsBadDate(t *testing.T) {
	if _, err := parseFlags([]string{"-file", "schedule.csv", "-date", "nope"}); err == nil {
		t.Fatal("expected error for bad date")
	}
}

func TestRunWritesReport(t *testing.T) {
	dir := t.TempDir()
	schedulePath := filepath.Join(dir, "schedule.csv")
	csv := strings.Join([]string{
		"game_date,home,visitor",
		"2021-10-19,MIL,BKN",
		"2021-10-20,MIL,BOS",
		"2021-10-22,BKN,BOS",
		"",
	}, "\n")
	if err := os.WriteFile(schedulePath, []byte(csv), 0o644); err != nil {
		t.Fatalf("write schedule: %v", err)
	}

	out := filepath.Join(dir, "reports")
	opts := options{
		file:      schedulePath,
		league:    "nba",
		season:    "2021",
		out:       out,
		date:      "2021-10-25",
		retention: 14,
	}

	if err := run(context.Background(), opts, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(reports.MetricsReportPath(out, "2021-10-25"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 team rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Team,") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "BKN,") || !strings.HasPrefix(lines[3], "MIL,") {
		t.Fatalf("expected rows sorted by team, got %v", lines[1:])
	}
}

func TestRunFailsOnMissingSchedule(t *testing.T) {
	opts := options{
		file:      filepath.Join(t.TempDir(), "missing.csv"),
		out:       t.TempDir(),
		date:      "2021-10-25",
		retention: 14,
	}
	if err := run(context.Background(), opts, nil); err == nil {
		t.Fatal("expected error for missing schedule file")
	}
}
