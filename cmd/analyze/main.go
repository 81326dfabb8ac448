package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"log/slog"

	"schedule-density-service/internal/density"
	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/logging"
	"schedule-density-service/internal/providers/schedfile"
	"schedule-density-service/internal/reports"
	"schedule-density-service/internal/timeutil"
)

const appVersion = "dev"

// options captures the one-shot analysis flags.
type options struct {
	file      string
	league    string
	season    string
	out       string
	date      string
	retention int
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	opts := options{}
	fs.StringVar(&opts.file, "file", "", "path to a schedule CSV (game_date,home,visitor)")
	fs.StringVar(&opts.league, "league", "nba", "league label for the report")
	fs.StringVar(&opts.season, "season", "", "season label for the report")
	fs.StringVar(&opts.out, "out", "data/reports", "directory for CSV reports")
	fs.StringVar(&opts.date, "date", "", "report date (YYYY-MM-DD, default today)")
	fs.IntVar(&opts.retention, "retention", 14, "days of reports to keep")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.file == "" {
		return options{}, fmt.Errorf("missing required -file flag")
	}
	if opts.date == "" {
		opts.date = timeutil.FormatDate(time.Now().UTC())
	} else if _, err := timeutil.ParseDate(opts.date); err != nil {
		return options{}, fmt.Errorf("invalid -date: %w", err)
	}
	return opts, nil
}

func run(ctx context.Context, opts options, logger *slog.Logger) error {
	provider := schedfile.New(schedfile.Config{
		Path:   opts.file,
		League: opts.league,
		Season: opts.season,
	}, logger)

	games, err := provider.FetchSchedule(ctx, opts.season)
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}

	calendar := domain.DeriveCalendar(games)
	teams := domain.DeriveTeams(games)
	table, err := density.BuildTeamMetrics(games, calendar, teams)
	if err != nil {
		return fmt.Errorf("compute metrics: %w", err)
	}

	writer := reports.NewWriter(opts.out, opts.retention)
	if err := writer.WriteMetricsReport(opts.date, table); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logging.Info(logger, "analysis complete",
		slog.String(logging.FieldLeague, opts.league),
		slog.String(logging.FieldSeason, opts.season),
		slog.String(logging.FieldDate, opts.date),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int("teams", len(teams)),
		slog.String("report", reports.MetricsReportPath(opts.out, opts.date)),
	)
	return nil
}

func main() {
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "schedule-density-analyze",
		Version: appVersion,
	})

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		logging.Error(logger, "invalid flags", err)
		os.Exit(2)
	}

	if err := run(context.Background(), opts, logger); err != nil {
		logging.Error(logger, "analysis failed", err)
		os.Exit(1)
	}
}
