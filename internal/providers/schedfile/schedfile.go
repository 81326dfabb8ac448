package schedfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/timeutil"
)

// ErrMissingPath reports that the provider was configured without a file path.
var ErrMissingPath = errors.New("schedule file path not configured")

// Config describes where the schedule file lives and how to label its games.
type Config struct {
	Path   string
	League string
	Season string
}

// Provider reads a delimited schedule file with a game_date,home,visitor header.
type Provider struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a schedule-file provider.
func New(cfg Config, logger *slog.Logger) *Provider {
	if cfg.League == "" {
		cfg.League = "nba"
	}
	return &Provider{cfg: cfg, logger: logger}
}

// FetchSchedule reads and parses the configured file. The season argument
// overrides the configured season label when non-empty.
func (p *Provider) FetchSchedule(ctx context.Context, season string) ([]domain.Game, error) {
	if p == nil || p.cfg.Path == "" {
		return nil, ErrMissingPath
	}
	if season == "" {
		season = p.cfg.Season
	}

	f, err := os.Open(p.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}
	defer f.Close()

	games, err := p.parse(ctx, f, season)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p.cfg.Path, err)
	}
	if p.logger != nil {
		p.logger.Info("schedule file loaded",
			slog.String("provider", "schedfile"),
			slog.String("path", p.cfg.Path),
			slog.Int("games", len(games)))
	}
	return games, nil
}

func (p *Provider) parse(ctx context.Context, r io.Reader, season string) ([]domain.Game, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("empty schedule file")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateCol, homeCol, awayCol, err := headerIndexes(header)
	if err != nil {
		return nil, err
	}

	var games []domain.Game
	for row := 2; ; row++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		date, err := timeutil.ParseDate(strings.TrimSpace(record[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		home := strings.TrimSpace(record[homeCol])
		away := strings.TrimSpace(record[awayCol])
		if home == "" || away == "" {
			return nil, fmt.Errorf("row %d: missing team name", row)
		}

		games = append(games, domain.Game{
			ID:       fmt.Sprintf("file-%d", row-1),
			Provider: "schedfile",
			League:   p.cfg.League,
			Season:   season,
			Date:     date,
			HomeTeam: home,
			AwayTeam: away,
		})
	}
	return games, nil
}

func headerIndexes(header []string) (date, home, away int, err error) {
	date, home, away = -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "game_date":
			date = i
		case "home":
			home = i
		case "visitor":
			away = i
		}
	}
	if date < 0 || home < 0 || away < 0 {
		return 0, 0, 0, fmt.Errorf("header must contain game_date, home, visitor; got %v", header)
	}
	return date, home, away, nil
}
