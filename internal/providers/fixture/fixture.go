package fixture

import (
	"context"
	"fmt"
	"time"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/timeutil"
)

// Provider returns a static schedule useful for local boot and tests.
type Provider struct {
	league string
}

// New creates a fixture provider for the given league label.
func New(league string) *Provider {
	if league == "" {
		league = "nba"
	}
	return &Provider{league: league}
}

// FetchSchedule returns a deterministic schedule. It includes a handful of
// back-to-back pairs and one league date with no games for two of the teams,
// which keeps the density numbers non-trivial.
func (p *Provider) FetchSchedule(ctx context.Context, season string) ([]domain.Game, error) {
	_ = ctx

	if season == "" {
		season = "2021"
	}

	rows := []struct {
		date string
		home string
		away string
	}{
		{"2021-10-19", "MIL", "BKN"},
		{"2021-10-19", "LAL", "GSW"},
		{"2021-10-20", "BOS", "NYK"},
		{"2021-10-20", "MIL", "LAL"},
		{"2021-10-21", "GSW", "BOS"},
		{"2021-10-22", "NYK", "BKN"},
		{"2021-10-22", "BOS", "MIL"},
		{"2021-10-23", "BKN", "LAL"},
		{"2021-10-23", "GSW", "NYK"},
	}

	games := make([]domain.Game, 0, len(rows))
	for i, row := range rows {
		date, err := timeutil.ParseDate(row.date)
		if err != nil {
			return nil, fmt.Errorf("fixture schedule row %d: %w", i, err)
		}
		games = append(games, domain.Game{
			ID:       fmt.Sprintf("fixture-%s-%d", season, i+1),
			Provider: "fixture",
			League:   p.league,
			Season:   season,
			Date:     date,
			HomeTeam: row.home,
			AwayTeam: row.away,
		})
	}
	return games, nil
}

// Dates returns the distinct fixture dates in ascending order. Tests use it
// to assert against the derived calendar.
func Dates() []time.Time {
	out := make([]time.Time, 0, 5)
	for _, raw := range []string{"2021-10-19", "2021-10-20", "2021-10-21", "2021-10-22", "2021-10-23"} {
		d, _ := timeutil.ParseDate(raw)
		out = append(out, d)
	}
	return out
}
