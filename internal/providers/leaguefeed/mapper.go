package leaguefeed

import (
	"fmt"
	"strings"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/timeutil"
)

func mapGame(g gameResponse, league, season string) (domain.Game, error) {
	date, err := timeutil.ParseDate(normalizeDate(g.Date))
	if err != nil {
		return domain.Game{}, fmt.Errorf("%s: game %d: %w", providerName, g.ID, err)
	}
	if season == "" && g.Season > 0 {
		season = fmt.Sprintf("%d", g.Season)
	}
	return domain.Game{
		ID:       fmt.Sprintf("%s-%d", providerName, g.ID),
		Provider: providerName,
		League:   league,
		Season:   season,
		Date:     date,
		HomeTeam: teamName(g.HomeTeam),
		AwayTeam: teamName(g.VisitorTeam),
	}, nil
}

// normalizeDate strips the time portion some upstream responses carry,
// e.g. "2021-10-19T00:00:00.000Z".
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexByte(raw, 'T'); idx > 0 {
		return raw[:idx]
	}
	return raw
}

func teamName(t teamResponse) string {
	if abbr := strings.TrimSpace(t.Abbreviation); abbr != "" {
		return abbr
	}
	if full := strings.TrimSpace(t.FullName); full != "" {
		return full
	}
	return strings.TrimSpace(t.Name)
}
