package density

import (
	"sort"
	"time"

	"schedule-density-service/internal/domain"
)

// BuildTeamMetrics computes every density metric for every team and merges
// them into one wide table, one row per entry in teams. Teams with no games
// under a filter get 0 for that filter's columns, never a missing value.
//
// Inputs are read-only; identical inputs produce an identical table.
func BuildTeamMetrics(games []domain.Game, calendar []time.Time, teams []string) (domain.MetricsTable, error) {
	rows := make([]domain.TeamMetrics, 0, len(teams))
	for _, team := range teams {
		values := make(map[string]int, len(Locations)*(len(WindowLengths)+1))
		for _, loc := range Locations {
			pairs, err := CountBackToBacks(games, calendar, team, loc)
			if err != nil {
				return domain.MetricsTable{}, err
			}
			values[BackToBackColumn(loc)] = pairs

			for _, n := range WindowLengths {
				most, err := MaxGamesInWindow(games, calendar, team, loc, n)
				if err != nil {
					return domain.MetricsTable{}, err
				}
				values[MaxGamesColumn(n, loc)] = most
			}
		}
		rows = append(rows, domain.TeamMetrics{Team: team, Values: values})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return domain.MetricsTable{Columns: Columns(), Rows: rows}, nil
}
