package domain

import (
	"sort"
	"time"

	"schedule-density-service/internal/timeutil"
)

// DeriveCalendar returns the tournament calendar: the distinct days on which
// at least one game occurs, sorted ascending. Days the league was idle do not
// appear, so consecutive calendar entries can be more than one day apart.
func DeriveCalendar(games []Game) []time.Time {
	seen := make(map[time.Time]struct{}, len(games))
	days := make([]time.Time, 0, len(games))
	for _, g := range games {
		day := timeutil.Day(g.Date)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// DeriveTeams returns the distinct team ids appearing on either side of any
// game, sorted ascending.
func DeriveTeams(games []Game) []string {
	seen := make(map[string]struct{}, len(games)*2)
	teams := make([]string, 0, len(games))
	for _, g := range games {
		for _, team := range []string{g.HomeTeam, g.AwayTeam} {
			if team == "" {
				continue
			}
			if _, ok := seen[team]; ok {
				continue
			}
			seen[team] = struct{}{}
			teams = append(teams, team)
		}
	}
	sort.Strings(teams)
	return teams
}
