package density

import (
	"time"

	"schedule-density-service/internal/domain"
)

// MaxGamesInWindow returns the maximum number of games the team plays, under
// the given location filter, inside any window of nDays consecutive calendar
// entries. Window bounds are inclusive.
//
// Window starts are calendar indices, not arbitrary dates: the calendar holds
// only days on which some game occurred, so when it has gaps a window of
// nDays entries spans more than nDays elapsed days.
//
// Degenerate inputs (no matching games, nDays <= 0, nDays longer than the
// calendar) yield 0 rather than an error.
func MaxGamesInWindow(games []domain.Game, calendar []time.Time, team string, loc Location, nDays int) (int, error) {
	filtered, err := filterGames(games, team, loc)
	if err != nil {
		return 0, err
	}
	if len(filtered) == 0 || nDays <= 0 || nDays > len(calendar) {
		return 0, nil
	}

	best := 0
	for i := 0; i+nDays <= len(calendar); i++ {
		count := countInRange(filtered, calendar[i], calendar[i+nDays-1])
		if count > best {
			best = count
		}
	}
	return best, nil
}

// countInRange counts games whose date falls within [start, end] inclusive.
func countInRange(games []domain.Game, start, end time.Time) int {
	n := 0
	for _, g := range games {
		if !g.Date.Before(start) && !g.Date.After(end) {
			n++
		}
	}
	return n
}
