package density

import (
	"time"

	"schedule-density-service/internal/domain"
)

// CountBackToBacks counts the adjacent calendar-entry pairs that contain at
// least two of the team's games under the given location filter. Each
// qualifying pair contributes exactly 1, however many games fall inside it.
//
// The calendar carries only dates on which some game in the league occurred,
// so a "back-to-back" is two games on the two nearest distinct league
// game-dates, not necessarily on physically adjacent days. That is the
// definition downstream rule tables are built on; keep it.
func CountBackToBacks(games []domain.Game, calendar []time.Time, team string, loc Location) (int, error) {
	filtered, err := filterGames(games, team, loc)
	if err != nil {
		return 0, err
	}
	// Zero pairs to inspect: a single-date (or empty) calendar has no back-to-backs.
	if len(filtered) == 0 || len(calendar) < 2 {
		return 0, nil
	}

	total := 0
	for i := 0; i+1 < len(calendar); i++ {
		if countInRange(filtered, calendar[i], calendar[i+1]) >= 2 {
			total++
		}
	}
	return total, nil
}
