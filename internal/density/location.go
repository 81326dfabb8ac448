package density

import (
	"errors"
	"fmt"

	"schedule-density-service/internal/domain"
)

// Location selects which side of a game must match the team under test.
type Location string

const (
	LocationHome Location = "home"
	LocationAway Location = "away"
	LocationAll  Location = "all"
)

// Locations lists every valid filter in canonical output order.
var Locations = []Location{LocationHome, LocationAway, LocationAll}

// ErrInvalidLocation reports a location filter outside {home, away, all}.
// Callers passing one have a programming error; there is no fallback.
var ErrInvalidLocation = errors.New("invalid location filter")

func matches(g domain.Game, team string, loc Location) (bool, error) {
	switch loc {
	case LocationHome:
		return g.HomeTeam == team, nil
	case LocationAway:
		return g.AwayTeam == team, nil
	case LocationAll:
		return g.HomeTeam == team || g.AwayTeam == team, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidLocation, loc)
	}
}

// filterGames returns the games that match team under loc.
func filterGames(games []domain.Game, team string, loc Location) ([]domain.Game, error) {
	filtered := make([]domain.Game, 0, len(games))
	for _, g := range games {
		ok, err := matches(g, team, loc)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}
