package density

import (
	"errors"
	"testing"
	"time"

	"schedule-density-service/internal/domain"
)

func mustB2B(t *testing.T, games []domain.Game, calendar []time.Time, team string, loc Location) int {
	t.Helper()
	got, err := CountBackToBacks(games, calendar, team, loc)
	if err != nil {
		t.Fatalf("CountBackToBacks(%s, %s): %v", team, loc, err)
	}
	return got
}

func TestCountBackToBacksHomePair(t *testing.T) {
	// Calendar D1..D4; team T has home games on D1 and D2 only.
	games := []domain.Game{
		game(t, "2021-01-01", "T", "A"),
		game(t, "2021-01-02", "T", "B"),
		game(t, "2021-01-03", "A", "B"),
		game(t, "2021-01-04", "B", "A"),
	}
	calendar := domain.DeriveCalendar(games)

	if got := mustB2B(t, games, calendar, "T", LocationHome); got != 1 {
		t.Fatalf("expected 1 home back-to-back got %d", got)
	}
	if got := mustB2B(t, games, calendar, "T", LocationAway); got != 0 {
		t.Fatalf("expected 0 away back-to-backs got %d", got)
	}
}

func TestCountBackToBacksPairCountsOnce(t *testing.T) {
	// Three T games across one adjacent pair still count as a single back-to-back.
	games := []domain.Game{
		game(t, "2021-01-01", "T", "A"),
		game(t, "2021-01-01", "B", "T"),
		game(t, "2021-01-02", "T", "B"),
	}
	calendar := domain.DeriveCalendar(games)

	if got := mustB2B(t, games, calendar, "T", LocationAll); got != 1 {
		t.Fatalf("expected pair to contribute 1 got %d", got)
	}
}

func TestCountBackToBacksSpansLeagueCalendarGaps(t *testing.T) {
	// The league is idle between Jan 2 and Jan 8, so (Jan 2, Jan 8) is an
	// adjacent calendar pair and T's games on those dates qualify.
	games := []domain.Game{
		game(t, "2021-01-02", "T", "A"),
		game(t, "2021-01-08", "A", "T"),
	}
	calendar := domain.DeriveCalendar(games)

	if got := mustB2B(t, games, calendar, "T", LocationAll); got != 1 {
		t.Fatalf("expected gap pair to qualify, got %d", got)
	}
}

func TestCountBackToBacksOverlappingPairs(t *testing.T) {
	// T plays three straight days: pairs (D1,D2) and (D2,D3) both qualify.
	games := []domain.Game{
		game(t, "2021-01-01", "T", "A"),
		game(t, "2021-01-02", "A", "T"),
		game(t, "2021-01-03", "T", "B"),
	}
	calendar := domain.DeriveCalendar(games)

	if got := mustB2B(t, games, calendar, "T", LocationAll); got != 2 {
		t.Fatalf("expected 2 overlapping back-to-backs got %d", got)
	}
}

func TestCountBackToBacksZeroPairs(t *testing.T) {
	single := []domain.Game{game(t, "2021-01-01", "V", "A")}
	calendar := domain.DeriveCalendar(single)

	if got := mustB2B(t, single, calendar, "V", LocationAll); got != 0 {
		t.Fatalf("single-date calendar: expected 0 got %d", got)
	}
	if got := mustB2B(t, nil, nil, "V", LocationAll); got != 0 {
		t.Fatalf("empty inputs: expected 0 got %d", got)
	}
}

func TestCountBackToBacksInvalidLocation(t *testing.T) {
	games := []domain.Game{game(t, "2021-01-01", "T", "A")}
	_, err := CountBackToBacks(games, domain.DeriveCalendar(games), "T", Location("road"))
	if !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("expected ErrInvalidLocation, got %v", err)
	}
}
