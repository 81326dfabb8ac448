package leaguefeed

import (
	"testing"
	"time"
)

func TestMapGameNormalizesDate(t *testing.T) {
	game, err := mapGame(gameResponse{
		ID:          7,
		Date:        "2021-10-19T00:00:00.000Z",
		Season:      2021,
		HomeTeam:    teamResponse{Abbreviation: "MIL"},
		VisitorTeam: teamResponse{Abbreviation: "BKN"},
	}, "nba", "2021")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, 10, 19, 0, 0, 0, 0, time.UTC)
	if !game.Date.Equal(want) {
		t.Fatalf("expected %s, got %s", want, game.Date)
	}
}

func TestMapGameFallsBackToUpstreamSeason(t *testing.T) {
	game, err := mapGame(gameResponse{
		ID:          8,
		Date:        "2021-10-19",
		Season:      2021,
		HomeTeam:    teamResponse{Abbreviation: "MIL"},
		VisitorTeam: teamResponse{Abbreviation: "BKN"},
	}, "nba", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.Season != "2021" {
		t.Fatalf("expected upstream season, got %q", game.Season)
	}
}

func TestMapGameRejectsBadDate(t *testing.T) {
	_, err := mapGame(gameResponse{ID: 9, Date: "not-a-date"}, "nba", "2021")
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestTeamNamePrefersAbbreviation(t *testing.T) {
	cases := []struct {
		in   teamResponse
		want string
	}{
		{teamResponse{Abbreviation: "MIL", FullName: "Milwaukee Bucks", Name: "Bucks"}, "MIL"},
		{teamResponse{FullName: "Milwaukee Bucks", Name: "Bucks"}, "Milwaukee Bucks"},
		{teamResponse{Name: "Bucks"}, "Bucks"},
	}
	for _, tc := range cases {
		if got := teamName(tc.in); got != tc.want {
			t.Fatalf("teamName(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
