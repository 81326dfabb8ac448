package poller

import (
	"context"
	"testing"
	"time"

	"schedule-density-service/internal/domain"
	"schedule-density-service/internal/teststubs"
)

func BenchmarkPollerRunOnce(b *testing.B) {
	date := time.Date(2021, 10, 19, 0, 0, 0, 0, time.UTC)
	games := make([]domain.Game, 0, 60)
	teams := []string{"MIL", "BKN", "BOS", "NYK", "LAL", "GSW"}
	for day := 0; day < 20; day++ {
		d := date.AddDate(0, 0, day)
		for i := 0; i+1 < len(teams); i += 2 {
			games = append(games, domain.Game{
				Date:     d,
				HomeTeam: teams[i],
				AwayTeam: teams[i+1],
			})
		}
	}

	provider := &teststubs.StubProvider{Games: games}
	p := New(provider, &teststubs.StubPublisher{}, nil, nil, nil, time.Second, "nba", "2021")
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = p.runOnce(ctx)
	}
}
