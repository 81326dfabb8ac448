package providers

import (
	"context"

	"schedule-density-service/internal/domain"
)

// ScheduleProvider defines how a season schedule is fetched and normalized.
// The season parameter selects which season's games to return; providers
// should interpret an empty season as their configured default. Returned games
// carry dates normalized to calendar days.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, season string) ([]domain.Game, error)
}
