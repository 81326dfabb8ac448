package domain

import "time"

// Game is one scheduled fixture in a season. Date carries the calendar day
// only (midnight UTC); schedule providers normalize on ingest.
type Game struct {
	ID       string    `json:"id"`
	Provider string    `json:"provider"`
	League   string    `json:"league"`
	Season   string    `json:"season"`
	Date     time.Time `json:"date"`
	HomeTeam string    `json:"homeTeam"`
	AwayTeam string    `json:"awayTeam"`
}

// TeamMetrics is one team's wide row of the density table. Values is keyed by
// column name; the owning table carries the canonical column order.
type TeamMetrics struct {
	Team   string         `json:"team"`
	Values map[string]int `json:"values"`
}

// Value returns a named metric, defaulting to 0 for unknown columns.
func (m TeamMetrics) Value(column string) int {
	return m.Values[column]
}

// MetricsTable is the merged per-team density table: exactly one row per team
// in the analyzed team set, rows sorted by team id.
type MetricsTable struct {
	Columns []string      `json:"columns"`
	Rows    []TeamMetrics `json:"rows"`
}

// Row returns the row for a team if present.
func (t MetricsTable) Row(team string) (TeamMetrics, bool) {
	for _, row := range t.Rows {
		if row.Team == team {
			return row, true
		}
	}
	return TeamMetrics{}, false
}

// Analysis is the result of one aggregation run over a season schedule. It is
// immutable once published to the store.
type Analysis struct {
	League     string       `json:"league"`
	Season     string       `json:"season"`
	ComputedAt time.Time    `json:"computedAt"`
	Games      []Game       `json:"games"`
	Calendar   []time.Time  `json:"calendar"`
	Teams      []string     `json:"teams"`
	Table      MetricsTable `json:"table"`
}
