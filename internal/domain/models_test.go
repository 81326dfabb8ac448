package domain

import "testing"

func TestMetricsTableRow(t *testing.T) {
	table := MetricsTable{
		Columns: []string{"Back2Backs_all"},
		Rows: []TeamMetrics{
			{Team: "BOS", Values: map[string]int{"Back2Backs_all": 2}},
			{Team: "LAL", Values: map[string]int{"Back2Backs_all": 0}},
		},
	}

	row, ok := table.Row("BOS")
	if !ok {
		t.Fatal("expected BOS row")
	}
	if row.Value("Back2Backs_all") != 2 {
		t.Fatalf("expected 2 got %d", row.Value("Back2Backs_all"))
	}

	if _, ok := table.Row("NYK"); ok {
		t.Fatal("expected miss for unknown team")
	}
}

func TestTeamMetricsValueDefaultsToZero(t *testing.T) {
	row := TeamMetrics{Team: "BOS", Values: map[string]int{}}
	if row.Value("Max_games_1_home") != 0 {
		t.Fatal("expected unknown column to read as 0")
	}
}
