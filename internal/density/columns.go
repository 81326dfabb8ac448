package density

import "fmt"

// WindowLengths lists the window lengths, in calendar entries, evaluated per
// team and location filter. Length 1 is the max-games-in-a-single-day baseline.
var WindowLengths = []int{1, 2, 3, 4, 5}

// MaxGamesColumn names a window-max column, e.g. Max_games_2_home. Downstream
// consumers parse the trailing _<days>_<location> tokens back into rule
// dictionaries, so the format is part of the output contract.
func MaxGamesColumn(nDays int, loc Location) string {
	return fmt.Sprintf("Max_games_%d_%s", nDays, loc)
}

// BackToBackColumn names a back-to-back column, e.g. Back2Backs_home.
func BackToBackColumn(loc Location) string {
	return fmt.Sprintf("Back2Backs_%s", loc)
}

// Columns returns the canonical column order of the metrics table: per
// location filter, the back-to-back count followed by the window maxima.
func Columns() []string {
	cols := make([]string, 0, len(Locations)*(len(WindowLengths)+1))
	for _, loc := range Locations {
		cols = append(cols, BackToBackColumn(loc))
		for _, n := range WindowLengths {
			cols = append(cols, MaxGamesColumn(n, loc))
		}
	}
	return cols
}
