package reports

import (
	"fmt"
	"path/filepath"
)

// MetricsReportPath builds the path to a metrics report for a given date.
func MetricsReportPath(basePath, date string) string {
	return filepath.Join(basePath, "metrics", fmt.Sprintf("%s.csv", date))
}
