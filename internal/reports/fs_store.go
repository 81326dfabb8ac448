package reports

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
)

// Store defines how written reports are read back.
type Store interface {
	LoadMetricsReport(date string) ([]byte, error)
	LatestReport() (string, []byte, error)
}

// FSStore reads reports from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed report store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMetricsReport reads the report for the given date (YYYY-MM-DD) from disk.
func (s *FSStore) LoadMetricsReport(date string) ([]byte, error) {
	if s == nil {
		return nil, errors.New("report store not configured")
	}
	if date == "" {
		return nil, errors.New("report date required")
	}
	return os.ReadFile(MetricsReportPath(s.basePath, date))
}

// LatestReport returns the newest report date and its contents.
func (s *FSStore) LatestReport() (string, []byte, error) {
	if s == nil {
		return "", nil, errors.New("report store not configured")
	}
	entries, err := os.ReadDir(filepath.Join(s.basePath, metricsDir))
	if err != nil {
		return "", nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".csv" {
			continue
		}
		dates = append(dates, e.Name()[:len(e.Name())-len(".csv")])
	}
	if len(dates) == 0 {
		return "", nil, os.ErrNotExist
	}
	sort.Strings(dates)
	latest := dates[len(dates)-1]
	data, err := s.LoadMetricsReport(latest)
	if err != nil {
		return "", nil, err
	}
	return latest, data, nil
}
