package server

import (
	"schedule-density-service/internal/config"
	"schedule-density-service/internal/reports"
)

type reportComponents struct {
	store  reports.Store
	writer *reports.Writer
}

func buildReports(cfg config.Config) reportComponents {
	basePath := cfg.Reports.Folder
	return reportComponents{
		store:  reports.NewFSStore(basePath),
		writer: reports.NewWriter(basePath, cfg.Reports.RetentionDays),
	}
}
