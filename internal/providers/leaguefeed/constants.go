package leaguefeed

import "time"

const providerName = "leaguefeed"

const (
	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultPerPage     = 100
	defaultHTTPTimeout = 10 * time.Second
	defaultMaxPages    = 25
	defaultLeague      = "nba"
)
