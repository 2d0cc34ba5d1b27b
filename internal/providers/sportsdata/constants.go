package sportsdata

import "time"

const (
	providerName       = "sportsdata"
	defaultBaseURL     = "http://localhost:8000"
	defaultHTTPTimeout = 10 * time.Second
)
