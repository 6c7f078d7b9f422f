package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	ScrapeRequests     atomic.Int64
	InnertubeRequests  atomic.Int64
	TrackFetches       atomic.Int64
	Fallbacks          atomic.Int64
	FetchErrors        atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"scrape_requests":     metrics.ScrapeRequests.Load(),
		"innertube_requests":  metrics.InnertubeRequests.Load(),
		"track_fetches":       metrics.TrackFetches.Load(),
		"fallbacks":           metrics.Fallbacks.Load(),
		"fetch_errors":        metrics.FetchErrors.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"transcript_requests", "scrape_requests", "innertube_requests",
		"track_fetches", "fallbacks", "fetch_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the transcript sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrScrapeRequests()     { metrics.ScrapeRequests.Add(1) }
func IncrInnertubeRequests()  { metrics.InnertubeRequests.Add(1) }
func IncrTrackFetches()       { metrics.TrackFetches.Add(1) }
func IncrFallbacks()          { metrics.Fallbacks.Add(1) }
func IncrFetchErrors()        { metrics.FetchErrors.Add(1) }
