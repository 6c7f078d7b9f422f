package transcript

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const testVideoID = "dQw4w9WgXcQ"

// initTestEngine points the engine at a fake upstream. Cfg is process-global,
// so tests that touch the network must not run in parallel.
func initTestEngine(t *testing.T, baseURL string) {
	t.Helper()
	engine.Init(engine.Config{
		WatchBaseURL:       baseURL,
		InnertubePlayerURL: baseURL + "/youtubei/v1/player",
		HTTPClient:         &http.Client{Timeout: 5 * time.Second},
	})
}

// watchPage renders a minimal watch page embedding the given captions JSON
// between the markers the scraper splits on.
func watchPage(captionsJSON string) string {
	return `<!DOCTYPE html><html><head>` +
		`<meta name="title" content="Test Video">` +
		`<link itemprop="name" content="Test Channel">` +
		`</head><body><script>var ytInitialPlayerResponse = ` +
		`{"responseContext":{},"playabilityStatus":{"status":"OK"},"captions":` +
		captionsJSON +
		`,"videoDetails":{"videoId":"` + testVideoID + `"}};</script></body></html>`
}

// captionsJSON renders the captions block for the given tracks.
func captionsJSON(t *testing.T, tracks ...CaptionTrack) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{
		"playerCaptionsTracklistRenderer": map[string]any{
			"captionTracks": tracks,
		},
	})
	if err != nil {
		t.Fatalf("marshal captions: %v", err)
	}
	return string(data)
}
