package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Markers on the watch page. The captions JSON is embedded between
// captionsMarker and videoDetailsBoundary; everything brittle about the
// undocumented markup is confined to these constants and extractCaptionsJSON.
const (
	captchaMarker        = `class="g-recaptcha"`
	playabilityMarker    = `"playabilityStatus":`
	captionsMarker       = `"captions":`
	videoDetailsBoundary = `,"videoDetails`
)

const maxWatchPageBytes = 6 * 1024 * 1024

const scrapeMethod = "HTML scraping"

// scrapeLister acquires the caption track list by fetching the watch page
// and cutting the embedded captions JSON out of the HTML.
type scrapeLister struct{}

func (scrapeLister) method() string { return scrapeMethod }

func (scrapeLister) listTracks(ctx context.Context, videoID, lang string) (trackList, error) {
	engine.IncrScrapeRequests()

	headers := map[string]string{"User-Agent": engine.Cfg.UserAgent}
	if lang != "" {
		headers["Accept-Language"] = lang
	}

	body, _, err := engine.Get(ctx, engine.Cfg.WatchBaseURL+"/watch?v="+videoID, headers, maxWatchPageBytes)
	if err != nil {
		return trackList{}, &NetworkError{Err: err}
	}
	page := string(body)

	if strings.Contains(page, captchaMarker) {
		return trackList{}, &TooManyRequestsError{VideoID: videoID}
	}
	if !strings.Contains(page, playabilityMarker) {
		return trackList{}, &VideoUnavailableError{VideoID: videoID}
	}

	fragment, ok := extractCaptionsJSON(page)
	if !ok {
		return trackList{}, &DisabledError{VideoID: videoID}
	}

	var captions captionList
	if err := json.Unmarshal([]byte(fragment), &captions); err != nil {
		return trackList{}, &ParsingError{Err: err}
	}
	if captions.PlayerCaptionsTracklistRenderer == nil {
		return trackList{}, &DisabledError{VideoID: videoID}
	}

	return trackList{
		tracks: captions.PlayerCaptionsTracklistRenderer.CaptionTracks,
		meta:   scrapeMeta(body),
	}, nil
}

// extractCaptionsJSON locates the captions JSON object embedded in the watch
// page, between the `"captions":` key and the `,"videoDetails` boundary.
// Returns false when the page carries no captions block at all.
func extractCaptionsJSON(page string) (string, bool) {
	_, after, found := strings.Cut(page, captionsMarker)
	if !found {
		return "", false
	}
	fragment, _, _ := strings.Cut(after, videoDetailsBoundary)
	return strings.ReplaceAll(fragment, "\n", ""), true
}

// scrapeMeta pulls the video title and channel name out of the watch page
// head. Best effort; an unparseable page just yields empty metadata.
func scrapeMeta(page []byte) VideoMeta {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return VideoMeta{}
	}
	title, _ := doc.Find(`meta[name="title"]`).Attr("content")
	channel, _ := doc.Find(`link[itemprop="name"]`).Attr("content")
	return VideoMeta{Title: title, Channel: channel}
}
