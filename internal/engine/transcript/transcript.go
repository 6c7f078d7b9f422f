package transcript

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const maxTrackBytes = 512 * 1024

// Result is a fetched transcript: the resolved id, the entries of the
// selected track in chronological order, and best-effort video metadata.
type Result struct {
	VideoID string
	Entries []Entry
	Meta    VideoMeta
}

// trackLister is one self-contained method of acquiring a video's caption
// track list. The two strategies differ only in this step; track selection,
// document fetch, and parsing are shared.
type trackLister interface {
	method() string
	listTracks(ctx context.Context, videoID, lang string) (trackList, error)
}

// Fetch retrieves the transcript for a raw video id or any supported URL
// form. lang is an optional exact-match language preference; empty means the
// platform's default track. HTML scraping runs first; the InnerTube API runs
// only when scraping produced a well-formed but empty transcript. Every
// other error propagates unchanged.
func Fetch(ctx context.Context, input, lang string) (*Result, error) {
	engine.IncrTranscriptRequests()

	videoID, err := ResolveVideoID(input)
	if err != nil {
		return nil, err
	}

	res, err := run(ctx, scrapeLister{}, videoID, lang)
	var empty *EmptyTranscriptError
	if errors.As(err, &empty) {
		slog.Warn("transcript: scrape returned no entries, falling back to InnerTube",
			slog.String("id", videoID))
		engine.IncrFallbacks()
		return run(ctx, innertubeLister{}, videoID, lang)
	}
	return res, err
}

// TrackListing is the result of ListTracks.
type TrackListing struct {
	VideoID string
	Tracks  []CaptionTrack
	Meta    VideoMeta
}

// ListTracks reports the caption tracks available for a video, with
// best-effort metadata. The InnerTube API is consulted when the watch page
// yields nothing usable.
func ListTracks(ctx context.Context, input string) (*TrackListing, error) {
	videoID, err := ResolveVideoID(input)
	if err != nil {
		return nil, err
	}

	list, err := scrapeLister{}.listTracks(ctx, videoID, "")
	if err != nil {
		slog.Debug("transcript: scrape track listing failed, trying InnerTube",
			slog.String("id", videoID), slog.Any("error", err))
		list, err = innertubeLister{}.listTracks(ctx, videoID, "")
		if err != nil {
			return nil, err
		}
	}
	return &TrackListing{VideoID: videoID, Tracks: list.tracks, Meta: list.meta}, nil
}

// run is the pipeline shared by both strategies: acquire the track list,
// select one track, fetch its document, parse it.
func run(ctx context.Context, lister trackLister, videoID, lang string) (*Result, error) {
	list, err := lister.listTracks(ctx, videoID, lang)
	if err != nil {
		return nil, err
	}

	track, err := selectTrack(list.tracks, lang, videoID)
	if err != nil {
		return nil, err
	}

	document, err := fetchTrackDocument(ctx, track, lang, videoID)
	if err != nil {
		return nil, err
	}

	entries := parseTimedText(document, lang, track.LanguageCode)
	if len(entries) == 0 {
		return nil, &EmptyTranscriptError{VideoID: videoID, Method: lister.method()}
	}

	return &Result{VideoID: videoID, Entries: entries, Meta: list.meta}, nil
}

// fetchTrackDocument retrieves the timed-text document for one track with
// the same headers as the page fetch. A non-success status means the track
// location the platform handed out does not actually serve a transcript.
func fetchTrackDocument(ctx context.Context, track CaptionTrack, lang, videoID string) (string, error) {
	engine.IncrTrackFetches()

	headers := map[string]string{"User-Agent": engine.Cfg.UserAgent}
	if lang != "" {
		headers["Accept-Language"] = lang
	}

	body, status, err := engine.Get(ctx, track.BaseURL, headers, maxTrackBytes)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return "", &NotAvailableError{VideoID: videoID}
	}
	return string(body), nil
}
