// Package transcript retrieves the timed caption track for a YouTube video.
//
// Acquisition goes through two strategies: scraping the watch page for the
// embedded captions JSON, and the private InnerTube /player endpoint. The
// first strategy runs always; the second runs only when the first produced a
// well-formed but empty transcript. Every failure of the undocumented
// surface is classified into exactly one of the error types below before it
// leaves this package.
package transcript

import (
	"fmt"
	"strings"
)

// InvalidVideoIDError means no 11-character video id could be derived from
// the caller's input.
type InvalidVideoIDError struct {
	Input string
}

func (e *InvalidVideoIDError) Error() string {
	return fmt.Sprintf("impossible to retrieve a YouTube video ID from %q", e.Input)
}

// TooManyRequestsError means the watch page came back with a captcha,
// i.e. YouTube is rate limiting this IP. Reported, never retried.
type TooManyRequestsError struct {
	VideoID string
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("YouTube is receiving too many requests from this IP and now requires solving a captcha to continue (%s)", e.VideoID)
}

// VideoUnavailableError means the watch page carried no playability status,
// which YouTube does for deleted or private videos.
type VideoUnavailableError struct {
	VideoID string
}

func (e *VideoUnavailableError) Error() string {
	return fmt.Sprintf("the video is no longer available (%s)", e.VideoID)
}

// DisabledError means the video exists but exposes no captions block at all.
type DisabledError struct {
	VideoID string
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("transcript is disabled on this video (%s)", e.VideoID)
}

// NotAvailableError means the track list was empty, or the selected track's
// document could not be fetched with a success status.
type NotAvailableError struct {
	VideoID string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("no transcripts are available for this video (%s)", e.VideoID)
}

// NotAvailableLanguageError means tracks exist, but none in the requested
// language. AvailableLangs preserves the platform's track order.
type NotAvailableLanguageError struct {
	Lang           string
	AvailableLangs []string
	VideoID        string
}

func (e *NotAvailableLanguageError) Error() string {
	return fmt.Sprintf("no transcripts are available in %s for this video (%s), available languages: %s",
		e.Lang, e.VideoID, strings.Join(e.AvailableLangs, ", "))
}

// EmptyTranscriptError means a track was fetched successfully but parsed to
// zero entries. Method names the strategy that produced it; this is the only
// error that triggers the InnerTube fallback.
type EmptyTranscriptError struct {
	VideoID string
	Method  string
}

func (e *EmptyTranscriptError) Error() string {
	return fmt.Sprintf("empty transcript retrieved for this video (%s) using %s", e.VideoID, e.Method)
}

// NetworkError classifies a transport-level failure (connection, DNS,
// timeout, cancellation).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure while talking to YouTube: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParsingError classifies a response body that could not be decoded, or
// JSON that did not match the expected shape.
type ParsingError struct {
	Err error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("unable to parse YouTube response: %v", e.Err)
}

func (e *ParsingError) Unwrap() error { return e.Err }
