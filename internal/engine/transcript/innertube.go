package transcript

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

const innertubeClientVersion = "2.20250222.10.00"

const maxPlayerBytes = 3 * 1024 * 1024

const innertubeMethod = "InnerTube API"

type innertubeReq struct {
	Context innertubeCtx `json:"context"`
	VideoID string       `json:"videoId"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	UserAgent     string `json:"userAgent"`
}

// playerResponse is the slice of the /player response this package uses.
// Captions is a pointer: its absence means captions are disabled.
type playerResponse struct {
	Captions     *captionList `json:"captions"`
	VideoDetails struct {
		Title  string `json:"title"`
		Author string `json:"author"`
	} `json:"videoDetails"`
}

// innertubeLister acquires the caption track list from the private InnerTube
// /player endpoint. The Origin and Referer headers make the request pass the
// endpoint's same-origin check.
type innertubeLister struct{}

func (innertubeLister) method() string { return innertubeMethod }

func (innertubeLister) listTracks(ctx context.Context, videoID, lang string) (trackList, error) {
	engine.IncrInnertubeRequests()

	payload, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:    "WEB",
				ClientVersion: innertubeClientVersion,
				UserAgent:     engine.Cfg.UserAgent,
			},
		},
	})
	if err != nil {
		return trackList{}, &ParsingError{Err: err}
	}

	headers := map[string]string{
		"Content-Type": "application/json",
		"User-Agent":   engine.Cfg.UserAgent,
		"Origin":       engine.Cfg.WatchBaseURL,
		"Referer":      engine.Cfg.WatchBaseURL + "/watch?v=" + videoID,
	}
	if lang != "" {
		headers["Accept-Language"] = lang
	}

	body, status, err := engine.Post(ctx, engine.Cfg.InnertubePlayerURL+"?prettyPrint=false", headers, payload, maxPlayerBytes)
	if err != nil {
		return trackList{}, &NetworkError{Err: err}
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return trackList{}, &NotAvailableError{VideoID: videoID}
	}

	var player playerResponse
	if err := json.Unmarshal(body, &player); err != nil {
		return trackList{}, &ParsingError{Err: err}
	}
	if player.Captions == nil || player.Captions.PlayerCaptionsTracklistRenderer == nil {
		return trackList{}, &DisabledError{VideoID: videoID}
	}

	return trackList{
		tracks: player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks,
		meta:   VideoMeta{Title: player.VideoDetails.Title, Channel: player.VideoDetails.Author},
	}, nil
}
