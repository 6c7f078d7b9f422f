package transcriptserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine/transcript"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type TranscriptInput struct {
	Video    string `json:"video" jsonschema:"YouTube video URL or 11-character video ID. Accepts watch, youtu.be, shorts, embed and /v/ URLs."`
	Language string `json:"language,omitempty" jsonschema:"Preferred caption language code (e.g. en). Exact match against available tracks, no locale fallback. Default: the platform's default track."`
	Text     bool   `json:"text,omitempty" jsonschema:"Return the transcript as a single plain-text string instead of timed entries"`
}

type TranscriptOutput struct {
	VideoID  string             `json:"video_id"`
	Title    string             `json:"title,omitempty"`
	Channel  string             `json:"channel,omitempty"`
	Language string             `json:"language"`
	Count    int                `json:"count"`
	Entries  []transcript.Entry `json:"entries,omitempty"`
	Text     string             `json:"text,omitempty"`
}

func registerTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript",
		Description: "Fetch the transcript (timed captions) of a YouTube video. Accepts a video URL or ID and an optional language code. Returns timed entries with text, offset and duration in seconds, or plain text. No API key required.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input TranscriptInput) (*mcp.CallToolResult, TranscriptOutput, error) {
		if input.Video == "" {
			return nil, TranscriptOutput{}, fmt.Errorf("video is required")
		}

		res, err := transcript.Fetch(ctx, input.Video, input.Language)
		if err != nil {
			slog.Warn("youtube_transcript error", slog.Any("error", err))
			return nil, TranscriptOutput{}, err
		}

		out := TranscriptOutput{
			VideoID:  res.VideoID,
			Title:    res.Meta.Title,
			Channel:  res.Meta.Channel,
			Language: res.Entries[0].Lang,
			Count:    len(res.Entries),
		}
		if input.Text {
			out.Text = transcript.PlainText(res.Entries)
		} else {
			out.Entries = res.Entries
		}
		return nil, out, nil
	})
}
