package transcriptserver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_transcript/internal/engine/transcript"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type LanguagesInput struct {
	Video string `json:"video" jsonschema:"YouTube video URL or 11-character video ID"`
}

type LanguagesOutput struct {
	VideoID   string   `json:"video_id"`
	Title     string   `json:"title,omitempty"`
	Channel   string   `json:"channel,omitempty"`
	Count     int      `json:"count"`
	Languages []string `json:"languages"`
}

func registerTranscriptLanguages(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_transcript_languages",
		Description: "List the caption languages available for a YouTube video, in the platform's default order. Use before youtube_transcript when the preferred language may not exist.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input LanguagesInput) (*mcp.CallToolResult, LanguagesOutput, error) {
		if input.Video == "" {
			return nil, LanguagesOutput{}, fmt.Errorf("video is required")
		}

		listing, err := transcript.ListTracks(ctx, input.Video)
		if err != nil {
			slog.Warn("youtube_transcript_languages error", slog.Any("error", err))
			return nil, LanguagesOutput{}, err
		}

		langs := make([]string, len(listing.Tracks))
		for i, t := range listing.Tracks {
			langs[i] = t.LanguageCode
		}
		return nil, LanguagesOutput{
			VideoID:   listing.VideoID,
			Title:     listing.Meta.Title,
			Channel:   listing.Meta.Channel,
			Count:     len(langs),
			Languages: langs,
		}, nil
	})
}
