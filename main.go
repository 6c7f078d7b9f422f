// go_transcript — YouTube transcript MCP server.
//
// Exposes two MCP tools: youtube_transcript, youtube_transcript_languages.
// Fetches captions through the watch page (with InnerTube API fallback),
// no API key or authentication required.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_transcript/internal/engine"
	"github.com/anatolykoptev/go_transcript/internal/transcriptserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	initEngine()

	slog.Info("starting go_transcript",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_transcript",
		Version: version,
	}, nil)

	transcriptserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 2))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_transcript",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		UserAgent:          env.Str("YT_USER_AGENT", engine.DefaultUserAgent),
		WatchBaseURL:       env.Str("YT_WATCH_BASE_URL", ""),
		InnertubePlayerURL: env.Str("YT_INNERTUBE_PLAYER_URL", ""),
		FetchTimeout:       env.Duration("FETCH_TIMEOUT", 15*time.Second),
		RequestsPerSecond:  env.Float("YT_REQUESTS_PER_SECOND", 2),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}

	// Chrome TLS fingerprint keeps YouTube serving full markup; without it
	// requests fall back to plain HTTP with the fixed User-Agent.
	bc, err := engine.NewBrowserClient()
	if err != nil {
		slog.Warn("browser client init failed, using plain HTTP", slog.Any("error", err))
	} else {
		c.BrowserClient = bc
		slog.Info("browser client initialized")
	}

	engine.Init(c)
}
