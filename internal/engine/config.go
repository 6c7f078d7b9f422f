package engine

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultUserAgent is the browser identity sent on watch-page and caption
// fetches. YouTube serves reduced markup to unrecognized clients, so this
// string is load-bearing; override it via Config.UserAgent, not by editing
// the constant.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

const (
	defaultWatchBaseURL       = "https://www.youtube.com"
	defaultInnertubePlayerURL = "https://www.youtube.com/youtubei/v1/player"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	UserAgent          string
	WatchBaseURL       string // base for /watch?v= pages; tests point this at a fake server
	InnertubePlayerURL string // InnerTube /player endpoint
	FetchTimeout       time.Duration
	RequestsPerSecond  float64 // outbound pacing; 0 = unlimited
	HTTPClient         *http.Client
	BrowserClient      *BrowserClient // nil = plain HTTP with the fixed User-Agent
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

var limiter *rate.Limiter

// Init initializes the engine with the given configuration,
// filling in defaults for anything left zero.
func Init(c Config) {
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.WatchBaseURL == "" {
		c.WatchBaseURL = defaultWatchBaseURL
	}
	if c.InnertubePlayerURL == "" {
		c.InnertubePlayerURL = defaultInnertubePlayerURL
	}
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = 15 * time.Second
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.FetchTimeout}
	}

	limiter = nil
	if c.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(c.RequestsPerSecond), 1)
	}

	cfg = c
	Cfg = &cfg
}
