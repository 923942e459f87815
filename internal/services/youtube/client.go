package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

const pingURL = "https://www.youtube.com/"

var (
	watchHosts = map[string]bool{
		"youtube.com":        true,
		"www.youtube.com":    true,
		"m.youtube.com":      true,
		"music.youtube.com":  true,
		"gaming.youtube.com": true,
	}
	pathPrefixes   = []string{"/embed/", "/v/", "/shorts/", "/live/"}
	videoIDPattern = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
)

type Client struct {
	httpClient      *http.Client
	metadataTimeout time.Duration
}

// NewClient creates a new YouTube client
func NewClient(cfg *config.YouTubeConfig) (*Client, error) {
	base, err := newBaseTransport(cfg.ProxyURL)
	if err != nil {
		return nil, err
	}
	return newClient(cfg, base)
}

func newClient(cfg *config.YouTubeConfig, base http.RoundTripper) (*Client, error) {
	transport, err := newHeaderTransport(cfg, base)
	if err != nil {
		return nil, err
	}

	// No client-wide timeout: it would also cut long stream reads
	return &Client{
		httpClient:      &http.Client{Transport: transport},
		metadataTimeout: cfg.MetadataTimeout,
	}, nil
}

// newExtractor returns a library client for a single request. The library
// mutates its client while extracting, so one is never shared.
func (c *Client) newExtractor() *youtube.Client {
	return &youtube.Client{HTTPClient: c.httpClient}
}

// IsYouTubeURL checks if the provided URL is a valid YouTube video URL
func (c *Client) IsYouTubeURL(rawURL string) bool {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return videoIDPattern.MatchString(videoIDFromURL(parsed))
}

// videoIDFromURL returns the ID candidate carried by a platform URL, or ""
// when the host or path is not a video page.
func videoIDFromURL(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if host == "youtu.be" {
		id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		return id
	}
	if !watchHosts[host] {
		return ""
	}
	if u.Path == "/watch" {
		return u.Query().Get("v")
	}
	for _, prefix := range pathPrefixes {
		if strings.HasPrefix(u.Path, prefix) {
			id, _, _ := strings.Cut(strings.TrimPrefix(u.Path, prefix), "/")
			return id
		}
	}
	return ""
}

// ParseYouTubeURL extracts video ID from YouTube URL. A bare video ID is
// accepted as well.
func (c *Client) ParseYouTubeURL(rawURL string) (string, error) {
	candidate := strings.TrimSpace(rawURL)
	if parsed, err := url.Parse(candidate); err == nil && parsed.Host != "" {
		candidate = videoIDFromURL(parsed)
	}

	if !videoIDPattern.MatchString(candidate) {
		return "", &ExtractionError{
			Op:   "parse url",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("could not extract video ID from YouTube URL: %s", rawURL),
		}
	}
	return candidate, nil
}

// GetVideoInfo retrieves video metadata
func (c *Client) GetVideoInfo(ctx context.Context, rawURL string) (*VideoInfo, error) {
	if c.metadataTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.metadataTimeout)
		defer cancel()
	}

	videoID, err := c.ParseYouTubeURL(rawURL)
	if err != nil {
		return nil, err
	}

	extractor := c.newExtractor()
	video, err := extractor.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, Classify("get video info", err)
	}

	info := mapVideo(video)
	info.extractor = extractor
	utils.LogDebug(ctx, "Fetched video metadata", utils.Fields{
		"video_id": info.ID,
		"formats":  len(info.Formats),
	})

	return info, nil
}

// OpenStream opens the byte stream for one format of an already fetched video.
// The stream lives as long as ctx.
func (c *Client) OpenStream(ctx context.Context, info *VideoInfo, format *Format) (io.ReadCloser, int64, error) {
	extractor := info.extractor
	if extractor == nil {
		extractor = c.newExtractor()
	}

	video := info.source
	if video == nil {
		var err error
		video, err = extractor.GetVideoContext(ctx, info.ID)
		if err != nil {
			return nil, 0, Classify("get video info", err)
		}
	}

	matches := video.Formats.Itag(format.Itag)
	if len(matches) == 0 {
		return nil, 0, Classify("open stream", fmt.Errorf("itag %d: %w", format.Itag, ErrFormatUnavailable))
	}

	stream, size, err := extractor.GetStreamContext(ctx, video, &matches[0])
	if err != nil {
		return nil, 0, Classify("open stream", err)
	}

	return stream, size, nil
}

// Ping checks that the platform answers through the configured transport
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, pingURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("platform unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("platform returned status %d", resp.StatusCode)
	}
	return nil
}
