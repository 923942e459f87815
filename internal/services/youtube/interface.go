package youtube

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"
)

// YouTubeClient interface for YouTube operations
type YouTubeClient interface {
	// IsYouTubeURL checks if the provided URL is a valid YouTube video URL
	IsYouTubeURL(url string) bool

	// ParseYouTubeURL extracts video ID from YouTube URL
	ParseYouTubeURL(url string) (string, error)

	// GetVideoInfo retrieves video metadata and the full format list
	GetVideoInfo(ctx context.Context, url string) (*VideoInfo, error)

	// OpenStream opens the byte stream of one format. The returned size is
	// zero when the platform does not report it.
	OpenStream(ctx context.Context, info *VideoInfo, format *Format) (io.ReadCloser, int64, error)

	// Ping checks that the platform is reachable
	Ping(ctx context.Context) error
}

// VideoInfo contains YouTube video metadata
type VideoInfo struct {
	ID           string
	Title        string
	Description  string
	Author       string
	ThumbnailURL string
	Duration     time.Duration
	Views        int
	Formats      []Format

	source    *youtube.Video
	extractor *youtube.Client
}

// Format describes one encoding variant of a video.
type Format struct {
	Itag          int
	MimeType      string
	Container     string
	Codecs        string
	Quality       string
	QualityLabel  string
	AudioQuality  string
	HasVideo      bool
	HasAudio      bool
	ContentLength int64
	Bitrate       int
	Width         int
	Height        int
	FPS           int
}

const (
	KindVideoAudio = "video+audio"
	KindVideoOnly  = "video"
	KindAudioOnly  = "audio"
)

// Kind buckets the format by its capability flags. It is empty for formats
// that carry neither track.
func (f Format) Kind() string {
	switch {
	case f.HasVideo && f.HasAudio:
		return KindVideoAudio
	case f.HasVideo:
		return KindVideoOnly
	case f.HasAudio:
		return KindAudioOnly
	default:
		return ""
	}
}

// Playable reports whether the format has at least one media track.
func (f Format) Playable() bool {
	return f.HasVideo || f.HasAudio
}

// FindFormat returns the format whose itag matches the given identifier.
func (v *VideoInfo) FindFormat(itag string) *Format {
	itag = strings.TrimSpace(itag)
	for i := range v.Formats {
		if strconv.Itoa(v.Formats[i].Itag) == itag {
			return &v.Formats[i]
		}
	}
	return nil
}
