package models

import (
	"math"

	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
)

// VideoInfoRequest is bound from the query string of the metadata endpoint.
type VideoInfoRequest struct {
	URL string `form:"url"`
}

// DownloadRequest is bound from the query string of the download endpoint.
type DownloadRequest struct {
	URL  string `form:"url"`
	Itag string `form:"itag"`
}

type VideoInfoResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Thumbnail       string           `json:"thumbnail"`
	Description     string           `json:"description,omitempty"`
	Author          string           `json:"author,omitempty"`
	DurationSeconds int64            `json:"duration_seconds,omitempty"`
	Duration        string           `json:"duration,omitempty"`
	ViewCount       int              `json:"view_count,omitempty"`
	Formats         []FormatResponse `json:"formats"`
}

type FormatResponse struct {
	Itag          int    `json:"itag"`
	MimeType      string `json:"mime_type"`
	Container     string `json:"container"`
	Codecs        string `json:"codecs,omitempty"`
	Kind          string `json:"kind"`
	HasVideo      bool   `json:"has_video"`
	HasAudio      bool   `json:"has_audio"`
	QualityLabel  string `json:"quality_label,omitempty"`
	AudioQuality  string `json:"audio_quality,omitempty"`
	ContentLength int64  `json:"content_length,omitempty"`
	Bitrate       int    `json:"bitrate,omitempty"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	FPS           int    `json:"fps,omitempty"`
}

type ErrorResponse struct {
	Error     string                 `json:"error"`
	Code      string                 `json:"code"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Timestamp string                 `json:"timestamp"`
}

const unknownMimeType = "unknown/unknown"

// NewVideoInfoResponse converts service metadata into the API shape.
func NewVideoInfoResponse(info *youtube.VideoInfo) VideoInfoResponse {
	response := VideoInfoResponse{
		ID:          info.ID,
		Title:       info.Title,
		Thumbnail:   info.ThumbnailURL,
		Description: info.Description,
		Author:      info.Author,
		ViewCount:   info.Views,
		Formats:     make([]FormatResponse, 0, len(info.Formats)),
	}

	if info.Duration > 0 {
		response.DurationSeconds = int64(math.Round(info.Duration.Seconds()))
		response.Duration = info.Duration.String()
	}

	for _, f := range info.Formats {
		mimeType := f.MimeType
		if mimeType == "" {
			mimeType = unknownMimeType
		}
		response.Formats = append(response.Formats, FormatResponse{
			Itag:          f.Itag,
			MimeType:      mimeType,
			Container:     f.Container,
			Codecs:        f.Codecs,
			Kind:          f.Kind(),
			HasVideo:      f.HasVideo,
			HasAudio:      f.HasAudio,
			QualityLabel:  f.QualityLabel,
			AudioQuality:  f.AudioQuality,
			ContentLength: f.ContentLength,
			Bitrate:       f.Bitrate,
			Width:         f.Width,
			Height:        f.Height,
			FPS:           f.FPS,
		})
	}

	return response
}
