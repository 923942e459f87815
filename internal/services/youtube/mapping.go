package youtube

import (
	"mime"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// containerAliases maps MIME subtypes to the extension users expect.
var containerAliases = map[string]string{
	"3gpp":       "3gp",
	"x-matroska": "mkv",
}

// mapVideo converts the extractor's video model into VideoInfo. Formats are
// kept in the order the platform reported them.
func mapVideo(video *youtube.Video) *VideoInfo {
	info := &VideoInfo{
		ID:          video.ID,
		Title:       video.Title,
		Description: video.Description,
		Author:      video.Author,
		Duration:    video.Duration,
		Views:       video.Views,
		Formats:     make([]Format, 0, len(video.Formats)),
		source:      video,
	}

	// The platform lists thumbnails smallest first
	if n := len(video.Thumbnails); n > 0 {
		info.ThumbnailURL = video.Thumbnails[n-1].URL
	}

	for _, f := range video.Formats {
		info.Formats = append(info.Formats, mapFormat(f))
	}

	return info
}

func mapFormat(f youtube.Format) Format {
	mediaType, codecs := parseMimeType(f.MimeType)

	return Format{
		Itag:          f.ItagNo,
		MimeType:      f.MimeType,
		Container:     containerFor(mediaType),
		Codecs:        codecs,
		Quality:       f.Quality,
		QualityLabel:  f.QualityLabel,
		AudioQuality:  f.AudioQuality,
		HasVideo:      hasVideoTrack(f, mediaType),
		HasAudio:      hasAudioTrack(f, mediaType),
		ContentLength: f.ContentLength,
		Bitrate:       f.Bitrate,
		Width:         f.Width,
		Height:        f.Height,
		FPS:           f.FPS,
	}
}

func parseMimeType(value string) (string, string) {
	if value == "" {
		return "", ""
	}
	mediaType, params, err := mime.ParseMediaType(value)
	if err != nil {
		essence, _, _ := strings.Cut(value, ";")
		return strings.ToLower(strings.TrimSpace(essence)), ""
	}
	return mediaType, params["codecs"]
}

func containerFor(mediaType string) string {
	_, subtype, ok := strings.Cut(mediaType, "/")
	if !ok || subtype == "" {
		return ""
	}
	if alias, found := containerAliases[subtype]; found {
		return alias
	}
	return subtype
}

func hasVideoTrack(f youtube.Format, mediaType string) bool {
	if !strings.HasPrefix(mediaType, "video/") {
		return false
	}
	return f.QualityLabel != "" || f.Width > 0 || f.Height > 0
}

func hasAudioTrack(f youtube.Format, mediaType string) bool {
	if strings.HasPrefix(mediaType, "audio/") {
		return true
	}
	return f.AudioChannels > 0 || f.AudioSampleRate != ""
}
