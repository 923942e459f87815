package youtube

import (
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVideo() *youtube.Video {
	return &youtube.Video{
		ID:          "dQw4w9WgXcQ",
		Title:       "Sample, Video!",
		Description: "desc",
		Author:      "Channel",
		Duration:    212 * time.Second,
		Views:       42,
		Thumbnails: youtube.Thumbnails{
			{URL: "https://i.ytimg.com/small.jpg", Width: 120, Height: 90},
			{URL: "https://i.ytimg.com/large.jpg", Width: 1280, Height: 720},
		},
		Formats: youtube.FormatList{
			{
				ItagNo:        18,
				MimeType:      `video/mp4; codecs="avc1.42001E, mp4a.40.2"`,
				QualityLabel:  "360p",
				AudioQuality:  "AUDIO_QUALITY_LOW",
				AudioChannels: 2,
				Width:         640,
				Height:        360,
				Bitrate:       500000,
			},
			{
				ItagNo:        137,
				MimeType:      `video/mp4; codecs="avc1.640028"`,
				QualityLabel:  "1080p",
				Width:         1920,
				Height:        1080,
				FPS:           30,
				ContentLength: 123456,
			},
			{
				ItagNo:          251,
				MimeType:        `audio/webm; codecs="opus"`,
				AudioQuality:    "AUDIO_QUALITY_MEDIUM",
				AudioChannels:   2,
				AudioSampleRate: "48000",
				Bitrate:         160000,
			},
			{
				ItagNo:   999,
				MimeType: "text/plain",
			},
		},
	}
}

func TestMapVideo(t *testing.T) {
	info := mapVideo(sampleVideo())

	assert.Equal(t, "dQw4w9WgXcQ", info.ID)
	assert.Equal(t, "Sample, Video!", info.Title)
	assert.Equal(t, "https://i.ytimg.com/large.jpg", info.ThumbnailURL)
	assert.Equal(t, 212*time.Second, info.Duration)
	assert.Equal(t, 42, info.Views)
	require.Len(t, info.Formats, 4)

	muxed := info.Formats[0]
	assert.Equal(t, 18, muxed.Itag)
	assert.Equal(t, "mp4", muxed.Container)
	assert.Equal(t, "avc1.42001E, mp4a.40.2", muxed.Codecs)
	assert.Equal(t, KindVideoAudio, muxed.Kind())

	videoOnly := info.Formats[1]
	assert.Equal(t, KindVideoOnly, videoOnly.Kind())
	assert.Equal(t, int64(123456), videoOnly.ContentLength)

	audioOnly := info.Formats[2]
	assert.Equal(t, "webm", audioOnly.Container)
	assert.Equal(t, KindAudioOnly, audioOnly.Kind())

	assert.False(t, info.Formats[3].Playable())
	assert.Empty(t, info.Formats[3].Kind())
}

func TestMapVideoWithoutThumbnails(t *testing.T) {
	video := sampleVideo()
	video.Thumbnails = nil

	assert.Empty(t, mapVideo(video).ThumbnailURL)
}

func TestContainerFor(t *testing.T) {
	assert.Equal(t, "3gp", containerFor("video/3gpp"))
	assert.Equal(t, "mp4", containerFor("audio/mp4"))
	assert.Empty(t, containerFor(""))
}

func TestFindFormat(t *testing.T) {
	info := mapVideo(sampleVideo())

	found := info.FindFormat(" 137 ")
	require.NotNil(t, found)
	assert.Equal(t, 137, found.Itag)

	assert.Nil(t, info.FindFormat("22"))
	assert.Nil(t, info.FindFormat("abc"))
}
