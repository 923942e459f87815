package downloader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	kkdai "github.com/kkdai/youtube/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube/youtubetest"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

const testURL = "https://example.com/watch?v=abc123"

func newTestDownloader(fake *youtubetest.Client) *Downloader {
	return NewDownloader(fake, &config.DownloadConfig{FilenameMaxLength: 100})
}

func requireAppError(t *testing.T, err error, code utils.ErrorCode, status int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.StatusCode)
	return appErr
}

func TestInspectFiltersFormats(t *testing.T) {
	fake := &youtubetest.Client{Info: youtubetest.SampleInfo()}

	info, err := newTestDownloader(fake).Inspect(context.Background(), testURL)
	require.NoError(t, err)

	require.Len(t, info.Formats, 3)
	for _, f := range info.Formats {
		assert.True(t, f.HasVideo || f.HasAudio, "itag %d has no tracks", f.Itag)
	}
	assert.Equal(t, 1, fake.InfoCalls())
}

func TestInspectRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name string
		link string
		code utils.ErrorCode
	}{
		{"Missing", "  ", utils.ErrorCodeMissingParameter},
		{"Not a URL", "not a url", utils.ErrorCodeInvalidLinkFormat},
		{"Wrong scheme", "ftp://example.com/watch?v=abc123", utils.ErrorCodeInvalidLinkFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &youtubetest.Client{Info: youtubetest.SampleInfo()}

			_, err := newTestDownloader(fake).Inspect(context.Background(), tc.link)
			requireAppError(t, err, tc.code, http.StatusBadRequest)
			assert.Zero(t, fake.InfoCalls())
		})
	}
}

func TestInspectUpstreamErrors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		code    utils.ErrorCode
		status  int
		message string
	}{
		{
			name:    "Gone status text",
			err:     youtube.Classify("get video info", errors.New("Status code: 410")),
			code:    utils.ErrorCodeUpstreamAccessDenied,
			status:  http.StatusInternalServerError,
			message: utils.AccessDeniedMessage,
		},
		{
			name:    "Typed forbidden",
			err:     youtube.Classify("get video info", kkdai.ErrUnexpectedStatusCode(403)),
			code:    utils.ErrorCodeUpstreamAccessDenied,
			status:  http.StatusInternalServerError,
			message: utils.AccessDeniedMessage,
		},
		{
			name:    "Private video",
			err:     youtube.Classify("get video info", kkdai.ErrVideoPrivate),
			code:    utils.ErrorCodeUpstreamRestricted,
			status:  http.StatusInternalServerError,
			message: "get video info: " + kkdai.ErrVideoPrivate.Error(),
		},
		{
			name:    "Invalid id",
			err:     &youtube.ExtractionError{Op: "parse url", Kind: youtube.KindInvalidInput, Err: errors.New("bad id")},
			code:    utils.ErrorCodeValidationError,
			status:  http.StatusBadRequest,
			message: "parse url: bad id",
		},
		{
			name:    "Unclassified passes text through",
			err:     errors.New("connection reset by peer"),
			code:    utils.ErrorCodeExtractionFailed,
			status:  http.StatusInternalServerError,
			message: "connection reset by peer",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &youtubetest.Client{InfoErr: tc.err}

			_, err := newTestDownloader(fake).Inspect(context.Background(), testURL)
			appErr := requireAppError(t, err, tc.code, tc.status)
			assert.Equal(t, tc.message, appErr.Message)
			assert.NotContains(t, appErr.Message, "410")
		})
	}
}

func TestOpenStreamsFormat(t *testing.T) {
	fake := &youtubetest.Client{
		Info:    youtubetest.SampleInfo(),
		Payload: []byte("video-bytes"),
		Size:    11,
	}

	download, err := newTestDownloader(fake).Open(context.Background(), testURL, "22")
	require.NoError(t, err)

	assert.Equal(t, 22, download.Format.Itag)
	assert.Equal(t, "Hello_World_Test.mp4", download.FileName)
	assert.Equal(t, `video/mp4; codecs="avc1.64001F, mp4a.40.2"`, download.ContentType)
	assert.Equal(t, int64(11), download.Size)

	body, err := io.ReadAll(download)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(body))

	require.NoError(t, download.Close())
	require.Len(t, fake.Streams(), 1)
	assert.True(t, fake.Streams()[0].Closed())
}

func TestOpenFallsBackToReportedLength(t *testing.T) {
	fake := &youtubetest.Client{Info: youtubetest.SampleInfo()}

	download, err := newTestDownloader(fake).Open(context.Background(), testURL, "137")
	require.NoError(t, err)
	defer download.Close()

	assert.Equal(t, int64(1048576), download.Size)
}

func TestOpenDefaultsContentType(t *testing.T) {
	info := youtubetest.SampleInfo()
	info.Formats[2].MimeType = ""
	fake := &youtubetest.Client{Info: info}

	download, err := newTestDownloader(fake).Open(context.Background(), testURL, "251")
	require.NoError(t, err)
	defer download.Close()

	assert.Equal(t, "application/octet-stream", download.ContentType)
	assert.Equal(t, "Hello_World_Test.webm", download.FileName)
}

func TestOpenUnknownItag(t *testing.T) {
	for _, itag := range []string{"18", "999", "abc"} {
		t.Run(itag, func(t *testing.T) {
			fake := &youtubetest.Client{Info: youtubetest.SampleInfo()}

			_, err := newTestDownloader(fake).Open(context.Background(), testURL, itag)
			requireAppError(t, err, utils.ErrorCodeFormatNotFound, http.StatusBadRequest)
			assert.Zero(t, fake.StreamCalls())
		})
	}
}

func TestOpenMissingParameters(t *testing.T) {
	fake := &youtubetest.Client{Info: youtubetest.SampleInfo()}
	d := newTestDownloader(fake)

	_, err := d.Open(context.Background(), "", "22")
	requireAppError(t, err, utils.ErrorCodeMissingParameter, http.StatusBadRequest)

	_, err = d.Open(context.Background(), testURL, " ")
	requireAppError(t, err, utils.ErrorCodeMissingParameter, http.StatusBadRequest)

	_, err = d.Open(context.Background(), "javascript:alert(1)", "22")
	requireAppError(t, err, utils.ErrorCodeInvalidLinkFormat, http.StatusBadRequest)

	assert.Zero(t, fake.InfoCalls())
}

func TestOpenStreamFailure(t *testing.T) {
	fake := &youtubetest.Client{
		Info:      youtubetest.SampleInfo(),
		StreamErr: errors.New("chunk request failed"),
	}

	_, err := newTestDownloader(fake).Open(context.Background(), testURL, "22")
	appErr := requireAppError(t, err, utils.ErrorCodeStreamFailed, http.StatusInternalServerError)
	assert.Equal(t, "chunk request failed", appErr.Message)
}

func TestOpenStaleFormat(t *testing.T) {
	fake := &youtubetest.Client{
		Info:      youtubetest.SampleInfo(),
		StreamErr: youtube.Classify("open stream", youtube.ErrFormatUnavailable),
	}

	_, err := newTestDownloader(fake).Open(context.Background(), testURL, "22")
	requireAppError(t, err, utils.ErrorCodeFormatNotFound, http.StatusBadRequest)
}

func TestPlayableFormats(t *testing.T) {
	formats := []youtube.Format{
		{Itag: 1, HasVideo: true},
		{Itag: 2},
		{Itag: 3, HasAudio: true},
	}

	playable := PlayableFormats(formats)
	require.Len(t, playable, 2)
	assert.Equal(t, 1, playable[0].Itag)
	assert.Equal(t, 3, playable[1].Itag)
}
