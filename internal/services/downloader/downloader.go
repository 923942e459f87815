package downloader

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/denisAlshanov/ytgrab/internal/config"
	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
	"github.com/denisAlshanov/ytgrab/internal/utils"
)

const defaultContentType = "application/octet-stream"

// Downloader resolves metadata and streams for the HTTP handlers. It keeps no
// state between calls.
type Downloader struct {
	youtube youtube.YouTubeClient
	config  *config.DownloadConfig
}

// Download is an opened stream plus the response metadata derived from it.
// Callers must Close it.
type Download struct {
	Info        *youtube.VideoInfo
	Format      *youtube.Format
	FileName    string
	ContentType string
	Size        int64

	reader io.ReadCloser
	cancel context.CancelFunc
}

func (d *Download) Read(p []byte) (int, error) {
	return d.reader.Read(p)
}

func (d *Download) Close() error {
	err := d.reader.Close()
	if d.cancel != nil {
		d.cancel()
	}
	return err
}

func NewDownloader(youtube youtube.YouTubeClient, cfg *config.DownloadConfig) *Downloader {
	return &Downloader{
		youtube: youtube,
		config:  cfg,
	}
}

// Inspect validates link, fetches its metadata and keeps only formats that
// carry video, audio or both.
func (d *Downloader) Inspect(ctx context.Context, link string) (*youtube.VideoInfo, error) {
	link, err := d.validateLink(link)
	if err != nil {
		return nil, err
	}

	info, err := d.fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	utils.LogInfo(ctx, "Fetched video info", utils.Fields{
		"video_id": info.ID,
		"formats":  len(info.Formats),
	})

	return info, nil
}

// Open re-fetches metadata for link, resolves the format with the given itag
// and opens its stream. The stream is bound to ctx.
func (d *Downloader) Open(ctx context.Context, link, itag string) (*Download, error) {
	itag = strings.TrimSpace(itag)
	link, err := d.validateLink(link)
	if err != nil {
		return nil, err
	}
	if itag == "" {
		return nil, utils.NewMissingParameterError("itag")
	}

	info, err := d.fetch(ctx, link)
	if err != nil {
		return nil, err
	}

	format := info.FindFormat(itag)
	if format == nil {
		utils.LogWarn(ctx, "Requested format not found", utils.Fields{
			"video_id": info.ID,
			"itag":     itag,
		})
		return nil, utils.NewFormatNotFoundError(itag)
	}

	var cancel context.CancelFunc
	if d.config.DownloadTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, d.config.DownloadTimeout)
	}

	reader, size, err := d.youtube.OpenStream(ctx, info, format)
	if err != nil {
		if cancel != nil {
			cancel()
		}
		utils.LogError(ctx, "Failed to open stream", err, utils.Fields{
			"video_id": info.ID,
			"itag":     format.Itag,
		})
		if youtube.KindOf(err) == youtube.KindFormatUnavailable {
			return nil, utils.NewFormatNotFoundError(itag)
		}
		return nil, toAppError(err, utils.NewStreamError)
	}

	contentType := format.MimeType
	if contentType == "" {
		contentType = defaultContentType
	}
	if size <= 0 {
		size = format.ContentLength
	}

	return &Download{
		Info:        info,
		Format:      format,
		FileName:    utils.AttachmentFileName(info.Title, format.Container, d.config.FilenameMaxLength),
		ContentType: contentType,
		Size:        size,
		reader:      reader,
		cancel:      cancel,
	}, nil
}

func (d *Downloader) validateLink(link string) (string, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return "", utils.NewMissingParameterError("url")
	}
	if !d.youtube.IsYouTubeURL(link) {
		return "", utils.NewInvalidLinkError(link)
	}
	return link, nil
}

// fetch returns metadata with unplayable formats removed.
func (d *Downloader) fetch(ctx context.Context, link string) (*youtube.VideoInfo, error) {
	info, err := d.youtube.GetVideoInfo(ctx, link)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch video info", err, utils.Fields{
			"link": link,
			"kind": youtube.KindOf(err).String(),
		})
		return nil, toAppError(err, utils.NewExtractionError)
	}

	info.Formats = PlayableFormats(info.Formats)
	return info, nil
}

// PlayableFormats keeps formats exposing at least one of video or audio.
func PlayableFormats(formats []youtube.Format) []youtube.Format {
	playable := make([]youtube.Format, 0, len(formats))
	for _, f := range formats {
		if f.Playable() {
			playable = append(playable, f)
		}
	}
	return playable
}

// toAppError maps an extraction failure onto the API error taxonomy.
// fallback builds the error for failures without a more specific kind.
func toAppError(err error, fallback func(error) *utils.AppError) *utils.AppError {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch youtube.KindOf(err) {
	case youtube.KindAccessDenied:
		return utils.NewAccessDeniedError(err)
	case youtube.KindRestricted:
		return utils.NewRestrictedError(err)
	case youtube.KindInvalidInput:
		appErr = utils.NewValidationError(err.Error(), nil)
		appErr.Err = err
		return appErr
	default:
		return fallback(err)
	}
}
