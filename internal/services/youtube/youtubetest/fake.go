// Package youtubetest provides an in-memory YouTubeClient for tests.
package youtubetest

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"sync"

	"github.com/denisAlshanov/ytgrab/internal/services/youtube"
)

// Client is a scripted youtube.YouTubeClient. Any http(s) URL with a host is
// considered valid unless Validate is set. With Hold set, streams block after
// the payload until the context passed to OpenStream is done.
type Client struct {
	Info      *youtube.VideoInfo
	InfoErr   error
	Payload   []byte
	Size      int64
	Hold      bool
	StreamErr error
	PingErr   error
	Validate  func(string) bool

	mu          sync.Mutex
	infoCalls   int
	streamCalls int
	streams     []*Stream
}

var _ youtube.YouTubeClient = (*Client)(nil)

func (c *Client) IsYouTubeURL(rawURL string) bool {
	if c.Validate != nil {
		return c.Validate(rawURL)
	}
	u, err := url.Parse(rawURL)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (c *Client) ParseYouTubeURL(rawURL string) (string, error) {
	if c.Info != nil {
		return c.Info.ID, nil
	}
	return "", nil
}

func (c *Client) GetVideoInfo(ctx context.Context, rawURL string) (*youtube.VideoInfo, error) {
	c.mu.Lock()
	c.infoCalls++
	c.mu.Unlock()

	if c.InfoErr != nil {
		return nil, c.InfoErr
	}
	// Callers filter the format slice, so hand out a copy
	info := *c.Info
	info.Formats = append([]youtube.Format(nil), c.Info.Formats...)
	return &info, nil
}

func (c *Client) OpenStream(ctx context.Context, info *youtube.VideoInfo, format *youtube.Format) (io.ReadCloser, int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.streamCalls++

	if c.StreamErr != nil {
		return nil, 0, c.StreamErr
	}
	stream := newStream(ctx, c.Payload, c.Hold)
	c.streams = append(c.streams, stream)
	return stream, c.Size, nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.PingErr
}

// InfoCalls returns how many times metadata was fetched.
func (c *Client) InfoCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.infoCalls
}

// StreamCalls returns how many streams were opened.
func (c *Client) StreamCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.streamCalls
}

// Streams returns the streams handed out so far.
func (c *Client) Streams() []*Stream {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*Stream(nil), c.streams...)
}

// Stream records whether it was closed.
type Stream struct {
	io.Reader

	drained chan struct{}
	mu      sync.Mutex
	closed  bool
}

func newStream(ctx context.Context, payload []byte, hold bool) *Stream {
	s := &Stream{drained: make(chan struct{})}
	s.Reader = &streamReader{
		data:    bytes.NewReader(payload),
		ctx:     ctx,
		hold:    hold,
		drained: s.drained,
	}
	return s
}

func (s *Stream) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *Stream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Drained is closed once the whole payload has been read.
func (s *Stream) Drained() <-chan struct{} {
	return s.drained
}

type streamReader struct {
	data    *bytes.Reader
	ctx     context.Context
	hold    bool
	drained chan struct{}
	once    sync.Once
}

func (r *streamReader) Read(p []byte) (int, error) {
	if n, err := r.data.Read(p); err != io.EOF {
		return n, err
	}
	r.once.Do(func() { close(r.drained) })

	if !r.hold {
		return 0, io.EOF
	}
	<-r.ctx.Done()
	return 0, r.ctx.Err()
}

// SampleInfo returns metadata with one muxed, one video-only, one audio-only
// and one trackless format.
func SampleInfo() *youtube.VideoInfo {
	return &youtube.VideoInfo{
		ID:           "abc123",
		Title:        "Hello, World!!!   Test",
		Author:       "Channel",
		ThumbnailURL: "https://i.ytimg.com/vi/abc123/maxresdefault.jpg",
		Views:        10,
		Formats: []youtube.Format{
			{
				Itag:         22,
				MimeType:     `video/mp4; codecs="avc1.64001F, mp4a.40.2"`,
				Container:    "mp4",
				QualityLabel: "720p",
				AudioQuality: "AUDIO_QUALITY_MEDIUM",
				HasVideo:     true,
				HasAudio:     true,
			},
			{
				Itag:          137,
				MimeType:      `video/mp4; codecs="avc1.640028"`,
				Container:     "mp4",
				QualityLabel:  "1080p",
				HasVideo:      true,
				ContentLength: 1048576,
			},
			{
				Itag:         251,
				MimeType:     `audio/webm; codecs="opus"`,
				Container:    "webm",
				AudioQuality: "AUDIO_QUALITY_MEDIUM",
				HasAudio:     true,
			},
			{
				Itag:     999,
				MimeType: "",
			},
		},
	}
}
