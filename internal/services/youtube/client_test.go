package youtube

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/ytgrab/internal/config"
)

func TestIsYouTubeURL(t *testing.T) {
	client, err := NewClient(&config.YouTubeConfig{})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		url   string
		valid bool
	}{
		{"Watch URL", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"Watch URL with extra params", "https://youtube.com/watch?v=dQw4w9WgXcQ&t=42s", true},
		{"Mobile", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"Short link", "https://youtu.be/dQw4w9WgXcQ", true},
		{"Shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ", true},
		{"Embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"Other host", "https://example.com/watch?v=dQw4w9WgXcQ", false},
		{"Missing id", "https://www.youtube.com/watch", false},
		{"Channel page", "https://www.youtube.com/@somechannel", false},
		{"Short id", "https://www.youtube.com/watch?v=abc", false},
		{"Not a URL", "not-a-url", false},
		{"FTP scheme", "ftp://www.youtube.com/watch?v=dQw4w9WgXcQ", false},
		{"Empty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, client.IsYouTubeURL(tc.url))
		})
	}
}

func TestParseYouTubeURL(t *testing.T) {
	client, err := NewClient(&config.YouTubeConfig{})
	require.NoError(t, err)

	id, err := client.ParseYouTubeURL("https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "dQw4w9WgXcQ", id)

	_, err = client.ParseYouTubeURL("https://www.youtube.com/watch?v=abc")
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestNewClientInvalidProxy(t *testing.T) {
	_, err := NewClient(&config.YouTubeConfig{ProxyURL: "://nope"})
	assert.ErrorContains(t, err, "invalid proxy URL")
}

func TestNewClientMissingCookiesFile(t *testing.T) {
	_, err := NewClient(&config.YouTubeConfig{CookiesFile: filepath.Join(t.TempDir(), "missing.txt")})
	assert.ErrorContains(t, err, "cookies file")
}

const cookiesTxt = "# Netscape HTTP Cookie File\n" +
	".youtube.com\tTRUE\t/\tTRUE\t0\tPREF\tf6=40000000\n" +
	"#HttpOnly_.youtube.com\tTRUE\t/\tTRUE\t1\tOLD\texpired\n" +
	".example.com\tTRUE\t/\tFALSE\t0\tOTHER\tx\n" +
	"broken line\n"

func TestParseNetscapeCookies(t *testing.T) {
	cookies, err := ParseNetscapeCookies(strings.NewReader(cookiesTxt))
	require.NoError(t, err)
	require.Len(t, cookies, 3)

	assert.Equal(t, "PREF", cookies[0].Name)
	assert.True(t, cookies[0].Secure)
	assert.True(t, cookies[0].Expires.IsZero())
	assert.True(t, cookies[1].HttpOnly)
	assert.Equal(t, time.Unix(1, 0), cookies[1].Expires)
}

func TestLoadCookiesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(path, []byte(cookiesTxt), 0o600))

	cookies, err := loadCookiesFile(path)
	require.NoError(t, err)
	assert.Len(t, cookies, 3)
}

type recordingTransport struct {
	requests []*http.Request
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.requests = append(r.requests, req)
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}, nil
}

func newTestTransport(t *testing.T, sessionCookie string) (*headerTransport, *recordingTransport) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(path, []byte(cookiesTxt), 0o600))

	base := &recordingTransport{}
	transport, err := newHeaderTransport(&config.YouTubeConfig{
		UserAgent:      "test-agent",
		AcceptLanguage: "en-US",
		Cookie:         sessionCookie,
		CookiesFile:    path,
	}, base)
	require.NoError(t, err)
	transport.now = func() time.Time { return time.Unix(1000, 0) }
	return transport, base
}

func TestHeaderTransportAddsHeaders(t *testing.T) {
	transport, base := newTestTransport(t, "")

	req, err := http.NewRequest(http.MethodGet, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", nil)
	require.NoError(t, err)
	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	require.Len(t, base.requests, 1)
	sent := base.requests[0]
	assert.Equal(t, "test-agent", sent.Header.Get("User-Agent"))
	assert.Equal(t, "en-US", sent.Header.Get("Accept-Language"))
	assert.Equal(t, "PREF=f6=40000000", sent.Header.Get("Cookie"))
	assert.Empty(t, req.Header.Get("User-Agent"), "original request must not be mutated")
}

func TestHeaderTransportMergesExtractorCookies(t *testing.T) {
	testCases := []struct {
		name          string
		sessionCookie string
		existing      string
		expected      string
	}{
		{"Session cookie", "SID=abc", "CONSENT=YES+cb.1", "CONSENT=YES+cb.1; SID=abc"},
		{"Several session cookies", "SID=abc; HSID=def", "CONSENT=YES+cb.1", "CONSENT=YES+cb.1; SID=abc; HSID=def"},
		{"Cookies file", "", "CONSENT=YES+cb.1", "CONSENT=YES+cb.1; PREF=f6=40000000"},
		{"Configured cookie replaces same name", "SID=abc", "SID=old; CONSENT=YES+cb.1", "CONSENT=YES+cb.1; SID=abc"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport, base := newTestTransport(t, tc.sessionCookie)

			req, err := http.NewRequest(http.MethodPost, "https://www.youtube.com/youtubei/v1/player", nil)
			require.NoError(t, err)
			req.Header.Set("User-Agent", "extractor-agent")
			req.Header.Set("Cookie", tc.existing)
			_, err = transport.RoundTrip(req)
			require.NoError(t, err)

			sent := base.requests[0]
			assert.Equal(t, "extractor-agent", sent.Header.Get("User-Agent"))
			assert.Equal(t, tc.expected, sent.Header.Get("Cookie"))
			assert.Equal(t, tc.existing, req.Header.Get("Cookie"))
		})
	}
}

func TestHeaderTransportSkipsCookiesForOtherHosts(t *testing.T) {
	transport, base := newTestTransport(t, "SID=abc")

	req, err := http.NewRequest(http.MethodGet, "https://cdn.example.org/file", nil)
	require.NoError(t, err)
	_, err = transport.RoundTrip(req)
	require.NoError(t, err)

	assert.Empty(t, base.requests[0].Header.Get("Cookie"))
	assert.Equal(t, "test-agent", base.requests[0].Header.Get("User-Agent"))
}

func TestNewClientInvalidSessionCookie(t *testing.T) {
	_, err := NewClient(&config.YouTubeConfig{Cookie: "=abc"})
	assert.ErrorContains(t, err, "invalid session cookie")
}
