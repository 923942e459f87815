package youtube

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/denisAlshanov/ytgrab/internal/config"
)

// headerTransport adds browser-like identification and the session cookie to
// requests bound for the platform. Headers the extractor sets itself win,
// except Cookie: configured cookies are merged into whatever the extractor
// sends.
type headerTransport struct {
	base           http.RoundTripper
	headers        http.Header
	sessionCookies []*http.Cookie
	fileCookies    []*http.Cookie
	now            func() time.Time
}

func newHeaderTransport(cfg *config.YouTubeConfig, base http.RoundTripper) (*headerTransport, error) {
	transport := &headerTransport{
		base:    base,
		headers: make(http.Header),
		now:     time.Now,
	}
	if cfg.UserAgent != "" {
		transport.headers.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.AcceptLanguage != "" {
		transport.headers.Set("Accept-Language", cfg.AcceptLanguage)
	}

	if raw := strings.TrimSpace(cfg.Cookie); raw != "" {
		cookies, err := http.ParseCookie(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session cookie: %w", err)
		}
		transport.sessionCookies = cookies
	}
	if cfg.CookiesFile != "" {
		cookies, err := loadCookiesFile(cfg.CookiesFile)
		if err != nil {
			return nil, err
		}
		transport.fileCookies = cookies
	}

	return transport, nil
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	for key, values := range t.headers {
		if out.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			out.Header.Add(key, v)
		}
	}

	host := out.URL.Hostname()
	if isPlatformHost(host) {
		mergeCookies(out, t.cookiesFor(host))
	}

	return t.base.RoundTrip(out)
}

// cookiesFor returns the cookies to send to host. A raw session cookie takes
// precedence over the cookies file.
func (t *headerTransport) cookiesFor(host string) []*http.Cookie {
	if len(t.sessionCookies) > 0 {
		return t.sessionCookies
	}

	now := t.now()
	var matched []*http.Cookie
	for _, c := range t.fileCookies {
		if cookieMatches(c, host, now) {
			matched = append(matched, c)
		}
	}
	return matched
}

// mergeCookies adds extra to the request's Cookie header. A configured cookie
// replaces one of the same name already on the request.
func mergeCookies(req *http.Request, extra []*http.Cookie) {
	if len(extra) == 0 {
		return
	}

	names := make(map[string]bool, len(extra))
	for _, c := range extra {
		names[c.Name] = true
	}

	existing := req.Cookies()
	req.Header.Del("Cookie")
	for _, c := range existing {
		if !names[c.Name] {
			req.AddCookie(c)
		}
	}
	for _, c := range extra {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
}

// newBaseTransport returns a clone of the default transport, routed through
// proxyURL when one is set.
func newBaseTransport(proxyURL string) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if strings.TrimSpace(proxyURL) == "" {
		return transport, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid proxy URL %q", proxyURL)
	}
	transport.Proxy = http.ProxyURL(parsed)
	return transport, nil
}

// isPlatformHost reports whether host belongs to the platform. Cookies are
// only attached for these hosts.
func isPlatformHost(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range []string{"youtube.com", "youtu.be", "googlevideo.com", "youtube-nocookie.com"} {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
