package youtube

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const httpOnlyPrefix = "#HttpOnly_"

// ParseNetscapeCookies parses a cookies.txt export.
// Format: domain flag path secure expiration name value
func ParseNetscapeCookies(r io.Reader) ([]*http.Cookie, error) {
	var cookies []*http.Cookie
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		httpOnly := false
		if strings.HasPrefix(line, httpOnlyPrefix) {
			line = strings.TrimPrefix(line, httpOnlyPrefix)
			httpOnly = true
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 7 {
			continue
		}

		cookie := &http.Cookie{
			Domain:   parts[0],
			Path:     parts[2],
			Secure:   strings.EqualFold(parts[3], "TRUE"),
			Name:     parts[5],
			Value:    parts[6],
			HttpOnly: httpOnly,
		}
		// Zero expiry marks a session cookie
		if expires, err := strconv.ParseInt(parts[4], 10, 64); err == nil && expires > 0 {
			cookie.Expires = time.Unix(expires, 0)
		}
		cookies = append(cookies, cookie)
	}

	return cookies, scanner.Err()
}

func loadCookiesFile(path string) ([]*http.Cookie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cookies file: %w", err)
	}
	defer file.Close()

	cookies, err := ParseNetscapeCookies(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cookies file: %w", err)
	}
	return cookies, nil
}

// cookieMatches reports whether a cookie from a cookies.txt file applies to host.
func cookieMatches(cookie *http.Cookie, host string, now time.Time) bool {
	if !cookie.Expires.IsZero() && cookie.Expires.Before(now) {
		return false
	}
	domain := strings.TrimPrefix(strings.ToLower(cookie.Domain), ".")
	host = strings.ToLower(host)
	return host == domain || strings.HasSuffix(host, "."+domain)
}
