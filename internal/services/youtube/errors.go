package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"

	"github.com/kkdai/youtube/v2"
)

// ErrorKind classifies extraction failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindInvalidInput means the URL or video ID was rejected before any fetch.
	KindInvalidInput
	// KindAccessDenied means the platform refused the request (403/410).
	KindAccessDenied
	// KindRestricted covers private, age-gated and embed-disabled videos.
	KindRestricted
	// KindFormatUnavailable means the requested format is gone from the video.
	KindFormatUnavailable
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindAccessDenied:
		return "access_denied"
	case KindRestricted:
		return "restricted"
	case KindFormatUnavailable:
		return "format_unavailable"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// ErrFormatUnavailable is returned by OpenStream when the format is no longer
// listed for the video.
var ErrFormatUnavailable = errors.New("format not available for this video")

// ExtractionError wraps a failure from the extraction library.
type ExtractionError struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// statusPattern is used only when the library gives no typed status.
var statusPattern = regexp.MustCompile(`(?i)status code:?\s*(\d{3})`)

// Classify wraps err into an *ExtractionError. A nil error stays nil.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var existing *ExtractionError
	if errors.As(err, &existing) {
		return err
	}

	extErr := &ExtractionError{Op: op, Err: err}

	var statusCode youtube.ErrUnexpectedStatusCode
	var playability *youtube.ErrPlayabiltyStatus

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		extErr.Kind = KindTimeout
	case errors.Is(err, ErrFormatUnavailable):
		extErr.Kind = KindFormatUnavailable
	case errors.As(err, &statusCode):
		extErr.StatusCode = int(statusCode)
		extErr.Kind = kindForStatus(extErr.StatusCode)
	case errors.As(err, &playability),
		errors.Is(err, youtube.ErrLoginRequired),
		errors.Is(err, youtube.ErrVideoPrivate),
		errors.Is(err, youtube.ErrNotPlayableInEmbed):
		extErr.Kind = KindRestricted
	case errors.Is(err, youtube.ErrInvalidCharactersInVideoID),
		errors.Is(err, youtube.ErrVideoIDMinLength):
		extErr.Kind = KindInvalidInput
	default:
		if m := statusPattern.FindStringSubmatch(err.Error()); m != nil {
			extErr.StatusCode, _ = strconv.Atoi(m[1])
			extErr.Kind = kindForStatus(extErr.StatusCode)
		}
	}

	return extErr
}

// KindOf returns the classification of err, or KindUnknown.
func KindOf(err error) ErrorKind {
	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		return extErr.Kind
	}
	return KindUnknown
}

func kindForStatus(code int) ErrorKind {
	switch code {
	case http.StatusForbidden, http.StatusGone:
		return KindAccessDenied
	default:
		return KindUnknown
	}
}
