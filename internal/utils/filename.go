package utils

import (
	"regexp"
	"strings"
)

const (
	fallbackFileName  = "video"
	fallbackExtension = "mp4"
)

var (
	nonWordPattern    = regexp.MustCompile(`[^\w\s]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	extensionPattern  = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// SanitizeTitle turns a video title into a file name stem made only of
// [A-Za-z0-9_], at most maxLength bytes long.
func SanitizeTitle(title string, maxLength int) string {
	name := nonWordPattern.ReplaceAllString(title, "")
	name = strings.TrimSpace(name)
	name = whitespacePattern.ReplaceAllString(name, "_")

	if maxLength > 0 && len(name) > maxLength {
		name = name[:maxLength]
	}
	if name == "" {
		return fallbackFileName
	}
	return name
}

// AttachmentFileName joins a sanitized title with a container extension.
func AttachmentFileName(title, container string, maxLength int) string {
	ext := strings.ToLower(strings.TrimSpace(container))
	if !extensionPattern.MatchString(ext) {
		ext = fallbackExtension
	}
	return SanitizeTitle(title, maxLength) + "." + ext
}
