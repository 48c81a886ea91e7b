package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxLabelIDLength bounds label identifiers; they end up in SVG ids and
// cache keys.
const MaxLabelIDLength = 256

// ValidateLabelID validates a label identifier for safe use in SVG
// attributes and cache keys.
//
// The rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No whitespace (SVG ids cannot contain it)
//   - No quotes or angle brackets
//   - Maximum length of MaxLabelIDLength characters
func ValidateLabelID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidLabel, "label id cannot be empty")
	}

	if len(id) > MaxLabelIDLength {
		return New(ErrCodeInvalidLabel, "label id too long (max %d characters)", MaxLabelIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label id contains invalid control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidLabel, "label id cannot contain whitespace: %q", id)
		}
	}

	if strings.ContainsAny(id, `"'<>&`) {
		return New(ErrCodeInvalidLabel, "label id contains reserved characters: %q", id)
	}

	return nil
}

// Scene file extensions understood by the scene package.
var sceneExtensions = map[string]bool{
	".json": true,
	".toml": true,
	".yaml": true,
	".yml":  true,
}

// ValidateSceneFilename checks that filename has a supported scene extension.
func ValidateSceneFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidFormat, "scene filename cannot be empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !sceneExtensions[ext] {
		return New(ErrCodeInvalidFormat, "unsupported scene format %q (want .json, .toml, .yaml or .yml)", ext)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
