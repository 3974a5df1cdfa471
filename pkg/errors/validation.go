package errors

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// resolutionPattern matches a resolution flag such as "1920x1080".
var resolutionPattern = regexp.MustCompile(`^\d+x\d+$`)

// MaxDimension bounds each side of the output image. Larger canvases would
// allocate gigabytes before a single block is drawn.
const MaxDimension = 16384

// ParseResolution parses a "WxH" resolution string.
//
// Validation rules:
//   - Must match ^\d+x\d+$ exactly (no spaces, no sign, lowercase x)
//   - Both sides must be positive
//   - Neither side may exceed 16384 pixels
func ParseResolution(s string) (width, height int, err error) {
	if !resolutionPattern.MatchString(s) {
		return 0, 0, New(ErrCodeInvalidResolution, "invalid resolution %q (expected WIDTHxHEIGHT, e.g. 1280x720)", s)
	}

	w, h, _ := strings.Cut(s, "x")
	width, err = strconv.Atoi(w)
	if err != nil {
		return 0, 0, Wrap(ErrCodeInvalidResolution, err, "invalid resolution width %q", w)
	}
	height, err = strconv.Atoi(h)
	if err != nil {
		return 0, 0, Wrap(ErrCodeInvalidResolution, err, "invalid resolution height %q", h)
	}

	if width == 0 || height == 0 {
		return 0, 0, New(ErrCodeInvalidResolution, "resolution %q has a zero dimension", s)
	}
	if width > MaxDimension || height > MaxDimension {
		return 0, 0, New(ErrCodeInvalidResolution, "resolution %q too large (max %dx%d)", s, MaxDimension, MaxDimension)
	}
	return width, height, nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}
