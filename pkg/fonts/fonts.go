// Package fonts resolves the TrueType font used to draw and measure labels.
//
// The default is Go Regular, which ships inside golang.org/x/image and is
// compiled into the binary, so rendering works without any system fonts.
// Other fonts can be selected by file path or by name through the system
// font directories.
package fonts

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/ffimg/pkg/errors"
)

// DefaultName is the name reported for the embedded font.
const DefaultName = "goregular"

// Parsed once on first access.
var (
	defaultFont     *truetype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// Default returns the embedded Go Regular font.
func Default() (*truetype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = truetype.Parse(goregular.TTF)
	})
	return defaultFont, defaultFontErr
}

// Load returns the font identified by name:
//   - "" or DefaultName selects the embedded font
//   - an existing file path is read directly
//   - anything else is looked up in the system font directories, with or
//     without the .ttf extension (e.g. "DejaVuSans" or "DejaVuSans.ttf")
func Load(name string) (*truetype.Font, error) {
	if IsDefault(name) {
		return Default()
	}
	data, err := Read(name)
	if err != nil {
		return nil, err
	}
	return Parse(name, data)
}

// IsDefault reports whether name selects the embedded font.
func IsDefault(name string) bool {
	return name == "" || name == DefaultName
}

// Read returns the raw font file contents for name, resolved the same way
// as Load. The embedded font's bytes are returned for the default names.
func Read(name string) ([]byte, error) {
	if IsDefault(name) {
		return goregular.TTF, nil
	}

	path := name
	if _, err := os.Stat(name); err != nil {
		lookup := name
		if filepath.Ext(lookup) == "" {
			lookup += ".ttf"
		}
		found, ferr := findfont.Find(lookup)
		if ferr != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, ferr, "font %q", name)
		}
		path = found
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".ttf" && ext != ".otf" {
		return nil, errors.New(errors.ErrCodeUnsupported, "font %q: only TrueType fonts are supported", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read font %s", path)
	}
	return data, nil
}

// Parse decodes font data previously returned by Read for name.
// The default names reuse the embedded font parsed by Default.
func Parse(name string, data []byte) (*truetype.Font, error) {
	if IsDefault(name) {
		return Default()
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupported, err, "parse font %s", name)
	}
	return f, nil
}
