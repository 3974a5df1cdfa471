package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/ffimg/pkg/errors"
)

func TestDefault(t *testing.T) {
	f1, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	f2, _ := Default()
	if f1 != f2 {
		t.Error("Default() should parse the font once")
	}
	if f1.FUnitsPerEm() == 0 {
		t.Error("Default() font has no units per em")
	}
}

func TestLoadDefaultNames(t *testing.T) {
	for _, name := range []string{"", DefaultName} {
		f, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", name, err)
		}
		if d, _ := Default(); f != d {
			t.Errorf("Load(%q) should return the embedded font", name)
		}
	}
}

func TestLoadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) error: %v", path, err)
	}
	if f == nil {
		t.Fatal("Load() returned nil font")
	}
}

func TestRead(t *testing.T) {
	for _, name := range []string{"", DefaultName} {
		data, err := Read(name)
		if err != nil {
			t.Fatalf("Read(%q) error: %v", name, err)
		}
		if !bytes.Equal(data, goregular.TTF) {
			t.Errorf("Read(%q) should return the embedded font bytes", name)
		}
	}

	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	data, err := Read(path)
	if err != nil {
		t.Fatalf("Read(%q) error: %v", path, err)
	}
	if !bytes.Equal(data, gomono.TTF) {
		t.Errorf("Read(%q) returned %d bytes, want the file contents", path, len(data))
	}
	f, err := Parse(path, data)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", path, err)
	}
	if d, _ := Default(); f == d {
		t.Error("Parse() of a file should not return the embedded font")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "broken.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	woff := filepath.Join(dir, "font.woff")
	if err := os.WriteFile(woff, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		font string
		code errors.Code
	}{
		{"unknown system font", "definitely-not-installed-font-xyz", errors.ErrCodeFileNotFound},
		{"corrupt file", bad, errors.ErrCodeUnsupported},
		{"unsupported extension", woff, errors.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.font)
			if !errors.Is(err, tt.code) {
				t.Errorf("Load(%q) code = %v, want %v (err: %v)", tt.font, errors.GetCode(err), tt.code, err)
			}
		})
	}
}
