package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage writes a width x height PNG filled with c into a temp
// directory and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return writePNG(t, "test-image.png", img)
}

// writePNG encodes img into a file named name inside a temp directory.
func writePNG(t *testing.T, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	imgPath := createTestImage(t, 100, 60, color.RGBA{255, 0, 0, 255})

	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", bounds.Dx(), bounds.Dy())
	}

	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("unexpected color: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error %v does not wrap ErrDecode", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error %v does not wrap fs.ErrNotExist", err)
	}
}

func TestLoad_InvalidImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid-image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for invalid image data")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("error %v does not wrap ErrDecode", err)
	}
}

func TestInspect(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{255, 128, 64, 255})
	img, err := Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	info, err := Inspect(imgPath, img)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if info.Width != 200 {
		t.Errorf("Width: got %d, want 200", info.Width)
	}
	if info.Height != 150 {
		t.Errorf("Height: got %d, want 150", info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("ColorDepth: got %s, want 8-bit", info.ColorDepth)
	}
	if info.FileSizeBytes <= 0 {
		t.Error("FileSizeBytes should be positive")
	}
}

func TestInspect_ColorDepth(t *testing.T) {
	path := createTestImage(t, 1, 1, color.White)

	tests := []struct {
		name     string
		img      image.Image
		depth    string
		hasAlpha bool
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), "8-bit", false},
		{"gray16", image.NewGray16(image.Rect(0, 0, 1, 1)), "16-bit", false},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), "8-bit", true},
		{"rgba64", image.NewRGBA64(image.Rect(0, 0, 1, 1)), "16-bit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := Inspect(path, tt.img)
			if err != nil {
				t.Fatalf("Inspect failed: %v", err)
			}
			if info.ColorDepth != tt.depth {
				t.Errorf("ColorDepth: got %s, want %s", info.ColorDepth, tt.depth)
			}
			if info.HasAlpha != tt.hasAlpha {
				t.Errorf("HasAlpha: got %v, want %v", info.HasAlpha, tt.hasAlpha)
			}
		})
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, err := Inspect("/nonexistent/image.png", image.NewGray(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("Inspect should fail for non-existent file")
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := []struct {
		path   string
		format string
	}{
		{"a.png", "png"},
		{"a.PNG", "png"},
		{"a.jpg", "jpeg"},
		{"a.jpeg", "jpeg"},
		{"a.gif", "gif"},
		{"a.bmp", "bmp"},
		{"a.tif", "tiff"},
		{"a.tiff", "tiff"},
		{"a.webp", "webp"},
		{"a.xyz", "unknown"},
		{"noext", "unknown"},
	}

	for _, tt := range tests {
		if got := formatFromExt(tt.path); got != tt.format {
			t.Errorf("formatFromExt(%q) = %q, want %q", tt.path, got, tt.format)
		}
	}
}
