package imaging

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// encodeTestPNG writes an image to a temp PNG file and returns its path.
func encodeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test png: %v", err)
	}
	return path
}

// writeTestPNG writes a uniform PNG file and returns its path.
func writeTestPNG(t *testing.T, width, height int, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return encodeTestPNG(t, img)
}

func TestBufferCache_Load(t *testing.T) {
	path := writeTestPNG(t, 6, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	cache := NewBufferCache()

	buf, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if buf.Width != 6 || buf.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", buf.Width, buf.Height)
	}
	r, g, b, a := buf.RGBA(3, 2)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("pixel: got (%d,%d,%d,%d), want (10,20,30,255)", r, g, b, a)
	}

	// Second load must return the cached buffer.
	again, err := cache.Load(path)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if again != buf {
		t.Error("expected cached buffer on second load")
	}
}

func TestBufferCache_LoadMissing(t *testing.T) {
	cache := NewBufferCache()
	if _, err := cache.Load("/nonexistent/image.png"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBufferCache_EvictAndClear(t *testing.T) {
	path := writeTestPNG(t, 2, 2, color.NRGBA{R: 1, G: 1, B: 1, A: 255})
	cache := NewBufferCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	cache.Evict(path)
	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Evict failed: %v", err)
	}
	if second == first {
		t.Error("Evict should force a fresh decode")
	}

	cache.Clear()
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load after Clear failed: %v", err)
	}
	if third == second {
		t.Error("Clear should force a fresh decode")
	}
}

func TestLoadImageInfo(t *testing.T) {
	path := writeTestPNG(t, 8, 5, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	cache := NewBufferCache()

	info, err := LoadImageInfo(cache, path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.Width != 8 || info.Height != 5 {
		t.Errorf("dimensions: got %dx%d, want 8x5", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", info.FileSizeBytes)
	}
	// An opaque NRGBA source is stored as 8-bit truecolor.
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %s, want 8-bit", info.ColorDepth)
	}
}

func TestLoadImageInfo_AlphaChannel(t *testing.T) {
	// A translucent pixel forces the encoder to keep the alpha channel.
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	path := encodeTestPNG(t, img)

	info, err := LoadImageInfo(NewBufferCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if !info.HasAlpha {
		t.Error("translucent PNG should report an alpha channel")
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %s, want 8-bit", info.ColorDepth)
	}
}

func TestLoadImageInfo_GrayscaleNoAlpha(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	path := encodeTestPNG(t, img)

	info, err := LoadImageInfo(NewBufferCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.HasAlpha {
		t.Error("grayscale PNG should not report an alpha channel")
	}
	if info.ColorDepth != "8-bit" {
		t.Errorf("color depth: got %s, want 8-bit", info.ColorDepth)
	}
}

func TestLoadImageInfo_SixteenBit(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 4, 4))
	path := encodeTestPNG(t, img)

	info, err := LoadImageInfo(NewBufferCache(), path)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}
	if info.ColorDepth != "16-bit" {
		t.Errorf("color depth: got %s, want 16-bit", info.ColorDepth)
	}
	if info.HasAlpha {
		t.Error("16-bit grayscale PNG should not report an alpha channel")
	}
}

func TestGetDimensions(t *testing.T) {
	path := writeTestPNG(t, 3, 7, color.NRGBA{A: 255})
	cache := NewBufferCache()

	dims, err := GetDimensions(cache, path)
	if err != nil {
		t.Fatalf("GetDimensions failed: %v", err)
	}
	if dims.Width != 3 || dims.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 3x7", dims.Width, dims.Height)
	}
}
