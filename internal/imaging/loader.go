package imaging

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"
)

// BufferCache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads and decode work.
//
// Decoded buffers are keyed by their file path. Once an image is loaded,
// subsequent Load() calls for the same path return the cached buffer without
// disk I/O. Cached buffers must be treated as read-only; engine operations
// already follow the allocate-fresh-output convention.
//
// BufferCache is safe for concurrent use by multiple goroutines.
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*PixelBuffer
}

// NewBufferCache creates and initializes a new empty buffer cache.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*PixelBuffer),
	}
}

// Load retrieves a pixel buffer from the cache or decodes it from disk if
// not cached. Supported formats are PNG, JPEG, and GIF; all are converted to
// non-premultiplied RGBA on load.
//
// The buffer is cached using the exact path string provided. Different paths
// to the same file (relative vs absolute) result in separate cache entries.
func (c *BufferCache) Load(path string) (*PixelBuffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	buf := FromImage(img)
	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache, freeing the associated memory.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*PixelBuffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path. If the path is
// not in the cache, this method does nothing.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", or
	// "unknown". Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// ColorDepth is the stored per-channel depth: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha reports whether the stored encoding carries an alpha
	// channel. The engine works on RGBA buffers either way.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and returns its metadata.
//
// Color depth and alpha presence describe the stored encoding, read from the
// file header. The cached buffer is always 8-bit non-premultiplied RGBA.
func LoadImageInfo(cache *BufferCache, path string) (*ImageInfo, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read image header: %w", err)
	}

	hasAlpha := false
	colorDepth := "8-bit"
	switch cfg.ColorModel {
	case color.RGBAModel, color.NRGBAModel:
		hasAlpha = true
	case color.RGBA64Model, color.NRGBA64Model:
		hasAlpha = true
		colorDepth = "16-bit"
	case color.Gray16Model:
		colorDepth = "16-bit"
	}

	return &ImageInfo{
		Width:         buf.Width,
		Height:        buf.Height,
		Format:        format,
		ColorDepth:    colorDepth,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// DimensionsResult contains the width and height of an image.
type DimensionsResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GetDimensions returns the dimensions of an image without additional
// metadata. The image is loaded into the cache if not already present.
func GetDimensions(cache *BufferCache, path string) (*DimensionsResult, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return &DimensionsResult{Width: buf.Width, Height: buf.Height}, nil
}
