package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"
)

// ImageResult contains a pixel buffer encoded as base64 PNG for transport.
type ImageResult struct {
	Width       int    `json:"width"`        // Output width in pixels
	Height      int    `json:"height"`       // Output height in pixels
	ImageBase64 string `json:"image_base64"` // PNG data, base64-encoded
	MimeType    string `json:"mime_type"`    // Always "image/png"
}

// EncodePNG converts a buffer into a base64 PNG transport result.
func EncodePNG(buf *PixelBuffer) (*ImageResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := png.Encode(&out, buf.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &ImageResult{
		Width:       buf.Width,
		Height:      buf.Height,
		ImageBase64: base64.StdEncoding.EncodeToString(out.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Preview returns a downscaled copy of the buffer whose longest side is at
// most maxDimension, encoded as base64 PNG. Images already within the bound
// are encoded at their original size.
//
// Previews use Lanczos resampling and exist so clients can display large
// photographs without shipping the full buffer across the wire.
func Preview(buf *PixelBuffer, maxDimension int) (*ImageResult, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if maxDimension < 1 {
		maxDimension = 1
	}
	if buf.Width <= maxDimension && buf.Height <= maxDimension {
		return EncodePNG(buf)
	}

	fitted := imaging.Fit(buf.Image(), maxDimension, maxDimension, imaging.Lanczos)
	return EncodePNG(FromImage(fitted))
}
