package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// Quality settings
	qualityPhoto = 75
	// Size settings (max dimension)
	maxSizePhoto = 800
)

// OptimizePhoto optimizes a captured photo by converting to JPEG and resizing.
// imageData: raw image bytes (PNG, JPEG, etc.)
// Returns optimized JPEG image bytes ready to be embedded in a data URI.
// Note: Using JPEG instead of WebP to avoid CGO dependency.
func OptimizePhoto(imageData []byte) ([]byte, error) {
	// Decode the image
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	// Resize image if needed
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resizedImg image.Image = img
	if width > maxSizePhoto || height > maxSizePhoto {
		// Calculate new dimensions maintaining aspect ratio
		var newWidth, newHeight int
		if width > height {
			newWidth = maxSizePhoto
			newHeight = int(float64(height) * float64(maxSizePhoto) / float64(width))
		} else {
			newHeight = maxSizePhoto
			newWidth = int(float64(width) * float64(maxSizePhoto) / float64(height))
		}

		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resizedImg = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	// Encode as JPEG
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resizedImg, &jpeg.Options{Quality: qualityPhoto}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}

	return buf.Bytes(), nil
}
