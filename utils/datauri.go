package utils

import (
	"encoding/base64"
	"strings"
)

// JPEGDataURI encodes JPEG image bytes as a self-contained data URI,
// the same shape the mobile client writes after taking a picture.
func JPEGDataURI(imageData []byte) string {
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageData)
}

// IsDataURI reports whether a photo reference embeds its image inline
// instead of pointing at a remote URL.
func IsDataURI(ref string) bool {
	return strings.HasPrefix(ref, "data:")
}
