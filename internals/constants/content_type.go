package constants

import (
	"path/filepath"
	"strings"
)

// ImageContentType maps a snapshot extension to its MIME type.
func ImageContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
