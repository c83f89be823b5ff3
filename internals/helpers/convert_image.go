package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

/* =======================================================================
   Decode image (jpeg/png/webp) from []byte, sniffing the MIME first
======================================================================= */

func DecodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	isWebP := strings.Contains(ct, "webp") || strings.EqualFold(filepath.Ext(filename), ".webp")
	if isWebP {
		return webp.Decode(bytes.NewReader(all))
	}

	switch {
	case strings.Contains(ct, "jpeg"), strings.Contains(ct, "png"):
		return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	default:
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg", ".png":
			return imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
		}
		return nil, fmt.Errorf("unsupported image format: %s / %s", ct, ext)
	}
}

/* =======================================================================
   Thumbnail: downscale to maxW (keep aspect), never upscale
======================================================================= */

func Thumbnail(src image.Image, maxW int) image.Image {
	if maxW <= 0 || src.Bounds().Dx() <= maxW {
		return src
	}
	return imaging.Resize(src, maxW, 0, imaging.Lanczos)
}

// EncodeWebP encodes lossy at quality q (default 80).
func EncodeWebP(img image.Image, q float32) ([]byte, error) {
	if q <= 0 {
		q = 80
	}
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: q}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToWebPThumbnail: decode → resize → encode webp
func ConvertToWebPThumbnail(all []byte, filename string, maxW int) ([]byte, error) {
	img, err := DecodeImage(all, filename)
	if err != nil {
		return nil, err
	}
	return EncodeWebP(Thumbnail(img, maxW), 80)
}
