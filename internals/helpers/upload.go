package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadOptions struct {
	Dir           string
	MaxBytes      int64
	AllowedExts   []string // lower-case, with dot
	AllowedMIMEs  []string // prefix match
	RejectMessage string   // returned when the file type is not accepted
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateUniqueFilename: <uuid>-<sanitized original>
func GenerateUniqueFilename(originalFilename string) string {
	return fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeFilename(filepath.Base(originalFilename)))
}

// SaveUpload validates fh against opt and copies it into opt.Dir under a unique name.
// Validation failures come back as *fiber.Error with status 400/413.
func SaveUpload(fh *multipart.FileHeader, opt UploadOptions) (string, error) {
	if fh == nil || fh.Filename == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "File is required")
	}
	if opt.MaxBytes > 0 && fh.Size > opt.MaxBytes {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("File exceeds the %d MB limit", opt.MaxBytes/(1024*1024)))
	}
	if !acceptedFile(fh, opt) {
		msg := opt.RejectMessage
		if msg == "" {
			msg = "File type not allowed"
		}
		return "", fiber.NewError(fiber.StatusBadRequest, msg)
	}

	if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst := filepath.Join(opt.Dir, GenerateUniqueFilename(fh.Filename))
	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func acceptedFile(fh *multipart.FileHeader, opt UploadOptions) bool {
	if len(opt.AllowedExts) == 0 && len(opt.AllowedMIMEs) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	for _, e := range opt.AllowedExts {
		if ext == e {
			return true
		}
	}
	ct := strings.ToLower(fh.Header.Get("Content-Type"))
	for _, m := range opt.AllowedMIMEs {
		if ct != "" && strings.HasPrefix(ct, m) {
			return true
		}
	}
	return false
}
