package utils

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

type FileValidator struct {
	allowedExt  map[string]bool
	allowedMime map[string]bool
}

// NewImageValidator accepts the logo formats the configurator offers (PNG,
// JPG). ALLOWED_FILE_EXTENSIONS and ALLOWED_FILE_MIME_TYPES override the
// defaults with comma-separated lists.
func NewImageValidator() *FileValidator {
	allowedExt := listFromEnv("ALLOWED_FILE_EXTENSIONS")
	if len(allowedExt) == 0 {
		allowedExt = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true}
	}

	allowedMime := listFromEnv("ALLOWED_FILE_MIME_TYPES")
	if len(allowedMime) == 0 {
		allowedMime = map[string]bool{"image/png": true, "image/jpeg": true, "image/webp": true}
	}

	return &FileValidator{
		allowedExt:  allowedExt,
		allowedMime: allowedMime,
	}
}

func listFromEnv(key string) map[string]bool {
	out := make(map[string]bool)
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(strings.ToLower(v)); v != "" {
			out[v] = true
		}
	}
	return out
}

// ValidateFile checks the extension and the sniffed content type, returning
// the detected MIME type. Size is not checked here; the submission pipeline
// enforces its own cap.
func (v *FileValidator) ValidateFile(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !v.allowedExt[ext] {
		return "", fmt.Errorf("invalid file extension")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	if _, err = file.Read(buffer); err != nil {
		return "", fmt.Errorf("failed to read file header")
	}
	if _, err = file.Seek(0, 0); err != nil {
		return "", fmt.Errorf("failed to reset file reader")
	}

	detectedMime := strings.ToLower(http.DetectContentType(buffer))
	if i := strings.Index(detectedMime, ";"); i >= 0 {
		detectedMime = strings.TrimSpace(detectedMime[:i])
	}
	if !v.allowedMime[detectedMime] {
		return "", fmt.Errorf("invalid file type")
	}

	return detectedMime, nil
}
