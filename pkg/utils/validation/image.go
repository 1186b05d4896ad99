// pkg/utils/validation/image.go
package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrFileRequired = errors.New("no file provided")
	ErrImageLimit   = errors.New("maximum image limit reached (16)")
)

const (
	MaxImageSize     = 10 * 1024 * 1024 // 10MB
	MaxListingImages = 16
)

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}

	// Boyut kontrolü
	if file.Size > MaxImageSize {
		return ErrFileSize
	}

	// Tip kontrolü
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	return nil
}

// ValidateImageCount ilan başına görsel sınırı
func ValidateImageCount(current int) error {
	if current >= MaxListingImages {
		return ErrImageLimit
	}
	return nil
}
