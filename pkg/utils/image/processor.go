package image

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
)

const (
	WebPQuality     = 82
	WebPContentType = "image/webp"
	WebPExtension   = ".webp"
)

// ProcessImage yüklenen fotoğrafı (jpeg, png, webp) vitrin için webp'ye çevirir
func ProcessImage(src io.Reader) (*bytes.Buffer, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: WebPQuality}); err != nil {
		return nil, fmt.Errorf("could not encode image: %w", err)
	}

	return buf, nil
}
