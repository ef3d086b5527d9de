package siteworks

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	defaultThumbWidth = 800
	jpegQuality       = 80
)

// Thumbnail describes one generated thumbnail file.
type Thumbnail struct {
	Filename string
	Source   string
	Width    int
	Height   int
	Size     int
}

// renderThumbnail decodes an image from src, scales it down to maxWidth if
// it is wider, and encodes it as JPEG.
func renderThumbnail(src io.Reader, maxWidth int) ([]byte, int, int, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxWidth {
		newH := h * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
		w = maxWidth
		h = newH
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, 0, 0, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), w, h, nil
}

// GenerateThumbnails renders a width-capped JPEG variant of every image in
// srcDir into dstDir, for use on listing cards. maxWidth <= 0 uses the
// default. Non-image files are skipped; a file that fails to decode is
// reported in the error after the remaining files have been processed.
func GenerateThumbnails(srcDir, dstDir string, maxWidth int) ([]Thumbnail, error) {
	if maxWidth <= 0 {
		maxWidth = defaultThumbWidth
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, fmt.Errorf("siteworks: read image directory: %w", err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, err
	}

	var (
		thumbs []Thumbnail
		failed []string
	)
	for _, e := range entries {
		if e.IsDir() || !isImageFile(e.Name()) {
			continue
		}
		src, err := os.Open(filepath.Join(srcDir, e.Name()))
		if err != nil {
			return thumbs, err
		}
		data, w, h, err := renderThumbnail(src, maxWidth)
		src.Close()
		if err != nil {
			failed = append(failed, e.Name())
			continue
		}
		name := thumbName(e.Name())
		if err := os.WriteFile(filepath.Join(dstDir, name), data, 0o644); err != nil {
			return thumbs, err
		}
		thumbs = append(thumbs, Thumbnail{
			Filename: name,
			Source:   e.Name(),
			Width:    w,
			Height:   h,
			Size:     len(data),
		})
	}
	if len(failed) > 0 {
		return thumbs, fmt.Errorf("siteworks: could not decode: %s", strings.Join(failed, ", "))
	}
	return thumbs, nil
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif":
		return true
	}
	return false
}

// thumbName converts a source file name to a slugged .jpg thumbnail name.
func thumbName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return Slugify(base) + ".jpg"
}
