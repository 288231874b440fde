// Package normalize prepares uploaded documents for storage: it validates the
// extension, derives the storage key, and downscales oversized images so the
// OCR service accepts them.
package normalize

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/smilematch/quotes/constants"
)

const (
	// MaxImageBytes is the size above which images are downscaled.
	MaxImageBytes = 1 << 20
	// MaxEdgePx is the longest-edge target after downscaling.
	MaxEdgePx = 1200
	// JPEGQuality used when re-encoding downscaled JPEGs.
	JPEGQuality = 85
)

// Normalizer turns an upload into the bytes and key actually stored.
type Normalizer struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Result describes the normalized upload.
type Result struct {
	Key    string // storage key relative to the blob root
	Data   []byte
	Format string // constants.PDF or constants.IMAGE
}

// Normalize validates the filename, shrinks oversized images, and computes
// the storage key. PDFs pass through untouched.
func (n *Normalizer) Normalize(patientID uuid.UUID, originalFilename string, data []byte) (*Result, error) {
	ext := constants.NormalizeExt(filepath.Ext(originalFilename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return nil, fmt.Errorf("unsupported file extension %q", ext)
	}
	format := constants.MapExtToFormat(ext)

	out := data
	if format == constants.IMAGE && len(data) > MaxImageBytes {
		shrunk, err := downscale(data, ext)
		if err != nil {
			// Keep the original bytes; extraction may still succeed.
			n.logger.Warn("upload.downscale_failed", "filename", originalFilename, "error", err)
		} else {
			n.logger.Info("upload.downscaled",
				"filename", originalFilename,
				"before_bytes", len(data),
				"after_bytes", len(shrunk),
			)
			out = shrunk
		}
	}

	key := fmt.Sprintf("quotes/%s/%s_%d.%s", patientID, slug(originalFilename), time.Now().Unix(), ext)
	return &Result{Key: key, Data: out, Format: format}, nil
}

func downscale(data []byte, ext string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > MaxEdgePx || b.Dy() > MaxEdgePx {
		if b.Dx() >= b.Dy() {
			img = imaging.Resize(img, MaxEdgePx, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, MaxEdgePx, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if ext == "png" {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality})
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// slug reduces the filename stem to lowercase alphanumerics and dashes so the
// storage key stays filesystem-safe.
func slug(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(stem) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "document"
	}
	return out
}
