package normalize

import (
	"bytes"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilematch/quotes/constants"
)

func jpegBytes(t *testing.T, w, h int, quality int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		// Noise compresses poorly, which keeps big images above the size cap.
		img.Pix[i] = byte(i*7 + i/3)
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}))
	return buf.Bytes()
}

func TestNormalizePDFPassesThrough(t *testing.T) {
	n := New(nil)
	data := []byte("%PDF-1.4 fake")

	res, err := n.Normalize(uuid.New(), "Preventivo Dentale.pdf", data)

	require.NoError(t, err)
	assert.Equal(t, constants.PDF, res.Format)
	assert.Equal(t, data, res.Data)
	assert.True(t, strings.HasSuffix(res.Key, ".pdf"))
}

func TestNormalizeRejectsUnknownExtension(t *testing.T) {
	n := New(nil)
	_, err := n.Normalize(uuid.New(), "quote.docx", []byte("x"))
	assert.Error(t, err)
}

func TestNormalizeSmallImagePassesThrough(t *testing.T) {
	n := New(nil)
	data := jpegBytes(t, 100, 100, 80)
	require.Less(t, len(data), MaxImageBytes)

	res, err := n.Normalize(uuid.New(), "photo.jpg", data)

	require.NoError(t, err)
	assert.Equal(t, constants.IMAGE, res.Format)
	assert.Equal(t, data, res.Data)
}

func TestNormalizeDownscalesOversizedImage(t *testing.T) {
	n := New(nil)
	data := jpegBytes(t, 3000, 2000, 100)
	require.Greater(t, len(data), MaxImageBytes)

	res, err := n.Normalize(uuid.New(), "big.jpg", data)

	require.NoError(t, err)
	assert.Less(t, len(res.Data), len(data))

	img, _, err := image.Decode(bytes.NewReader(res.Data))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), MaxEdgePx)
	assert.LessOrEqual(t, img.Bounds().Dy(), MaxEdgePx)
}

func TestNormalizeKeepsOriginalWhenDecodeFails(t *testing.T) {
	n := New(nil)
	data := bytes.Repeat([]byte("not an image "), 100_000)
	require.Greater(t, len(data), MaxImageBytes)

	res, err := n.Normalize(uuid.New(), "corrupt.jpg", data)

	require.NoError(t, err)
	assert.Equal(t, data, res.Data)
}

func TestNormalizeKeyLayout(t *testing.T) {
	n := New(nil)
	patientID := uuid.New()

	res, err := n.Normalize(patientID, "Preventivo Studio Rossi!.pdf", []byte("%PDF"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Key, "quotes/"+patientID.String()+"/"))
	assert.Contains(t, res.Key, "preventivo-studio-rossi")
	assert.NotContains(t, res.Key, " ")
	assert.NotContains(t, res.Key, "!")
}

func TestSlugFallsBackForUnusableNames(t *testing.T) {
	assert.Equal(t, "document", slug("???.pdf"))
	assert.Equal(t, "a-b", slug("a b.jpg"))
}
