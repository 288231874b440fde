package extract

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner replaces pdftotext in tests.
type stubRunner struct {
	stdout []byte
	err    error
	calls  int
	args   []string
}

func (r *stubRunner) Run(_ context.Context, _ string, _ *slog.Logger, args ...string) ([]byte, []byte, error) {
	r.calls++
	r.args = args
	return r.stdout, nil, r.err
}

type stubOCR struct {
	text string
	err  error
}

func (o *stubOCR) ParseImage(context.Context, string, []byte) (string, error) {
	return o.text, o.err
}

func newTestExtractor(t *testing.T, r Runner, ocr OCR) *Extractor {
	t.Helper()
	e := NewExtractor(Config{TempDir: t.TempDir()}, ocr, slog.Default())
	if r != nil {
		e.runner = r
	}
	return e
}

func TestExtractPDFWithTextLayer(t *testing.T) {
	text := strings.Repeat("Igiene dentale professionale 80,00 EUR\n", 4)
	runner := &stubRunner{stdout: []byte(text)}
	e := newTestExtractor(t, runner, nil)

	res, err := e.Extract(context.Background(), "preventivo.pdf", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.True(t, res.PDFSource)
	assert.Contains(t, res.Text, "Igiene dentale")
	assert.Equal(t, 1, runner.calls)
	assert.Contains(t, res.Text, strings.TrimSpace(text)[:20])
}

func TestExtractScannedPDFIsPermanentlyRejected(t *testing.T) {
	// A scanned PDF yields almost no text from its (absent) text layer.
	runner := &stubRunner{stdout: []byte("  \n p1 \n")}
	e := newTestExtractor(t, runner, nil)

	_, err := e.Extract(context.Background(), "scan.pdf", []byte("%PDF-1.4"))

	assert.ErrorIs(t, err, ErrScannedPDF)
}

func TestExtractPDFCommandFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	e := newTestExtractor(t, runner, nil)

	_, err := e.Extract(context.Background(), "broken.pdf", []byte("%PDF-1.4"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrScannedPDF)
}

func TestExtractImageUsesOCR(t *testing.T) {
	e := newTestExtractor(t, nil, &stubOCR{text: "Otturazione 120 EUR"})

	res, err := e.Extract(context.Background(), "photo.jpg", []byte{0xFF, 0xD8})

	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.False(t, res.PDFSource)
	assert.Equal(t, "Otturazione 120 EUR", res.Text)
}

func TestExtractImageEmptyOCRResult(t *testing.T) {
	e := newTestExtractor(t, nil, &stubOCR{text: "   "})

	_, err := e.Extract(context.Background(), "photo.png", []byte{0x89})

	assert.Error(t, err)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(t, nil, nil)
	_, err := e.Extract(context.Background(), "quote.docx", []byte("x"))
	assert.Error(t, err)
}

func TestOCRSpaceClientParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "ita", r.FormValue("language"))
		assert.Equal(t, "true", r.FormValue("detectOrientation"))
		assert.Equal(t, "2", r.FormValue("OCREngine"))

		_, _, err := r.FormFile("file")
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"IsErroredOnProcessing": false,
			"ParsedResults": [{"ParsedText": "Igiene dentale 80"}, {"ParsedText": "\nTotale 80"}]
		}`))
	}))
	defer srv.Close()

	c := NewOCRSpaceClient(OCRSpaceConfig{APIKey: "test-key", Endpoint: srv.URL}, slog.Default())
	text, err := c.ParseImage(context.Background(), "photo.jpg", []byte{0xFF, 0xD8})

	require.NoError(t, err)
	assert.Equal(t, "Igiene dentale 80\nTotale 80", text)
}

func TestOCRSpaceClientProcessingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"IsErroredOnProcessing": true,
			"ErrorMessage": ["Unable to recognize the file type", "E216"]
		}`))
	}))
	defer srv.Close()

	c := NewOCRSpaceClient(OCRSpaceConfig{APIKey: "k", Endpoint: srv.URL}, slog.Default())
	_, err := c.ParseImage(context.Background(), "photo.jpg", []byte{0xFF})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unable to recognize the file type")
}

func TestOCRSpaceClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewOCRSpaceClient(OCRSpaceConfig{APIKey: "bad", Endpoint: srv.URL}, slog.Default())
	_, err := c.ParseImage(context.Background(), "photo.jpg", []byte{0xFF})

	assert.Error(t, err)
}
