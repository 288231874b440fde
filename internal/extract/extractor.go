// Package extract turns a stored quote document into raw text, using the pdf
// text layer when one exists and hosted OCR otherwise.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/smilematch/quotes/constants"
)

// MinPDFTextChars is the threshold below which a PDF text layer is treated as
// absent. Scanned PDFs typically yield a handful of stray characters.
const MinPDFTextChars = 50

// ErrScannedPDF marks a PDF whose text layer is too thin to use. The pipeline
// treats it as a permanent failure: retrying extraction cannot grow the layer.
var ErrScannedPDF = fmt.Errorf("pdf has no usable text layer (scanned document)")

// OCR abstracts the hosted image OCR so tests can stub it.
type OCR interface {
	ParseImage(ctx context.Context, filename string, data []byte) (string, error)
}

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	TempDir   string // scratch dir for pdf bytes; if empty -> os.TempDir()
}

// Result is the extraction outcome handed to the structuring stage.
type Result struct {
	Text   string
	Method string // "pdf-text" | "image-ocr"

	// PDFSource is set when the text came from a pdf text layer, where column
	// alignment between descriptions and prices is often lost.
	PDFSource bool
}

type Extractor struct {
	cfg    Config
	ocr    OCR
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, ocr OCR, logger *slog.Logger) *Extractor {
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.TempDir == "" {
		cfg.TempDir = os.TempDir()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{cfg: cfg, ocr: ocr, runner: execRunner{}, logger: logger}
}

// Extract picks a strategy based on the file extension.
func (e *Extractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(filename))

	var (
		res Result
		err error
	)
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(ctx, filename, data)
	case constants.IMAGE:
		res, err = e.extractImage(ctx, filename, data)
	default:
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}
	if err != nil {
		return res, err
	}

	e.logger.Info("pipeline.extract.ok",
		"filename", filename,
		"method", res.Method,
		"text_chars", len(res.Text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) extractPDF(ctx context.Context, filename string, data []byte) (Result, error) {
	tmp, err := os.CreateTemp(e.cfg.TempDir, "quote-*.pdf")
	if err != nil {
		return Result{}, fmt.Errorf("create temp pdf: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()
	if _, err := tmp.Write(data); err != nil {
		return Result{}, fmt.Errorf("write temp pdf: %w", err)
	}

	// -layout preserves what little table structure the text layer carries.
	stdout, _, err := e.runner.Run(ctx, e.cfg.Pdftotext, e.logger, "-layout", "-enc", "UTF-8", tmp.Name(), "-")
	if err != nil {
		return Result{}, fmt.Errorf("pdftotext %s: %w", filename, err)
	}

	text := strings.TrimSpace(string(stdout))
	if len(text) < MinPDFTextChars {
		e.logger.Warn("pipeline.extract.scanned_pdf", "filename", filename, "text_chars", len(text))
		return Result{}, ErrScannedPDF
	}
	return Result{Text: text, Method: "pdf-text", PDFSource: true}, nil
}

func (e *Extractor) extractImage(ctx context.Context, filename string, data []byte) (Result, error) {
	text, err := e.ocr.ParseImage(ctx, filename, data)
	if err != nil {
		return Result{}, fmt.Errorf("image ocr %s: %w", filename, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("image ocr %s: empty result", filename)
	}
	return Result{Text: text, Method: "image-ocr"}, nil
}
