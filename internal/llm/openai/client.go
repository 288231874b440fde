package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/smilematch/quotes/internal/llm"
	"github.com/smilematch/quotes/internal/quote"
)

// StructureQuote implements llm.QuoteStructurer using text-only chat/completions.
func (c *Client) StructureQuote(ctx context.Context, req llm.StructureRequest) (quote.Payload, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.structure.start",
		"req_id", rid,
		"model", c.cfg.StructuringModel,
		"text_len", len(req.Text),
		"pdf_source", req.PDFSource,
	)

	schema := quote.PayloadSchema()
	body := map[string]any{
		"model":           c.cfg.StructuringModel,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": structureSystemPrompt(req.PDFSource)},
			{"role": "user", "content": structureUserPrompt(req.Text)},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	raw, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.structure.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.Payload{}, nil, err
	}

	content, err := c.content(raw)
	if err != nil {
		c.log.Error("llm.structure.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.Payload{}, raw, err
	}

	p, err := quote.ParsePayload(content)
	if err != nil {
		c.log.Error("llm.structure.invalid_payload",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.Payload{}, content, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	c.log.Info("llm.structure.ok",
		"req_id", rid,
		"line_items", len(p.LineItems),
		"total", p.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return p, content, nil
}

// ReconcileOffer implements llm.OfferReconciler.
func (c *Client) ReconcileOffer(ctx context.Context, req llm.ReconcileRequest) (quote.OfferPayload, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.reconcile.start",
		"req_id", rid,
		"model", c.cfg.ReconcileModel,
		"line_items", len(req.Quote.LineItems),
		"price_entries", len(req.PriceList),
	)

	schema := quote.OfferSchema()
	user, err := reconcileUserPrompt(req)
	if err != nil {
		return quote.OfferPayload{}, nil, err
	}
	body := map[string]any{
		"model":           c.cfg.ReconcileModel,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": reconcileSystemPrompt()},
			{"role": "user", "content": user},
			{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
		},
	}

	raw, err := c.chat(ctx, body)
	if err != nil {
		c.log.Error("llm.reconcile.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.OfferPayload{}, nil, err
	}

	content, err := c.content(raw)
	if err != nil {
		c.log.Error("llm.reconcile.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.OfferPayload{}, raw, err
	}

	p, err := quote.ParseOfferPayload(content)
	if err != nil {
		c.log.Error("llm.reconcile.invalid_payload",
			"req_id", rid, "error", err, "content", string(content),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return quote.OfferPayload{}, content, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
	}

	c.log.Info("llm.reconcile.ok",
		"req_id", rid,
		"offer_lines", len(p.Lines),
		"total", p.Total,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return p, content, nil
}

func (c *Client) chat(ctx context.Context, body map[string]any) ([]byte, error) {
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	return c.post(ctx, endpoint, body)
}

// content pulls the first choice's message content out of a chat response.
func (c *Client) content(raw []byte) ([]byte, error) {
	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, fmt.Errorf("no choices in openai response")
	}
	return []byte(strings.TrimSpace(cc.Choices[0].Message.Content)), nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}()

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
