package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/smilematch/quotes/internal/llm"
	"github.com/smilematch/quotes/internal/quote"
)

func structureSystemPrompt(pdfSource bool) string {
	parts := []string{
		"You are a dental treatment quote parser. The input is raw text extracted from a dental quote document, usually in Italian.",
		"Return ONLY JSON that matches the JSON Schema provided.",
		"Each line item is one treatment: description as written in the document, quantity (default 1 if absent), and price as the LINE TOTAL (unit price times quantity), in euro as a plain number without currency symbols or thousands separators.",
		"'total' is the grand total printed on the document. If no grand total is printed, use the sum of line prices.",
		"Ignore headers, footers, clinic contact details, legal boilerplate, and anything that is not a billed treatment line.",
		"Never invent treatments that are not in the text. Never output null.",
	}
	if pdfSource {
		parts = append(parts,
			"The text came from a PDF text layer and column alignment may be broken: descriptions and prices can appear on separate lines or out of order. Re-associate each price with the treatment it belongs to before answering.")
	}
	return strings.Join(parts, " ")
}

func structureUserPrompt(text string) string {
	return "Document text:\n\"\"\"\n" + text + "\n\"\"\"\n\nReturn ONLY JSON that matches the provided schema."
}

func reconcileSystemPrompt() string {
	return strings.Join([]string{
		"You are a dental price list matcher. You receive a patient's structured quote and one clinic's price list.",
		"For EVERY quote line item produce exactly one offer item, in the same order.",
		"Match each treatment description to the most similar price list entry. Treatments are often phrased differently between clinics; match on meaning, not exact wording.",
		fmt.Sprintf("If no price list entry describes the same treatment, set matched_description to %q and price to 0.", quote.NoMatch),
		"For matched lines, price is the price list entry's price multiplied by the quote line's quantity.",
		"'total' is the sum of all offer item prices.",
		"Return ONLY JSON that matches the JSON Schema provided. Never output null.",
	}, " ")
}

func reconcileUserPrompt(req llm.ReconcileRequest) (string, error) {
	q, err := json.Marshal(req.Quote)
	if err != nil {
		return "", fmt.Errorf("marshal quote for prompt: %w", err)
	}
	pl, err := json.Marshal(req.PriceList)
	if err != nil {
		return "", fmt.Errorf("marshal price list for prompt: %w", err)
	}
	return "Patient quote:\n" + string(q) + "\n\nClinic price list:\n" + string(pl) +
		"\n\nReturn ONLY JSON that matches the provided schema.", nil
}
