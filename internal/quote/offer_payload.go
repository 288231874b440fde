package quote

import (
	"encoding/json"
	"fmt"
)

// NoMatch is the matched-description marker used when a patient line item has
// no sufficiently similar entry in the provider's price list.
const NoMatch = "no match"

// OfferLine is one reconciled counter-offer line: the patient's original
// description paired with the closest price-list entry (or NoMatch), the
// patient's quantity, and the reconciled line total (0 when unmatched).
type OfferLine struct {
	OriginalDescription string  `json:"original_description"`
	MatchedDescription  string  `json:"matched_description"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
}

// OfferPayload is the structured body of one counter-offer.
type OfferPayload struct {
	Lines []OfferLine `json:"offer_items"`
	Total float64     `json:"total"`
}

// Sum returns the sum of reconciled line prices.
func (p OfferPayload) Sum() float64 {
	var s float64
	for _, l := range p.Lines {
		s += l.Price
	}
	return s
}

// ParseOfferPayload schema-validates raw JSON and decodes it into an OfferPayload.
func ParseOfferPayload(raw []byte) (OfferPayload, error) {
	if err := ValidateAgainstSchema(OfferSchema(), raw); err != nil {
		return OfferPayload{}, err
	}
	var p OfferPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return OfferPayload{}, fmt.Errorf("unmarshal offer payload: %w", err)
	}
	return p, nil
}
