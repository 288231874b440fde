package quote

import (
	"encoding/json"
	"fmt"
)

// LineItem is one extracted quote line. Price is the line's TOTAL cost
// (unit price multiplied by quantity), as a plain decimal.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Payload is the structured representation of one uploaded quote.
// Total carries the document's printed grand total when the source had one,
// which may exceed the sum of line prices (extra fees).
type Payload struct {
	LineItems []LineItem `json:"line_items"`
	Total     float64    `json:"total"`
}

// Sum returns the sum of line prices.
func (p Payload) Sum() float64 {
	var s float64
	for _, it := range p.LineItems {
		s += it.Price
	}
	return s
}

// ParsePayload schema-validates raw JSON and decodes it into a Payload.
func ParsePayload(raw []byte) (Payload, error) {
	if err := ValidateAgainstSchema(PayloadSchema(), raw); err != nil {
		return Payload{}, err
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Payload{}, fmt.Errorf("unmarshal quote payload: %w", err)
	}
	return p, nil
}

// Confirmed builds the payload persisted by the patient confirmation step:
// the submitted line items with the total recomputed as the sum of line
// prices, regardless of any previously stored total.
func Confirmed(items []LineItem) Payload {
	p := Payload{LineItems: items}
	p.Total = p.Sum()
	return p
}

// Marshal encodes a payload for persistence.
func Marshal(p Payload) (json.RawMessage, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal quote payload: %w", err)
	}
	return b, nil
}
