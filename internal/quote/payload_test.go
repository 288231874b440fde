package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePayloadValid(t *testing.T) {
	raw := []byte(`{
		"line_items": [
			{"description": "Igiene dentale", "quantity": 1, "price": 80},
			{"description": "Otturazione", "quantity": 2, "price": 240}
		],
		"total": 350
	}`)

	p, err := ParsePayload(raw)

	assert.NoError(t, err)
	assert.Len(t, p.LineItems, 2)
	assert.Equal(t, 350.0, p.Total)
	assert.Equal(t, 320.0, p.Sum())
}

func TestParsePayloadRejectsMissingTotal(t *testing.T) {
	raw := []byte(`{"line_items": [{"description": "x", "quantity": 1, "price": 1}]}`)
	_, err := ParsePayload(raw)
	assert.Error(t, err)
}

func TestParsePayloadRejectsEmptyDescription(t *testing.T) {
	raw := []byte(`{"line_items": [{"description": "", "quantity": 1, "price": 1}], "total": 1}`)
	_, err := ParsePayload(raw)
	assert.Error(t, err)
}

func TestParsePayloadRejectsZeroQuantity(t *testing.T) {
	raw := []byte(`{"line_items": [{"description": "x", "quantity": 0, "price": 1}], "total": 1}`)
	_, err := ParsePayload(raw)
	assert.Error(t, err)
}

func TestParsePayloadRejectsNegativePrice(t *testing.T) {
	raw := []byte(`{"line_items": [{"description": "x", "quantity": 1, "price": -5}], "total": 1}`)
	_, err := ParsePayload(raw)
	assert.Error(t, err)
}

func TestParsePayloadRejectsUnknownFields(t *testing.T) {
	raw := []byte(`{"line_items": [], "total": 0, "notes": "hi"}`)
	_, err := ParsePayload(raw)
	assert.Error(t, err)
}

func TestConfirmedRecomputesTotal(t *testing.T) {
	items := []LineItem{
		{Description: "Igiene dentale", Quantity: 1, Price: 80},
		{Description: "Otturazione", Quantity: 2, Price: 240},
	}

	// The document printed 350 but confirmation always uses the line sum.
	p := Confirmed(items)

	assert.Equal(t, 320.0, p.Total)
	assert.Equal(t, items, p.LineItems)
}

func TestConfirmedIsIdempotent(t *testing.T) {
	items := []LineItem{{Description: "x", Quantity: 1, Price: 100}}
	once := Confirmed(items)
	twice := Confirmed(once.LineItems)
	assert.Equal(t, once, twice)
}

func TestConfirmedRoundTripsThroughSchema(t *testing.T) {
	p := Confirmed([]LineItem{{Description: "Impianto", Quantity: 1, Price: 900}})
	raw, err := Marshal(p)
	assert.NoError(t, err)

	back, err := ParsePayload(raw)
	assert.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestParseOfferPayloadValid(t *testing.T) {
	raw := []byte(`{
		"offer_items": [
			{"original_description": "Igiene dentale", "matched_description": "Igiene orale professionale", "quantity": 1, "price": 70},
			{"original_description": "Trattamento laser", "matched_description": "no match", "quantity": 1, "price": 0}
		],
		"total": 70
	}`)

	p, err := ParseOfferPayload(raw)

	assert.NoError(t, err)
	assert.Len(t, p.Lines, 2)
	assert.Equal(t, NoMatch, p.Lines[1].MatchedDescription)
	assert.Equal(t, 70.0, p.Sum())
}

func TestParseOfferPayloadRejectsMissingMatch(t *testing.T) {
	raw := []byte(`{"offer_items": [{"original_description": "x", "quantity": 1, "price": 0}], "total": 0}`)
	_, err := ParseOfferPayload(raw)
	assert.Error(t, err)
}
