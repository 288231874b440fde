package constants

// QuoteStatus is the canonical processing state for rows in quote_records.
type QuoteStatus string

// Stable values (store these exact strings in DB).
const (
	QuoteUploaded     QuoteStatus = "uploaded"      // initial, set at record creation
	QuoteInProcessing QuoteStatus = "in_processing" // claimed by the background pipeline
	QuoteCompleted    QuoteStatus = "completed"     // structured payload populated
	QuoteError        QuoteStatus = "error"         // terminal failure, error message populated
)

// OfferStatus is the lifecycle state for rows in counter_offers.
type OfferStatus string

const (
	OfferSent     OfferStatus = "sent"
	OfferViewed   OfferStatus = "viewed"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

// QuoteStatuses holds the allowed values for the quote record status field.
var QuoteStatuses = []string{
	string(QuoteUploaded),
	string(QuoteInProcessing),
	string(QuoteCompleted),
	string(QuoteError),
}

// OfferStatuses holds the allowed values for the counter-offer status field.
var OfferStatuses = []string{
	string(OfferSent),
	string(OfferViewed),
	string(OfferAccepted),
	string(OfferRejected),
}
