package models

type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "Authorized"
	PaymentStatusDeclined   PaymentStatus = "Declined"
)

// PaymentRequest carries the inbound card payment fields. It is never
// persisted and never logged; only the last four PAN digits survive
// past processing.
type PaymentRequest struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
	CVV         string `json:"cvv"`
}

// Payment is the persisted, masked record of a completed bank
// round-trip. It is immutable once created and cannot reconstruct the
// full card number or the CVV.
type Payment struct {
	ID                 string        `json:"id"`
	Status             PaymentStatus `json:"status"`
	CardNumberLastFour int           `json:"cardNumberLastFour"`
	ExpiryMonth        int           `json:"expiryMonth"`
	ExpiryYear         int           `json:"expiryYear"`
	Currency           string        `json:"currency"`
	Amount             int64         `json:"amount"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
