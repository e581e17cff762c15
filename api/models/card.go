package models

import "github.com/alovak/cardform/scheme"

type FormatRequest struct {
	CardNumber string `json:"card_number"`
	// Scheme is optional; the number's detected scheme is used when empty.
	Scheme string `json:"scheme,omitempty"`
}

type FormatResponse struct {
	Formatted string        `json:"formatted"`
	Scheme    scheme.Scheme `json:"scheme"`
}

type ValidateCardRequest struct {
	CardNumber string `json:"card_number"`
}

type ValidateCardResponse struct {
	Valid       bool          `json:"valid"`
	Scheme      scheme.Scheme `json:"scheme"`
	Detected    bool          `json:"detected"`
	Masked      string        `json:"masked"`
	Fingerprint string        `json:"fingerprint,omitempty"`
}

type ValidateCVVRequest struct {
	CVV    string `json:"cvv"`
	Scheme string `json:"scheme"`
}

type ValidateCVVResponse struct {
	Valid bool `json:"valid"`
}

type SchemeInfo struct {
	Name       scheme.Scheme `json:"name"`
	CardGaps   []int         `json:"card_gaps"`
	CVVLengths []int         `json:"cvv_lengths"`
	Detectable bool          `json:"detectable"`
}
