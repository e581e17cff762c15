package models

type StandardizeExpiryRequest struct {
	ExpirationDate string `json:"expiration_date"`
}

type StandardizeExpiryResponse struct {
	Month string `json:"month"`
	Year  string `json:"year"`
	// CardFace and Expired are set only when month and year form a complete date.
	CardFace string `json:"card_face,omitempty"`
	Expired  *bool  `json:"expired,omitempty"`
}

type AuthorizationMessageRequest struct {
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
}

type AuthorizationMessageResponse struct {
	MTI string `json:"mti"`
	// Message is the packed ISO 8583 message, hex encoded.
	Message string `json:"message"`
}
