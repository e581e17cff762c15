// Package cardmsg carries card form input into an ISO 8583 authorization
// request: the PAN goes to field 2 and the expiry, as YYMM, to field 14.
package cardmsg

import (
	"errors"
	"fmt"

	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/internal/expiry"
	"github.com/moov-io/iso8583"
	"github.com/moov-io/iso8583/specs"
)

const (
	MTIAuthorizationRequest = "0100"

	fieldPAN    = 2
	fieldExpiry = 14
)

var ErrInvalidCard = errors.New("invalid card input")

// Card is the normalised content of a card form.
type Card struct {
	Number string
	Expiry expiry.Date
}

// FromInput normalises the raw card number and expiration date the user
// typed. The number must pass the Luhn check and the date must be complete.
func FromInput(rawNumber, rawExpiry string) (Card, error) {
	number := cardutils.RemoveNonDigits(rawNumber)
	if number == "" || !cardutils.IsValid(number) {
		return Card{}, fmt.Errorf("%w: card number fails luhn check", ErrInvalidCard)
	}
	month, year := cardutils.Standardize(rawExpiry)
	date, err := expiry.Parse(month, year)
	if err != nil {
		return Card{}, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}
	return Card{Number: number, Expiry: date}, nil
}

// Encode packs card into an authorization request message.
func Encode(card Card) ([]byte, error) {
	msg := iso8583.NewMessage(specs.Spec87ASCII)
	msg.MTI(MTIAuthorizationRequest)

	if err := msg.Field(fieldPAN, card.Number); err != nil {
		return nil, fmt.Errorf("setting field %d: %w", fieldPAN, err)
	}
	if err := msg.Field(fieldExpiry, card.Expiry.YYMM()); err != nil {
		return nil, fmt.Errorf("setting field %d: %w", fieldExpiry, err)
	}

	packed, err := msg.Pack()
	if err != nil {
		return nil, fmt.Errorf("packing message: %w", err)
	}
	return packed, nil
}

// Decode reads the card fields back from a packed message.
func Decode(packed []byte) (Card, error) {
	msg := iso8583.NewMessage(specs.Spec87ASCII)
	if err := msg.Unpack(packed); err != nil {
		return Card{}, fmt.Errorf("unpacking message: %w", err)
	}

	pan, err := msg.GetString(fieldPAN)
	if err != nil {
		return Card{}, fmt.Errorf("reading field %d: %w", fieldPAN, err)
	}
	yymm, err := msg.GetString(fieldExpiry)
	if err != nil {
		return Card{}, fmt.Errorf("reading field %d: %w", fieldExpiry, err)
	}
	if len(yymm) != 4 {
		return Card{}, fmt.Errorf("%w: field %d must be YYMM, got %q", ErrInvalidCard, fieldExpiry, yymm)
	}
	date, err := expiry.Parse(yymm[2:], yymm[:2])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %w", ErrInvalidCard, err)
	}
	return Card{Number: pan, Expiry: date}, nil
}
