package api

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/alovak/cardform/api/models"
	"github.com/alovak/cardform/cardutils"
	"github.com/alovak/cardform/internal/cardgen"
	"github.com/alovak/cardform/internal/cardmsg"
	"github.com/alovak/cardform/internal/expiry"
	"github.com/alovak/cardform/scheme"
)

// Service answers the API requests with the card helpers.
type Service struct {
	utils          *cardutils.Utils
	loc            *time.Location
	fingerprintKey []byte
}

// NewService builds a service. A nil loc means UTC; an empty fingerprintKey
// leaves fingerprints out of validation results.
func NewService(utils *cardutils.Utils, loc *time.Location, fingerprintKey []byte) *Service {
	if utils == nil {
		utils = cardutils.New(nil)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		utils:          utils,
		loc:            loc,
		fingerprintKey: fingerprintKey,
	}
}

func (s *Service) Schemes() []models.SchemeInfo {
	all := s.utils.Schemes().All()
	out := make([]models.SchemeInfo, 0, len(all))
	for _, m := range all {
		out = append(out, models.SchemeInfo{
			Name:       m.Scheme,
			CardGaps:   m.CardGaps,
			CVVLengths: m.CVVLengths,
			Detectable: m.Detectable(),
		})
	}
	return out
}

// Format formats the digits of the card number. An empty scheme name means
// the detected scheme, or scheme.Unknown when nothing matches.
func (s *Service) Format(req models.FormatRequest) (models.FormatResponse, error) {
	number := cardutils.RemoveNonDigits(req.CardNumber)

	var sch scheme.Scheme
	if req.Scheme == "" {
		sch, _ = s.utils.TypeOf(number)
	} else {
		var err error
		sch, err = scheme.Parse(req.Scheme)
		if err != nil {
			return models.FormatResponse{}, err
		}
	}

	return models.FormatResponse{
		Formatted: s.utils.Format(number, sch),
		Scheme:    sch,
	}, nil
}

func (s *Service) ValidateCard(req models.ValidateCardRequest) models.ValidateCardResponse {
	card := s.utils.Describe(req.CardNumber)
	resp := models.ValidateCardResponse{
		Valid:    card.Valid && card.Number != "",
		Scheme:   card.Scheme,
		Detected: card.Detected,
		Masked:   cardgen.MaskPAN(card.Number),
	}
	if len(s.fingerprintKey) > 0 && card.Number != "" {
		resp.Fingerprint = cardgen.Fingerprint(card.Number, s.fingerprintKey)
	}
	return resp
}

func (s *Service) ValidateCVV(req models.ValidateCVVRequest) (models.ValidateCVVResponse, error) {
	sch, err := scheme.Parse(req.Scheme)
	if err != nil {
		return models.ValidateCVVResponse{}, err
	}
	return models.ValidateCVVResponse{Valid: s.utils.IsValidCVV(req.CVV, sch)}, nil
}

func (s *Service) StandardizeExpiry(req models.StandardizeExpiryRequest, now time.Time) models.StandardizeExpiryResponse {
	month, year := cardutils.Standardize(req.ExpirationDate)
	resp := models.StandardizeExpiryResponse{Month: month, Year: year}

	date, err := expiry.Parse(month, year)
	if err != nil {
		return resp
	}
	expired := date.IsExpired(now, s.loc)
	resp.CardFace = date.CardFace()
	resp.Expired = &expired
	return resp
}

func (s *Service) AuthorizationMessage(req models.AuthorizationMessageRequest) (models.AuthorizationMessageResponse, error) {
	card, err := cardmsg.FromInput(req.CardNumber, req.ExpirationDate)
	if err != nil {
		return models.AuthorizationMessageResponse{}, err
	}
	packed, err := cardmsg.Encode(card)
	if err != nil {
		return models.AuthorizationMessageResponse{}, fmt.Errorf("encoding authorization message: %w", err)
	}
	return models.AuthorizationMessageResponse{
		MTI:     cardmsg.MTIAuthorizationRequest,
		Message: hex.EncodeToString(packed),
	}, nil
}
