package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alovak/cardform/api/models"
	"github.com/alovak/cardform/internal/cardmsg"
	"github.com/alovak/cardform/scheme"
	"github.com/go-chi/chi/v5"
)

// API is a HTTP API over the card form helpers
type API struct {
	svc *Service
	now func() time.Time
}

func NewAPI(svc *Service) *API {
	return &API{
		svc: svc,
		now: time.Now,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Get("/schemes", a.listSchemes)
	r.Route("/cards", func(r chi.Router) {
		r.Post("/format", a.formatCard)
		r.Post("/validate", a.validateCard)
		r.Post("/iso8583", a.authorizationMessage)
	})
	r.Post("/cvv/validate", a.validateCVV)
	r.Post("/expiry/standardize", a.standardizeExpiry)
}

func (a *API) listSchemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.svc.Schemes())
}

func (a *API) formatCard(w http.ResponseWriter, r *http.Request) {
	req := models.FormatRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.svc.Format(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) validateCard(w http.ResponseWriter, r *http.Request) {
	req := models.ValidateCardRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, a.svc.ValidateCard(req))
}

func (a *API) validateCVV(w http.ResponseWriter, r *http.Request) {
	req := models.ValidateCVVRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.svc.ValidateCVV(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (a *API) standardizeExpiry(w http.ResponseWriter, r *http.Request) {
	req := models.StandardizeExpiryRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, a.svc.StandardizeExpiry(req, a.now()))
}

func (a *API) authorizationMessage(w http.ResponseWriter, r *http.Request) {
	req := models.AuthorizationMessageRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.svc.AuthorizationMessage(req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// writeError maps input errors to 400 and anything else to 500.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, scheme.ErrUnknownScheme) || errors.Is(err, cardmsg.ErrInvalidCard) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
