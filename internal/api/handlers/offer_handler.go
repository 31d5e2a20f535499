package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qsr-digital/offer-configurator/internal/catalog"
	"github.com/qsr-digital/offer-configurator/internal/models"
	"github.com/qsr-digital/offer-configurator/internal/service"
)

// --- Request / Response DTOs ---

type SetFieldRequest struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type SetDurationRequest struct {
	Part string `json:"part"` // "from" | "to"
	Date string `json:"date"` // YYYY-MM-DD
}

type ToggleMemberRequest struct {
	Field string `json:"field"` // "segments" | "products" | "timing"
	Value string `json:"value"`
}

type CommitResponse struct {
	Offer models.Offer      `json:"offer"`
	Focus service.FocusHint `json:"focus"`
}

type TransitionResponse struct {
	Focus service.FocusHint `json:"focus"`
}

type CatalogResponse struct {
	Products  []models.Product        `json:"products"`
	Segments  []string                `json:"segments"`
	Templates []models.OfferTemplate  `json:"templates"`
	Timings   []models.OfferTimingKey `json:"timings"`
}

// --- Handler struct & constructor ---

type OfferHandler struct {
	session *service.Session
}

func NewOfferHandler(session *service.Session) *OfferHandler {
	return &OfferHandler{session: session}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// --- Handlers ---

// GetCatalog handles GET /catalog
func (h *OfferHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Products:  catalog.Products(),
		Segments:  catalog.Segments(),
		Templates: catalog.Templates(),
		Timings:   catalog.Timings(),
	})
}

// GetDraft handles GET /draft
func (h *OfferHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Draft())
}

// SetField handles PATCH /draft/field
func (h *OfferHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req SetFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if err := h.session.SetField(req.Name, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.session.Draft())
}

// SetDuration handles PATCH /draft/duration
func (h *OfferHandler) SetDuration(w http.ResponseWriter, r *http.Request) {
	var req SetDurationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if err := h.session.SetDuration(req.Part, req.Date); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.session.Draft())
}

// ToggleMember handles PATCH /draft/toggle
func (h *OfferHandler) ToggleMember(w http.ResponseWriter, r *http.Request) {
	var req ToggleMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body")
		return
	}
	if err := h.session.ToggleMember(req.Field, req.Value); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.session.Draft())
}

// ResetDraft handles POST /draft/reset
func (h *OfferHandler) ResetDraft(w http.ResponseWriter, r *http.Request) {
	h.session.ResetDraft()
	writeJSON(w, http.StatusOK, h.session.Draft())
}

// Commit handles POST /offers: banks the current draft as a pending offer.
// Validation failures come back as 400 with the single user-facing message;
// the draft stays put for correction.
func (h *OfferHandler) Commit(w http.ResponseWriter, r *http.Request) {
	offer, focus, err := h.session.Commit(r.Context())
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Message)
			return
		}
		writeError(w, http.StatusInternalServerError, "persist_failed")
		return
	}
	writeJSON(w, http.StatusCreated, CommitResponse{Offer: offer, Focus: focus})
}

// ListOffers handles GET /offers, returning the pending/active partition.
func (h *OfferHandler) ListOffers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Partition())
}

// Rollout handles POST /offers/{id}/rollout
func (h *OfferHandler) Rollout(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	focus, err := h.session.Rollout(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "persist_failed")
		return
	}
	writeJSON(w, http.StatusOK, TransitionResponse{Focus: focus})
}

// ToggleActive handles POST /offers/{id}/toggle
func (h *OfferHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	focus, err := h.session.ToggleActive(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "persist_failed")
		return
	}
	writeJSON(w, http.StatusOK, TransitionResponse{Focus: focus})
}

// DeleteOffer handles DELETE /offers/{id}
func (h *OfferHandler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.session.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "persist_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
