package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/qsr-digital/offer-configurator/internal/api/handlers"
	"github.com/qsr-digital/offer-configurator/internal/service"
)

// NewRouter builds the HTTP router for the offer configurator.
func NewRouter(session *service.Session) http.Handler {
	r := chi.NewRouter()

	offerHandler := handlers.NewOfferHandler(session)

	// Reference catalog
	r.Get("/catalog", offerHandler.GetCatalog)

	// Draft editing
	r.Route("/draft", func(r chi.Router) {
		r.Get("/", offerHandler.GetDraft)
		r.Patch("/field", offerHandler.SetField)
		r.Patch("/duration", offerHandler.SetDuration)
		r.Patch("/toggle", offerHandler.ToggleMember)
		r.Post("/reset", offerHandler.ResetDraft)
	})

	// Offer bank and lifecycle
	r.Route("/offers", func(r chi.Router) {
		r.Get("/", offerHandler.ListOffers)
		r.Post("/", offerHandler.Commit)
		r.Post("/{id}/rollout", offerHandler.Rollout)
		r.Post("/{id}/toggle", offerHandler.ToggleActive)
		r.Delete("/{id}", offerHandler.DeleteOffer)
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
