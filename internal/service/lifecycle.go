package service

import (
	"context"
	"sync"

	"github.com/qsr-digital/offer-configurator/internal/builder"
	"github.com/qsr-digital/offer-configurator/internal/models"
	"github.com/qsr-digital/offer-configurator/internal/store"
)

// FocusHint tells the presentation layer which partition a lifecycle
// transition landed the offer in. The UI may honor or ignore it.
type FocusHint string

const (
	FocusNone    FocusHint = ""
	FocusPending FocusHint = "pending"
	FocusActive  FocusHint = "active"
)

// OfferBank is what the controller needs from the store (interface so tests
// can substitute their own).
type OfferBank interface {
	Offers() []models.Offer
	Add(ctx context.Context, o models.Offer) error
	Update(ctx context.Context, id string, fn func(*models.Offer)) error
	Remove(ctx context.Context, id string) error
}

// Session owns one draft and one bank and serializes all mutations behind a
// single lock; there is one logical writer, the interactive user.
type Session struct {
	mu    sync.Mutex
	draft *builder.Draft
	bank  OfferBank
	newID builder.IDGenerator
}

func NewSession(bank OfferBank, newID builder.IDGenerator) *Session {
	return &Session{
		draft: builder.NewDraft(),
		bank:  bank,
		newID: newID,
	}
}

// Draft returns a snapshot of the current draft configuration.
func (s *Session) Draft() models.OfferConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Config()
}

func (s *Session) SetField(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.SetField(name, value)
}

func (s *Session) SetDuration(part, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.SetDuration(part, date)
}

func (s *Session) ToggleMember(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.ToggleMember(field, value)
}

func (s *Session) ResetDraft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Reset()
}

// Commit validates the draft, banks the resulting pending offer and resets
// the draft. On a validation failure the draft is left untouched for
// correction and the *models.ValidationError carries the user message.
func (s *Session) Commit(ctx context.Context) (models.Offer, FocusHint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if errs := s.draft.Validate(); len(errs) > 0 {
		return models.Offer{}, FocusNone, &errs[0]
	}
	offer, err := s.draft.Build(s.newID)
	if err != nil {
		return models.Offer{}, FocusNone, err
	}
	if err := s.bank.Add(ctx, offer); err != nil {
		return models.Offer{}, FocusNone, err
	}
	s.draft.Reset()
	return offer, FocusPending, nil
}

// Rollout moves a pending offer to active. Already-active offers are left
// unchanged; there is no reverse transition here.
func (s *Session) Rollout(ctx context.Context, id string) (FocusHint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.bank.Update(ctx, id, func(o *models.Offer) {
		o.IsActive = true
	})
	if err != nil {
		return FocusNone, err
	}
	return FocusActive, nil
}

// ToggleActive flips an offer between pending and active and hints at the
// partition it ended up in. An unknown id is a no-op with no hint.
func (s *Session) ToggleActive(ctx context.Context, id string) (FocusHint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hint := FocusNone
	err := s.bank.Update(ctx, id, func(o *models.Offer) {
		o.IsActive = !o.IsActive
		if o.IsActive {
			hint = FocusActive
		} else {
			hint = FocusPending
		}
	})
	if err != nil {
		return FocusNone, err
	}
	return hint, nil
}

// Delete removes the offer from the bank. Terminal: recreate via the draft
// to get it back.
func (s *Session) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Remove(ctx, id)
}

// Offers returns the bank snapshot in display order.
func (s *Session) Offers() []models.Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bank.Offers()
}

// Partition returns the pending/active display split of the current bank.
func (s *Session) Partition() store.Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return store.PartitionOffers(s.bank.Offers())
}
