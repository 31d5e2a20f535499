package store

import (
	"context"
	"fmt"
	"log"

	json "github.com/goccy/go-json"

	"github.com/qsr-digital/offer-configurator/internal/models"
	"github.com/qsr-digital/offer-configurator/pkg/kvstore"
)

// BankKey is the single well-known key the offer bank is persisted under.
const BankKey = "offerBank"

// Bank is the ordered collection of banked offers. Newest offers sit at the
// front. Every mutation rewrites the whole collection to the durable store.
type Bank struct {
	kv     kvstore.Store
	offers []models.Offer
}

// Open rehydrates the bank from the durable store. A missing key, corrupt
// JSON or a read failure all yield an empty bank; startup never fails on
// bad persisted state.
func Open(ctx context.Context, kv kvstore.Store) *Bank {
	b := &Bank{kv: kv}

	raw, ok, err := kv.Get(ctx, BankKey)
	if err != nil {
		log.Printf("offer bank load: %v; starting empty", err)
		return b
	}
	if !ok {
		return b
	}
	var offers []models.Offer
	if err := json.Unmarshal([]byte(raw), &offers); err != nil {
		log.Printf("offer bank unparseable: %v; starting empty", err)
		return b
	}
	b.offers = offers
	return b
}

// Offers returns a snapshot copy of the bank in display order.
func (b *Bank) Offers() []models.Offer {
	out := make([]models.Offer, len(b.offers))
	copy(out, b.offers)
	return out
}

// Len reports how many offers are banked.
func (b *Bank) Len() int { return len(b.offers) }

// Add prepends the offer and persists.
func (b *Bank) Add(ctx context.Context, o models.Offer) error {
	b.offers = append([]models.Offer{o}, b.offers...)
	return b.persist(ctx)
}

// Update applies fn to the offer with the given id and persists. An unknown
// id is a no-op: the record is treated as already resolved, not as an error.
func (b *Bank) Update(ctx context.Context, id string, fn func(*models.Offer)) error {
	for i := range b.offers {
		if b.offers[i].ID == id {
			fn(&b.offers[i])
			return b.persist(ctx)
		}
	}
	return nil
}

// Remove deletes the offer with the given id and persists; no-op if absent.
func (b *Bank) Remove(ctx context.Context, id string) error {
	for i := range b.offers {
		if b.offers[i].ID == id {
			b.offers = append(b.offers[:i], b.offers[i+1:]...)
			return b.persist(ctx)
		}
	}
	return nil
}

func (b *Bank) persist(ctx context.Context) error {
	data, err := json.Marshal(b.offers)
	if err != nil {
		return fmt.Errorf("marshal offer bank: %w", err)
	}
	if err := b.kv.Set(ctx, BankKey, string(data)); err != nil {
		return fmt.Errorf("persist offer bank: %w", err)
	}
	return nil
}

// Partition splits an offer snapshot into the two display groups, keeping
// the snapshot's order within each group.
type Partition struct {
	Pending []models.Offer `json:"pending"`
	Active  []models.Offer `json:"active"`
}

func PartitionOffers(offers []models.Offer) Partition {
	p := Partition{
		Pending: []models.Offer{},
		Active:  []models.Offer{},
	}
	for _, o := range offers {
		if o.IsActive {
			p.Active = append(p.Active, o)
		} else {
			p.Pending = append(p.Pending, o)
		}
	}
	return p
}
