package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qsr-digital/offer-configurator/internal/models"
	"github.com/qsr-digital/offer-configurator/pkg/kvstore"
)

func testOffer(id string, active bool) models.Offer {
	return models.Offer{
		ID:            id,
		Name:          "Single Item Discount for Classic Burger",
		Description:   "test offer " + id,
		Type:          models.OfferTypeMass,
		Duration:      models.OfferDuration{FromDate: "2025-05-01", ToDate: "2025-05-10"},
		Products:      []string{"Classic Burger"},
		Template:      models.TemplateSingleItemDiscount,
		DiscountDepth: "50% off",
		Timing:        []models.OfferTimingKey{models.TimingAnytime},
		IsActive:      active,
	}
}

func TestOpenEmptyStore(t *testing.T) {
	bank := Open(context.Background(), kvstore.NewMemory())
	require.Zero(t, bank.Len())
	require.Empty(t, bank.Offers())
}

func TestOpenCorruptValueStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set(ctx, BankKey, "{not json"))

	bank := Open(ctx, kv)
	require.Zero(t, bank.Len())
}

func TestAddPrepends(t *testing.T) {
	ctx := context.Background()
	bank := Open(ctx, kvstore.NewMemory())

	require.NoError(t, bank.Add(ctx, testOffer("first", false)))
	require.NoError(t, bank.Add(ctx, testOffer("second", false)))

	offers := bank.Offers()
	require.Len(t, offers, 2)
	require.Equal(t, "second", offers[0].ID)
	require.Equal(t, "first", offers[1].ID)
}

func TestPersistLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	bank := Open(ctx, kv)

	require.NoError(t, bank.Add(ctx, testOffer("a", false)))
	require.NoError(t, bank.Add(ctx, testOffer("b", true)))
	require.NoError(t, bank.Add(ctx, testOffer("c", false)))

	reloaded := Open(ctx, kv)
	require.Equal(t, bank.Offers(), reloaded.Offers())
}

func TestUpdateMutatesAndPersists(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemory()
	bank := Open(ctx, kv)
	require.NoError(t, bank.Add(ctx, testOffer("a", false)))

	require.NoError(t, bank.Update(ctx, "a", func(o *models.Offer) {
		o.IsActive = true
	}))
	require.True(t, bank.Offers()[0].IsActive)

	reloaded := Open(ctx, kv)
	require.True(t, reloaded.Offers()[0].IsActive)
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	bank := Open(ctx, kvstore.NewMemory())
	require.NoError(t, bank.Add(ctx, testOffer("a", false)))

	called := false
	require.NoError(t, bank.Update(ctx, "ghost", func(o *models.Offer) { called = true }))
	require.False(t, called)
	require.Equal(t, 1, bank.Len())
}

func TestRemoveExactlyOne(t *testing.T) {
	ctx := context.Background()
	bank := Open(ctx, kvstore.NewMemory())
	require.NoError(t, bank.Add(ctx, testOffer("a", false)))
	require.NoError(t, bank.Add(ctx, testOffer("b", false)))

	require.NoError(t, bank.Remove(ctx, "a"))
	require.Equal(t, 1, bank.Len())
	require.Equal(t, "b", bank.Offers()[0].ID)

	// absent id leaves the size untouched
	require.NoError(t, bank.Remove(ctx, "a"))
	require.Equal(t, 1, bank.Len())
}

func TestPartitionDisjointUnionOrdered(t *testing.T) {
	ctx := context.Background()
	bank := Open(ctx, kvstore.NewMemory())
	for i := 0; i < 6; i++ {
		require.NoError(t, bank.Add(ctx, testOffer(fmt.Sprintf("o%d", i), i%2 == 0)))
	}

	p := PartitionOffers(bank.Offers())

	require.Len(t, p.Active, 3)
	require.Len(t, p.Pending, 3)

	seen := map[string]bool{}
	for _, o := range append(p.Pending, p.Active...) {
		require.False(t, seen[o.ID], "id %s in both partitions", o.ID)
		seen[o.ID] = true
	}
	require.Len(t, seen, bank.Len())

	// store order (newest first) preserved within each partition
	require.Equal(t, []string{"o4", "o2", "o0"}, ids(p.Active))
	require.Equal(t, []string{"o5", "o3", "o1"}, ids(p.Pending))
	for _, o := range p.Active {
		require.True(t, o.IsActive)
	}
	for _, o := range p.Pending {
		require.False(t, o.IsActive)
	}
}

func ids(offers []models.Offer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}
