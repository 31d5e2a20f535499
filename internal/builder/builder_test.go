package builder

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/qsr-digital/offer-configurator/internal/models"
)

func validDraft() *Draft {
	d := NewDraft()
	_ = d.SetDuration("from", "2025-05-01")
	_ = d.SetDuration("to", "2025-05-10")
	_ = d.ToggleMember("products", "Classic Burger")
	_ = d.SetField("discountDepth", "50% off")
	return d
}

func fixedID() IDGenerator {
	return ManualID(func() time.Time {
		return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	})
}

func TestDraftDefaults(t *testing.T) {
	cfg := NewDraft().Config()

	require.Equal(t, models.OfferTypeMass, cfg.Type)
	require.Equal(t, models.TemplateSingleItemDiscount, cfg.Template)
	require.Empty(t, cfg.Duration.FromDate)
	require.Empty(t, cfg.Duration.ToDate)
	require.Empty(t, cfg.Products)
	require.Empty(t, cfg.Segments)
	require.Empty(t, cfg.DiscountDepth)
	require.Equal(t, []models.OfferTimingKey{models.TimingAnytime}, cfg.Timing)
}

func TestSetFieldUnknownField(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.SetField("template", string(models.TemplateBOGO)))
	require.Error(t, d.SetField("isActive", "true"))
	require.Error(t, d.SetDuration("middle", "2025-05-01"))
	require.Error(t, d.ToggleMember("cycles", "weekly"))
}

func TestToggleMemberSymmetricDifference(t *testing.T) {
	d := NewDraft()

	require.NoError(t, d.ToggleMember("products", "Fries (Large)"))
	require.NoError(t, d.ToggleMember("products", "Soda (Large)"))
	require.Equal(t, []string{"Fries (Large)", "Soda (Large)"}, d.Config().Products)

	// toggling an existing member removes it, order of the rest is kept
	require.NoError(t, d.ToggleMember("products", "Fries (Large)"))
	require.Equal(t, []string{"Soda (Large)"}, d.Config().Products)

	// re-adding appends at the end
	require.NoError(t, d.ToggleMember("products", "Fries (Large)"))
	require.Equal(t, []string{"Soda (Large)", "Fries (Large)"}, d.Config().Products)
}

func TestToggleTimingDefaultsOut(t *testing.T) {
	d := NewDraft()
	require.NoError(t, d.ToggleMember("timing", "Anytime"))
	require.Empty(t, d.Config().Timing)
	require.NoError(t, d.ToggleMember("timing", "Weekend"))
	require.Equal(t, []models.OfferTimingKey{models.TimingWeekend}, d.Config().Timing)
}

func TestValidateOrderAndMessages(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Draft)
		wantMsg string
	}{
		{
			name:    "missing dates first",
			mutate:  func(d *Draft) { _ = d.SetDuration("from", "") },
			wantMsg: "Please set both 'From Date' and 'To Date' for the offer.",
		},
		{
			name: "to before from",
			mutate: func(d *Draft) {
				_ = d.SetDuration("from", "2025-05-10")
				_ = d.SetDuration("to", "2025-05-01")
			},
			wantMsg: "'To Date' cannot be earlier than 'From Date'.",
		},
		{
			name:    "unparseable date fails the ordering check",
			mutate:  func(d *Draft) { _ = d.SetDuration("to", "soon") },
			wantMsg: "'To Date' cannot be earlier than 'From Date'.",
		},
		{
			name:    "no products",
			mutate:  func(d *Draft) { _ = d.ToggleMember("products", "Classic Burger") },
			wantMsg: "Please select at least one product for the offer.",
		},
		{
			name:    "blank discount depth",
			mutate:  func(d *Draft) { _ = d.SetField("discountDepth", "   ") },
			wantMsg: "Please specify the discount depth or offer details.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(d)
			errs := d.Validate()
			require.NotEmpty(t, errs)
			require.Equal(t, tc.wantMsg, errs[0].Message)
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	require.Empty(t, validDraft().Validate())
}

func TestValidateCalendarNotLexical(t *testing.T) {
	// crossing a year boundary keeps calendar order even though the check
	// would also pass lexically; the reversed window must fail
	d := validDraft()
	_ = d.SetDuration("from", "2024-12-31")
	_ = d.SetDuration("to", "2025-01-01")
	require.Empty(t, d.Validate())

	_ = d.SetDuration("from", "2025-01-01")
	_ = d.SetDuration("to", "2024-12-31")
	require.NotEmpty(t, d.Validate())
}

func TestValidateSameDayWindow(t *testing.T) {
	d := validDraft()
	_ = d.SetDuration("from", "2025-05-01")
	_ = d.SetDuration("to", "2025-05-01")
	require.Empty(t, d.Validate())
}

func TestBuildDerivesNameAndDescription(t *testing.T) {
	d := NewDraft()
	_ = d.SetField("template", string(models.TemplateBOGO))
	_ = d.SetDuration("from", "2025-05-01")
	_ = d.SetDuration("to", "2025-05-10")
	_ = d.ToggleMember("products", "Fries (Large)")
	_ = d.ToggleMember("products", "Soda (Large)")
	_ = d.SetField("discountDepth", "Second item free")

	offer, err := d.Build(fixedID())
	require.NoError(t, err)

	require.Equal(t, "Buy One Get One Free for Fries (Large) & more", offer.Name)
	require.Equal(t,
		"Manually configured Buy One Get One Free for Fries (Large), Soda (Large). Valid from 2025-05-01 to 2025-05-10.",
		offer.Description)
	require.False(t, offer.IsActive)
	require.True(t, strings.HasPrefix(offer.ID, "manual-"))
}

func TestBuildSingleProductNameHasNoSuffix(t *testing.T) {
	offer, err := validDraft().Build(fixedID())
	require.NoError(t, err)
	require.Equal(t, "Single Item Discount for Classic Burger", offer.Name)
}

func TestBuildRejectsInvalidDraft(t *testing.T) {
	d := NewDraft()
	_, err := d.Build(fixedID())
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBuildSnapshotsMemberSets(t *testing.T) {
	d := validDraft()
	offer, err := d.Build(fixedID())
	require.NoError(t, err)

	d.Reset()
	require.Equal(t, []string{"Classic Burger"}, offer.Products)
}

func TestManualIDUnique(t *testing.T) {
	gen := fixedID()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
