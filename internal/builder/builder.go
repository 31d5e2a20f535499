// Package builder owns the in-progress offer draft: field edits, the
// commit-time validation rules and the construction of a bankable Offer
// from a valid draft.
package builder

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/qsr-digital/offer-configurator/internal/models"
)

const dateLayout = "2006-01-02"

// IDGenerator produces a new offer id. Ids must stay unique for the
// lifetime of the bank.
type IDGenerator func() string

// ManualID generates ids in the form "manual-<unix millis>-<suffix>", with
// the suffix taken from a fresh UUID so same-millisecond commits cannot
// collide.
func ManualID(now func() time.Time) IDGenerator {
	return func() string {
		suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
		return fmt.Sprintf("manual-%d-%s", now().UnixMilli(), suffix)
	}
}

// Draft is a mutable offer configuration. One draft exists per session; it
// is owned by its caller, not shared process-wide.
type Draft struct {
	cfg models.OfferConfig
}

func NewDraft() *Draft {
	d := &Draft{}
	d.Reset()
	return d
}

// Reset restores the documented defaults: a Mass offer with a single-item
// discount template, no dates, no products and Anytime timing.
func (d *Draft) Reset() {
	d.cfg = models.OfferConfig{
		Type:     models.OfferTypeMass,
		Template: models.TemplateSingleItemDiscount,
		Segments: []string{},
		Products: []string{},
		Timing:   []models.OfferTimingKey{models.TimingAnytime},
	}
}

// Config returns a snapshot of the draft with copied member sets.
func (d *Draft) Config() models.OfferConfig {
	cfg := d.cfg
	cfg.Segments = copyStrings(d.cfg.Segments)
	cfg.Products = copyStrings(d.cfg.Products)
	cfg.Timing = copyTimings(d.cfg.Timing)
	return cfg
}

// SetField sets one scalar draft field. Values are stored as given; nothing
// is validated until commit.
func (d *Draft) SetField(name, value string) error {
	switch name {
	case "type":
		d.cfg.Type = models.OfferType(value)
	case "cycles":
		d.cfg.Cycles = value
	case "template":
		d.cfg.Template = models.OfferTemplate(value)
	case "discountDepth":
		d.cfg.DiscountDepth = value
	default:
		return fmt.Errorf("unknown draft field %q", name)
	}
	return nil
}

// SetDuration sets one half of the validity window. The draft may hold
// toDate < fromDate while editing; Validate catches it at commit.
func (d *Draft) SetDuration(part, date string) error {
	switch part {
	case "from":
		d.cfg.Duration.FromDate = date
	case "to":
		d.cfg.Duration.ToDate = date
	default:
		return fmt.Errorf("unknown duration part %q", part)
	}
	return nil
}

// ToggleMember flips the value's membership in one of the draft's member
// sets: present values are removed, absent values appended, so insertion
// order stays stable for display.
func (d *Draft) ToggleMember(field, value string) error {
	switch field {
	case "segments":
		d.cfg.Segments = toggleString(d.cfg.Segments, value)
	case "products":
		d.cfg.Products = toggleString(d.cfg.Products, value)
	case "timing":
		d.cfg.Timing = toggleTiming(d.cfg.Timing, models.OfferTimingKey(value))
	default:
		return fmt.Errorf("unknown member field %q", field)
	}
	return nil
}

// Validate runs the commit checks in their fixed order and returns every
// failure. The first entry carries the message shown to the user.
func (d *Draft) Validate() []models.ValidationError {
	var errs []models.ValidationError

	from, to := d.cfg.Duration.FromDate, d.cfg.Duration.ToDate
	if from == "" || to == "" {
		errs = append(errs, models.ValidationError{
			Field:   "duration",
			Message: "Please set both 'From Date' and 'To Date' for the offer.",
		})
	} else if !durationOrdered(from, to) {
		errs = append(errs, models.ValidationError{
			Field:   "duration",
			Message: "'To Date' cannot be earlier than 'From Date'.",
		})
	}
	if len(d.cfg.Products) == 0 {
		errs = append(errs, models.ValidationError{
			Field:   "products",
			Message: "Please select at least one product for the offer.",
		})
	}
	if strings.TrimSpace(d.cfg.DiscountDepth) == "" {
		errs = append(errs, models.ValidationError{
			Field:   "discountDepth",
			Message: "Please specify the discount depth or offer details.",
		})
	}
	return errs
}

// durationOrdered compares the two dates as calendar dates, not strings.
// An unparseable date fails the check.
func durationOrdered(from, to string) bool {
	f, err := time.Parse(dateLayout, from)
	if err != nil {
		return false
	}
	t, err := time.Parse(dateLayout, to)
	if err != nil {
		return false
	}
	return !t.Before(f)
}

// Build constructs a pending Offer from the draft snapshot. Name and
// description are derived here, once. Callers validate first; Build
// re-checks defensively and returns the first failure if they did not.
func (d *Draft) Build(newID IDGenerator) (models.Offer, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return models.Offer{}, &errs[0]
	}

	cfg := d.Config()
	name := fmt.Sprintf("%s for %s", cfg.Template, cfg.Products[0])
	if len(cfg.Products) > 1 {
		name += " & more"
	}
	description := fmt.Sprintf(
		"Manually configured %s for %s. Valid from %s to %s.",
		cfg.Template, strings.Join(cfg.Products, ", "),
		cfg.Duration.FromDate, cfg.Duration.ToDate,
	)

	return models.Offer{
		ID:            newID(),
		Name:          name,
		Description:   description,
		Type:          cfg.Type,
		Duration:      cfg.Duration,
		Cycles:        cfg.Cycles,
		Segments:      cfg.Segments,
		Products:      cfg.Products,
		Template:      cfg.Template,
		DiscountDepth: cfg.DiscountDepth,
		Timing:        cfg.Timing,
		IsActive:      false,
	}, nil
}

func toggleString(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func toggleTiming(set []models.OfferTimingKey, value models.OfferTimingKey) []models.OfferTimingKey {
	for i, v := range set {
		if v == value {
			return append(set[:i], set[i+1:]...)
		}
	}
	return append(set, value)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyTimings(in []models.OfferTimingKey) []models.OfferTimingKey {
	out := make([]models.OfferTimingKey, len(in))
	copy(out, in)
	return out
}
