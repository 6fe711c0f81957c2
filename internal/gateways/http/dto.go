package http

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"

	"tariff_tracker/internal/entity"
	"tariff_tracker/internal/listing"
)

// PaydayInput - body of PUT .../payday
type PaydayInput struct {
	// TariffID - tariff the service must currently have
	// Required: true
	// Minimum: 1
	TariffID *int64 `json:"tariff_id"`
}

// Validate validates this payday input
func (m *PaydayInput) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateTariffID(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PaydayInput) validateTariffID(formats strfmt.Registry) error {
	if err := validate.Required("tariff_id", "body", m.TariffID); err != nil {
		return err
	}
	if err := validate.MinimumInt("tariff_id", "body", *m.TariffID, 1, false); err != nil {
		return err
	}
	return nil
}

// PaydayResult - response of PUT .../payday
type PaydayResult struct {
	Updated bool `json:"updated"`
}

// ListingFilterResult - response of POST /listings/filter
type ListingFilterResult struct {
	Accepted []entity.ListingItem              `json:"accepted"`
	Excluded map[string]entity.ExclusionRecord `json:"excluded"`
}

func newListingFilterResult(acc *listing.Accumulator) ListingFilterResult {
	res := ListingFilterResult{
		Accepted: acc.Accepted,
		Excluded: make(map[string]entity.ExclusionRecord, len(acc.Excluded)),
	}
	for id, rec := range acc.Excluded {
		res.Excluded[id] = *rec
	}
	return res
}

// ItemFiltersResult - response of POST /listings/item-filters
type ItemFiltersResult struct {
	Params listing.Params `json:"params"`
	Query  string         `json:"query"`
}
