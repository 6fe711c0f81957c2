package usecase

import (
	"context"
	"strconv"
	"time"

	"tariff_tracker/internal/entity"
)

const (
	paydayLayout = "2006-01-02"
	// paydayOffset is appended to the unix timestamp as is, clients parse it this way
	paydayOffset = "+0300"
)

// Tariffs serves tariff groups and paydays of user services
type Tariffs struct {
	Tr  TariffRepository
	now func() time.Time
	loc *time.Location
}

// TariffsOption configures Tariffs
type TariffsOption func(*Tariffs)

// WithClock replaces time.Now
func WithClock(now func() time.Time) TariffsOption {
	return func(t *Tariffs) {
		if now != nil {
			t.now = now
		}
	}
}

// WithLocation sets the location "today" is taken in
func WithLocation(loc *time.Location) TariffsOption {
	return func(t *Tariffs) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// NewTariffs creates a use case service with the given repository
func NewTariffs(tr TariffRepository, opts ...TariffsOption) *Tariffs {
	t := &Tariffs{
		Tr:  tr,
		now: time.Now,
		loc: time.Local,
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// GetTariffs returns the tariff group of the user's service with the current tariff on top.
// nil means the service or its group was not found.
func (t *Tariffs) GetTariffs(ctx context.Context, userID, serviceID int64) (*entity.TariffGroup, error) {
	tariffID, err := t.Tr.SubscriptionTariffID(ctx, userID, serviceID)
	if err != nil {
		return nil, err
	}
	if tariffID == 0 {
		return nil, nil
	}

	// groups are keyed by the id of their representative tariff
	tariffs, err := t.Tr.ListTariffsByGroup(ctx, tariffID)
	if err != nil {
		return nil, err
	}
	if len(tariffs) == 0 {
		return nil, nil
	}

	today := t.today()
	group := &entity.TariffGroup{
		Tariffs: make([]entity.TariffEntry, 0, len(tariffs)),
	}
	for _, tr := range tariffs {
		if tr.ID == tariffID {
			title, speed := tr.Title, tr.Speed
			group.Title = &title
			group.Link = tr.Link
			group.Speed = &speed
		}
		group.Tariffs = append(group.Tariffs, entity.TariffEntry{
			ID:        tr.ID,
			Title:     tr.Title,
			Price:     tr.Price,
			PayPeriod: tr.PayPeriod,
			NewPayday: NewPayday(today, tr.PayPeriod),
			Speed:     tr.Speed,
		})
	}
	return group, nil
}

// SetPayday sets today as payday of the service and reports whether the value is stored.
// The result comes from a read back, not from the affected rows of the update:
// an update to the same value may report zero rows.
func (t *Tariffs) SetPayday(ctx context.Context, userID, serviceID, tariffID int64) (bool, error) {
	payday := t.today().Format(paydayLayout)
	if _, err := t.Tr.UpdatePayday(ctx, userID, serviceID, tariffID, payday); err != nil {
		return false, err
	}
	n, err := t.Tr.CountPayday(ctx, userID, serviceID, tariffID, payday)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// today truncates the current time to midnight in the configured location
func (t *Tariffs) today() time.Time {
	n := t.now().In(t.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, t.loc)
}

// NewPayday adds months to day (Jan 31 + 1 month = Mar 2 or 3) and returns
// the unix timestamp with paydayOffset appended.
func NewPayday(day time.Time, months int) string {
	return strconv.FormatInt(day.AddDate(0, months, 0).Unix(), 10) + paydayOffset
}
