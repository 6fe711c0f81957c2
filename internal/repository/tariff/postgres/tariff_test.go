package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tariff_tracker/internal/entity"
)

type call struct {
	sql    string
	params []any
}

type fakeQuerier struct {
	rows     []map[string]any
	affected int64
	err      error
	calls    []call
}

func (f *fakeQuerier) Query(_ context.Context, sql string, params ...any) ([]map[string]any, error) {
	f.calls = append(f.calls, call{sql: sql, params: params})
	return f.rows, f.err
}

func (f *fakeQuerier) Execute(_ context.Context, sql string, params ...any) (int64, error) {
	f.calls = append(f.calls, call{sql: sql, params: params})
	return f.affected, f.err
}

func TestTariffRepository_SubscriptionTariffID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		q := &fakeQuerier{rows: []map[string]any{{"tarif_id": int64(7)}}}
		r := NewTariffRepository(q)

		id, err := r.SubscriptionTariffID(ctx, 10, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
		require.Len(t, q.calls, 1)
		assert.Equal(t, []any{int64(20), int64(10)}, q.calls[0].params)
	})

	t.Run("no row", func(t *testing.T) {
		r := NewTariffRepository(&fakeQuerier{})

		id, err := r.SubscriptionTariffID(ctx, 10, 20)
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("null tariff", func(t *testing.T) {
		r := NewTariffRepository(&fakeQuerier{rows: []map[string]any{{"tarif_id": nil}}})

		id, err := r.SubscriptionTariffID(ctx, 10, 20)
		require.NoError(t, err)
		assert.Zero(t, id)
	})

	t.Run("driver error", func(t *testing.T) {
		boom := errors.New("boom")
		r := NewTariffRepository(&fakeQuerier{err: boom})

		_, err := r.SubscriptionTariffID(ctx, 10, 20)
		assert.ErrorIs(t, err, boom)
	})
}

func TestTariffRepository_ListTariffsByGroup(t *testing.T) {
	ctx := context.Background()

	var price pgtype.Numeric
	require.NoError(t, price.Scan("499.90"))
	link := "https://example.com/fast"

	q := &fakeQuerier{rows: []map[string]any{
		{"id": int64(3), "tarif_group_id": int64(3), "title": "Fast", "link": link, "speed": 100.0, "price": price, "pay_period": int32(1)},
		{"id": int64(4), "tarif_group_id": int64(3), "title": "Faster", "link": nil, "speed": 200.0, "price": "999", "pay_period": int32(12)},
	}}
	r := NewTariffRepository(q)

	got, err := r.ListTariffsByGroup(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []entity.Tariff{
		{ID: 3, GroupID: 3, Title: "Fast", Link: &link, Speed: 100, Price: 499.9, PayPeriod: 1},
		{ID: 4, GroupID: 3, Title: "Faster", Speed: 200, Price: 999, PayPeriod: 12},
	}, got)
	assert.Equal(t, []any{int64(3)}, q.calls[0].params)
}

func TestTariffRepository_Payday(t *testing.T) {
	ctx := context.Background()
	q := &fakeQuerier{affected: 1}
	r := NewTariffRepository(q)

	n, err := r.UpdatePayday(ctx, 1, 2, 3, "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = r.CountPayday(ctx, 1, 2, 3, "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.Len(t, q.calls, 2)
	assert.Equal(t, []any{"2024-01-31", int64(2), int64(1), int64(3)}, q.calls[0].params)
	assert.Equal(t, []any{int64(2), int64(1), int64(3), "2024-01-31"}, q.calls[1].params)
}

func TestDecodeSubscription(t *testing.T) {
	day := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	var sub entity.Subscription
	require.NoError(t, decode(map[string]any{
		"id": int64(1), "user_id": int64(2), "tarif_id": int64(3), "payday": day,
	}, &sub))
	require.NotNil(t, sub.Payday)
	assert.Equal(t, day, *sub.Payday)
	assert.Equal(t, int64(3), sub.TariffID)
}
