package postgres

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
	"github.com/jackc/pgx/v5/pgtype"

	"tariff_tracker/internal/entity"
)

// Querier is the data access contract the repository runs on.
type Querier interface {
	Query(ctx context.Context, sql string, params ...any) ([]map[string]any, error)
	Execute(ctx context.Context, sql string, params ...any) (int64, error)
}

const (
	selectSubscriptionTariff = `SELECT tarif_id FROM services WHERE id = $1 AND user_id = $2`
	selectTariffsByGroup     = `SELECT * FROM tarifs WHERE tarif_group_id = $1`
	updatePayday             = `UPDATE services SET payday = $1 WHERE id = $2 AND user_id = $3 AND tarif_id = $4`
	selectPayday             = `SELECT payday FROM services WHERE id = $1 AND user_id = $2 AND tarif_id = $3 AND payday = $4`
)

type TariffRepository struct {
	db Querier
}

func NewTariffRepository(db Querier) *TariffRepository {
	return &TariffRepository{db: db}
}

// SubscriptionTariffID returns tarif_id of the user's service, 0 if there is no such service.
func (r *TariffRepository) SubscriptionTariffID(ctx context.Context, userID, serviceID int64) (int64, error) {
	rows, err := r.db.Query(ctx, selectSubscriptionTariff, serviceID, userID)
	if err != nil {
		return 0, fmt.Errorf("get subscription tariff user=%d service=%d: %w", userID, serviceID, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	var sub entity.Subscription
	if err := decode(rows[0], &sub); err != nil {
		return 0, fmt.Errorf("get subscription tariff: %w", err)
	}
	return sub.TariffID, nil
}

func (r *TariffRepository) ListTariffsByGroup(ctx context.Context, groupID int64) ([]entity.Tariff, error) {
	rows, err := r.db.Query(ctx, selectTariffsByGroup, groupID)
	if err != nil {
		return nil, fmt.Errorf("list tariffs group=%d: %w", groupID, err)
	}
	out := make([]entity.Tariff, 0, len(rows))
	for _, row := range rows {
		var t entity.Tariff
		if err := decode(row, &t); err != nil {
			return nil, fmt.Errorf("list tariffs group=%d: %w", groupID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TariffRepository) UpdatePayday(ctx context.Context, userID, serviceID, tariffID int64, payday string) (int64, error) {
	n, err := r.db.Execute(ctx, updatePayday, payday, serviceID, userID, tariffID)
	if err != nil {
		return 0, fmt.Errorf("update payday: %w", err)
	}
	return n, nil
}

func (r *TariffRepository) CountPayday(ctx context.Context, userID, serviceID, tariffID int64, payday string) (int64, error) {
	n, err := r.db.Execute(ctx, selectPayday, serviceID, userID, tariffID, payday)
	if err != nil {
		return 0, fmt.Errorf("count payday: %w", err)
	}
	return n, nil
}

func decode(row map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       numericToFloat,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(row)
}

// numericToFloat converts NUMERIC columns into float fields.
func numericToFloat(_ reflect.Type, to reflect.Type, data any) (any, error) {
	n, ok := data.(pgtype.Numeric)
	if !ok || to.Kind() != reflect.Float64 {
		return data, nil
	}
	f, err := n.Float64Value()
	if err != nil {
		return nil, err
	}
	if !f.Valid {
		return nil, nil
	}
	return f.Float64, nil
}
