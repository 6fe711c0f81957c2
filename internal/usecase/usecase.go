package usecase

import (
	"context"

	"tariff_tracker/internal/entity"
)

//go:generate go run github.com/golang/mock/mockgen@v1.6.0 -destination=usecase_mock.go -package=usecase tariff_tracker/internal/usecase TariffRepository

// TariffRepository - reads tariffs and maintains the payday of user services
type TariffRepository interface {
	// SubscriptionTariffID - tariff of the user's service, 0 when there is no such service
	SubscriptionTariffID(ctx context.Context, userID, serviceID int64) (int64, error)
	// ListTariffsByGroup - all tariffs of a group in storage order
	ListTariffsByGroup(ctx context.Context, groupID int64) ([]entity.Tariff, error)
	// UpdatePayday - set payday (YYYY-MM-DD) of the service, returns affected rows
	UpdatePayday(ctx context.Context, userID, serviceID, tariffID int64, payday string) (int64, error)
	// CountPayday - number of services with the given keys and payday
	CountPayday(ctx context.Context, userID, serviceID, tariffID int64, payday string) (int64, error)
}
