package entity

import (
	"time"
)

// Subscription - подключённая услуга пользователя (таблица services)
type Subscription struct {
	// ID - идентификатор услуги
	ID int64 `mapstructure:"id"`
	// UserID - идентификатор пользователя
	UserID int64 `mapstructure:"user_id"`
	// TariffID - текущий тариф услуги
	TariffID int64 `mapstructure:"tarif_id"`
	// Payday - дата начала расчётного периода
	Payday *time.Time `mapstructure:"payday"`
}
