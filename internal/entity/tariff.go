package entity

// Tariff - строка таблицы tarifs
type Tariff struct {
	// ID - идентификатор тарифа
	ID int64 `mapstructure:"id"`
	// GroupID - группа тарифов (идентификатор представительского тарифа)
	GroupID int64 `mapstructure:"tarif_group_id"`
	// Title - название тарифа
	Title string `mapstructure:"title"`
	// Link - ссылка на описание тарифа
	Link *string `mapstructure:"link"`
	// Speed - скорость в Мбит/с
	Speed float64 `mapstructure:"speed"`
	// Price - стоимость за период
	Price float64 `mapstructure:"price"`
	// PayPeriod - длительность оплачиваемого периода в месяцах
	PayPeriod int `mapstructure:"pay_period"`
}

// TariffGroup - тарифы одной группы с данными текущего тарифа пользователя
type TariffGroup struct {
	Title   *string       `json:"title"`
	Link    *string       `json:"link"`
	Speed   *float64      `json:"speed"`
	Tariffs []TariffEntry `json:"tarifs"`
}

// TariffEntry - тариф группы с рассчитанной датой следующей оплаты
type TariffEntry struct {
	ID        int64   `json:"ID"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	PayPeriod int     `json:"pay_period"`
	// NewPayday - unix-время следующей оплаты с суффиксом +0300
	NewPayday string  `json:"new_payday"`
	Speed     float64 `json:"speed"`
}
