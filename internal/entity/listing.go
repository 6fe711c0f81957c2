package entity

// ListingItem - товар из ответа eBay Finding API, все поля приходят массивами
type ListingItem struct {
	ItemID          []string          `json:"itemId"`
	Title           []string          `json:"title"`
	PrimaryCategory []ItemCategory    `json:"primaryCategory,omitempty"`
	ListingInfo     []ItemListingInfo `json:"listingInfo,omitempty"`
	Condition       []ItemCondition   `json:"condition,omitempty"`
	ViewItemURL     []string          `json:"viewItemURL,omitempty"`
}

type ItemCategory struct {
	CategoryID   []string `json:"categoryId"`
	CategoryName []string `json:"categoryName,omitempty"`
}

type ItemListingInfo struct {
	ListingType []string `json:"listingType"`
}

type ItemCondition struct {
	ConditionID          []string `json:"conditionId,omitempty"`
	ConditionDisplayName []string `json:"conditionDisplayName,omitempty"`
}

// ID - идентификатор товара
func (i ListingItem) ID() string {
	return first(i.ItemID)
}

// TitleText - заголовок товара, используется только первый элемент
func (i ListingItem) TitleText() string {
	return first(i.Title)
}

// CategoryID - идентификатор основной категории
func (i ListingItem) CategoryID() string {
	if len(i.PrimaryCategory) == 0 {
		return ""
	}
	return first(i.PrimaryCategory[0].CategoryID)
}

// ListingType - тип размещения (Auction, FixedPrice, StoreInventory...)
func (i ListingItem) ListingType() string {
	if len(i.ListingInfo) == 0 {
		return ""
	}
	return first(i.ListingInfo[0].ListingType)
}

// ExclusionRecord - исключённый товар и причины исключения
type ExclusionRecord struct {
	ItemID string `json:"item_id"`
	// Reasons - код причины -> сообщение
	Reasons map[string]string `json:"reasons"`
	Item    ListingItem       `json:"item"`
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
