package model

// StoreSettings is a singleton row; the seed provisions it
type StoreSettings struct {
	DTO
	OrdersEnabled  bool `gorm:"not null;default:true" json:"ordersEnabled"`
	RepeatDiscount int  `gorm:"not null;default:0" json:"repeatDiscount"`
	FreeDelivery   bool `gorm:"not null;default:false" json:"freeDelivery"`
}

type UpdateSettingsInput struct {
	OrdersEnabled  *bool `json:"ordersEnabled"`
	RepeatDiscount *int  `json:"repeatDiscount" validate:"omitempty,gte=0"`
	FreeDelivery   *bool `json:"freeDelivery"`
}

// DefaultStoreSettings is the fallback when the settings read fails or no
// row exists: checkout stays open with no discount and paid delivery.
func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		OrdersEnabled:  true,
		RepeatDiscount: 0,
		FreeDelivery:   false,
	}
}
