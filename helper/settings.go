package helper

import (
	"capsule_store/database"
	"capsule_store/model"
	"log"
)

// GetStoreSettings reads the singleton settings row. Any failure, including
// a missing row, falls back to the documented defaults so checkout stays
// usable; this read never returns an error.
func GetStoreSettings() model.StoreSettings {
	var settings model.StoreSettings
	if err := database.DB.Order("id asc").First(&settings).Error; err != nil {
		log.Printf("Could not fetch store settings, using defaults: %v", err)
		return model.DefaultStoreSettings()
	}
	return settings
}

// UpdateStoreSettings merges the provided fields into the existing singleton
// row. When no row exists this is a no-op: the seed provisions the record,
// and writes never create one.
func UpdateStoreSettings(input model.UpdateSettingsInput) (model.StoreSettings, error) {
	var settings model.StoreSettings
	if err := database.DB.Order("id asc").First(&settings).Error; err != nil {
		log.Printf("No settings row to update: %v", err)
		return model.DefaultStoreSettings(), nil
	}

	if input.OrdersEnabled != nil {
		settings.OrdersEnabled = *input.OrdersEnabled
	}
	if input.RepeatDiscount != nil {
		settings.RepeatDiscount = *input.RepeatDiscount
	}
	if input.FreeDelivery != nil {
		settings.FreeDelivery = *input.FreeDelivery
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return settings, err
	}
	return settings, nil
}
