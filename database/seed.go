package database

import (
	"capsule_store/constants"
	"capsule_store/model"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "changeme123"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	// Settings writes merge into the existing singleton and no-op when the
	// row is missing, so it must be provisioned here.
	var count int64
	db.Model(&model.StoreSettings{}).Count(&count)
	if count == 0 {
		settings := model.DefaultStoreSettings()
		if err := db.Create(&settings).Error; err != nil {
			log.Println("failed to seed store settings:", err)
		}
	}
}
