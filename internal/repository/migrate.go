package repository

import (
	"weddingdesk/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the service uses, including the
// row models private to this package.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Meeting{},
		&domain.RecommendedSupplier{},
		&domain.AlertSettings{},
		&domain.Notification{},
		&eventModel{},
		&supplierModel{},
	)
}
