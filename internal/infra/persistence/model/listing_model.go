package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
type ListingModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName       string          `gorm:"type:varchar(255);not null;index:idx_listings_product_status"`
	Grade             *string         `gorm:"type:varchar(50)"`
	Description       *string         `gorm:"type:text"`
	QuantityTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	QuantityAvailable decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PricePerUnit      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PickupDate        time.Time       `gorm:"type:date;not null"`
	Status            string          `gorm:"type:varchar(20);not null;default:'available';index:idx_listings_product_status"`
	Latitude          *float64        `gorm:"type:decimal(10,8)"`
	Longitude         *float64        `gorm:"type:decimal(11,8)"`
	CreatedAt         time.Time       `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
