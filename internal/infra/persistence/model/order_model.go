package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	QuantityOrdered  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'Processing'"`
	ConfirmationCode string          `gorm:"type:char(6);not null;uniqueIndex"`
	PickupSlot       string          `gorm:"type:varchar(100)"`
	ChargeID         string          `gorm:"type:varchar(100);index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
