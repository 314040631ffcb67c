package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemandModel is the GORM-specific struct for the 'demands' table.
type DemandModel struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	ProductName     string           `gorm:"type:varchar(255);not null;index:idx_demands_product_status"`
	DesiredQuantity decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Unit            string           `gorm:"type:varchar(20);not null"`
	DesiredPrice    *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Latitude        *float64         `gorm:"type:decimal(10,8)"`
	Longitude       *float64         `gorm:"type:decimal(11,8)"`
	Status          string           `gorm:"type:varchar(20);not null;default:'open';index:idx_demands_product_status"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DemandModel) TableName() string {
	return "demands"
}
