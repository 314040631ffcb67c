package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MatchModel is the GORM-specific struct for the 'matches' table.
type MatchModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ListingID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	DemandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DistanceKm   *float64        `gorm:"type:numeric(10,2)"`
	MatchedPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MatchModel) TableName() string {
	return "matches"
}
