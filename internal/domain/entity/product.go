package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a cannabis flower or extract orderable on a prescription.
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	PricePerGram decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_gram"`
	ThcPercent   decimal.Decimal `gorm:"type:decimal(5,2)" json:"thc_percent"`
	CbdPercent   decimal.Decimal `gorm:"type:decimal(5,2)" json:"cbd_percent"`
	IsAvailable  bool            `gorm:"not null;default:true" json:"is_available"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
