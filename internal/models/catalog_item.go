package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem é um serviço ou produto do catálogo da barbearia.
// Usado pelo relatório para rankear descrições livres de serviço.
type CatalogItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string          `gorm:"column:name;size:100;not null" json:"name"`
	Type   string          `gorm:"column:type;size:10;default:'service'" json:"type"`
	Price  decimal.Decimal `gorm:"column:price;type:decimal(12,2)" json:"price"`
	Active bool            `gorm:"column:active;default:true" json:"active"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updatedat" json:"updated_at"`
}

func (CatalogItem) TableName() string { return "catalog_items" }
