package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Description string          `gorm:"column:description;size:200;not null" json:"description"`
	Category    string          `gorm:"column:category;size:50" json:"category"`
	Value       decimal.Decimal `gorm:"column:value;type:decimal(12,2)" json:"value"`
	Date        string          `gorm:"column:date;size:10;index" json:"date"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (Expense) TableName() string { return "expenses" }

// ExpenseCategory é só um par rótulo+cor. Expense.Category referencia
// o nome por texto livre, não por chave estrangeira.
type ExpenseCategory struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"column:name;size:50;not null" json:"name"`
	Color string `gorm:"column:color;size:10" json:"color"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (ExpenseCategory) TableName() string { return "expense_categories" }
