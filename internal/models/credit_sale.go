package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditSale é uma venda parcelada (crediário).
type CreditSale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"column:clientname;size:150;not null" json:"client_name"`
	ClientID   *uint  `gorm:"column:clientid" json:"client_id"`

	Products string `gorm:"column:products;size:255" json:"products"`

	TotalAmount decimal.Decimal `gorm:"column:totalamount;type:decimal(12,2)" json:"total_amount"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2)" json:"subtotal"`
	Discount    decimal.Decimal `gorm:"column:discount;type:decimal(12,2);default:0" json:"discount"`

	NumberOfInstallments int    `gorm:"column:numberofinstallments;not null" json:"number_of_installments"`
	FirstDueDate         string `gorm:"column:firstduedate;size:10" json:"first_due_date"`

	Status string `gorm:"column:status;size:20;default:'active'" json:"status"`

	TotalPaid       decimal.Decimal `gorm:"column:totalpaid;type:decimal(12,2);default:0" json:"total_paid"`
	RemainingAmount decimal.Decimal `gorm:"column:remainingamount;type:decimal(12,2)" json:"remaining_amount"`

	Date      string    `gorm:"column:date;size:10" json:"date"`
	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`

	Installments []Installment `gorm:"foreignKey:CreditSaleID" json:"installments,omitempty"`
}

func (CreditSale) TableName() string { return "credit_sales" }
