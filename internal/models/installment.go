package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment é uma parcela de uma única venda de crediário.
// installmentnumber vai de 1 a N, sem furos nem duplicatas.
type Installment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreditSaleID      uint `gorm:"column:creditsaleid;index;not null" json:"credit_sale_id"`
	InstallmentNumber int  `gorm:"column:installmentnumber;not null" json:"installment_number"`

	Amount  decimal.Decimal `gorm:"column:amount;type:decimal(12,2)" json:"amount"`
	DueDate string          `gorm:"column:duedate;size:10;index" json:"due_date"`

	Status string `gorm:"column:status;size:20;default:'pending'" json:"status"`

	PaidDate      string `gorm:"column:paiddate;size:10" json:"paid_date"`
	PaymentMethod string `gorm:"column:paymentmethod;size:30" json:"payment_method"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (Installment) TableName() string { return "installments" }
