package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionTypeService = "service"
	TransactionTypeProduct = "product"
)

// Transaction é um registro de venda/serviço já pago.
type Transaction struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName string `gorm:"column:clientname;size:150" json:"client_name"`
	ClientID   *uint  `gorm:"column:clientid" json:"client_id"`

	Service       string `gorm:"column:service;size:200" json:"service"`
	Date          string `gorm:"column:date;size:10;index" json:"date"`
	PaymentMethod string `gorm:"column:paymentmethod;size:30" json:"payment_method"`

	Subtotal decimal.Decimal `gorm:"column:subtotal;type:decimal(12,2)" json:"subtotal"`
	Discount decimal.Decimal `gorm:"column:discount;type:decimal(12,2);default:0" json:"discount"`
	Value    decimal.Decimal `gorm:"column:value;type:decimal(12,2)" json:"value"`

	Type string `gorm:"column:type;size:10;default:'service'" json:"type"`

	// Nulo em registros antigos; a classificação cai para inferência
	// pelo texto do serviço (ver IsFromAppointment).
	FromAppointment *bool `gorm:"column:fromappointment" json:"from_appointment"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (Transaction) TableName() string { return "transactions" }

// IsFromAppointment diz se a transação veio de um agendamento.
// Registros antigos não têm a coluna preenchida; nesses casos a
// origem é inferida pelo rótulo do serviço.
func (t *Transaction) IsFromAppointment() bool {
	if t.FromAppointment != nil {
		return *t.FromAppointment
	}
	return strings.Contains(strings.ToLower(t.Service), "agendamento")
}

// IsInstallmentPayment identifica transações geradas pelo pagamento
// de parcelas de crediário (rótulo "Parcela i/N - cliente").
func (t *Transaction) IsInstallmentPayment() bool {
	return t.Type == TransactionTypeProduct &&
		strings.HasPrefix(strings.ToLower(t.Service), "parcela ")
}
