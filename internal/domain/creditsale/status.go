package creditsale

import (
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ===============================
// Installment / Sale Status
// ===============================

type InstallmentStatus string

const (
	InstallmentPending InstallmentStatus = "pending"
	InstallmentPaid    InstallmentStatus = "paid"
	InstallmentOverdue InstallmentStatus = "overdue"
)

type SaleStatus string

const (
	SaleActive  SaleStatus = "active"
	SaleOverdue SaleStatus = "overdue"
	SalePaid    SaleStatus = "paid"
)

// CanPay valida a transição da parcela para "paid".
// "paid" é terminal; "overdue" volta para "paid" no pagamento.
func CanPay(current InstallmentStatus) error {
	switch current {
	case InstallmentPending, InstallmentOverdue:
		return nil
	case InstallmentPaid:
		return httperr.ErrBusiness("installment_already_paid")
	default:
		return httperr.ErrBusiness("invalid_installment_status")
	}
}

// Classify recalcula o status da venda a partir das parcelas.
// Ordem de desempate: paid primeiro, depois overdue, senão active.
func Classify(installments []models.Installment) SaleStatus {
	if len(installments) == 0 {
		return SaleActive
	}

	allPaid := true
	anyOverdue := false
	for _, in := range installments {
		switch InstallmentStatus(in.Status) {
		case InstallmentPaid:
			// ok
		case InstallmentOverdue:
			allPaid = false
			anyOverdue = true
		default:
			allPaid = false
		}
	}

	if allPaid {
		return SalePaid
	}
	if anyOverdue {
		return SaleOverdue
	}
	return SaleActive
}
