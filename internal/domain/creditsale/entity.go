package creditsale

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyPayment soma o valor pago aos agregados da venda.
// remainingamount nunca fica negativo.
func ApplyPayment(sale *models.CreditSale, amount decimal.Decimal) {
	sale.TotalPaid = sale.TotalPaid.Add(amount)

	remaining := sale.RemainingAmount.Sub(amount)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	sale.RemainingAmount = remaining
}

// ReceiptLabel monta o rótulo da transação de receita gerada pelo
// pagamento de uma parcela ("Parcela 2/3 - Fulano").
func ReceiptLabel(clientName string, number, total int) string {
	name := strings.TrimSpace(clientName)
	return fmt.Sprintf("Parcela %d/%d - %s", number, total, name)
}
