package creditsale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

const DateLayout = "2006-01-02"

// SplitAmount divide o total em n parcelas de duas casas decimais.
// A última parcela absorve a diferença de arredondamento, então a
// soma das parcelas é sempre exatamente o total.
func SplitAmount(total decimal.Decimal, n int) ([]decimal.Decimal, error) {
	if n < 1 {
		return nil, httperr.ErrBusiness("invalid_installment_count")
	}
	if !total.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_total_amount")
	}

	base := total.DivRound(decimal.NewFromInt(int64(n)), 2)

	amounts := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		amounts[i] = base
		running = running.Add(base)
	}
	amounts[n-1] = total.Sub(running)

	return amounts, nil
}

// DueDates gera os vencimentos somando meses de calendário ao
// primeiro vencimento (não blocos fixos de 30 dias).
func DueDates(firstDue time.Time, n int) []string {
	dates := make([]string, n)
	for i := 0; i < n; i++ {
		dates[i] = firstDue.AddDate(0, i, 0).Format(DateLayout)
	}
	return dates
}

// BuildInstallments monta as parcelas 1..N de uma venda, todas pendentes.
func BuildInstallments(saleID uint, total decimal.Decimal, n int, firstDue time.Time) ([]models.Installment, error) {
	amounts, err := SplitAmount(total, n)
	if err != nil {
		return nil, err
	}

	dates := DueDates(firstDue, n)

	installments := make([]models.Installment, n)
	for i := 0; i < n; i++ {
		installments[i] = models.Installment{
			CreditSaleID:      saleID,
			InstallmentNumber: i + 1,
			Amount:            amounts[i],
			DueDate:           dates[i],
			Status:            string(InstallmentPending),
		}
	}

	return installments, nil
}
