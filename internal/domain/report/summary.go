package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ===============================
// Aggregation (read-side only)
// ===============================

type RankedItem struct {
	Name  string          `json:"name"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type Summary struct {
	Revenue   decimal.Decimal `json:"revenue"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"net_profit"`

	// Quebra por origem da receita.
	CreditRevenue    decimal.Decimal `json:"credit_revenue"`
	ScheduledRevenue decimal.Decimal `json:"scheduled_revenue"`
	WalkInRevenue    decimal.Decimal `json:"walk_in_revenue"`
	ProductRevenue   decimal.Decimal `json:"product_revenue"`

	TransactionCount int `json:"transaction_count"`

	TopServices []RankedItem `json:"top_services"`
	TopProducts []RankedItem `json:"top_products"`

	PreviousRevenue  decimal.Decimal `json:"previous_revenue"`
	RevenueChangePct float64         `json:"revenue_change_pct"`
}

type Input struct {
	Transactions []models.Transaction
	Installments []models.Installment
	Expenses     []models.Expense
	Catalog      []models.CatalogItem

	Current  Range
	Previous Range

	TopN int
}

// Summarize recalcula tudo a partir das listas em memória, a cada
// chamada. A receita de crediário vem das parcelas pagas (fonte da
// verdade); as transações "Parcela i/N" geradas pelos pagamentos são
// ignoradas na soma para não contar em dobro.
func Summarize(in Input) Summary {
	topN := in.TopN
	if topN <= 0 {
		topN = 5
	}

	s := Summary{
		Revenue:          decimal.Zero,
		Expenses:         decimal.Zero,
		CreditRevenue:    decimal.Zero,
		ScheduledRevenue: decimal.Zero,
		WalkInRevenue:    decimal.Zero,
		ProductRevenue:   decimal.Zero,
		PreviousRevenue:  decimal.Zero,
	}

	rankServices := map[string]*RankedItem{}
	rankProducts := map[string]*RankedItem{}

	for i := range in.Transactions {
		tx := &in.Transactions[i]
		if tx.IsInstallmentPayment() {
			continue
		}

		if in.Previous.Contains(tx.Date) {
			s.PreviousRevenue = s.PreviousRevenue.Add(tx.Value)
		}
		if !in.Current.Contains(tx.Date) {
			continue
		}

		s.TransactionCount++

		switch {
		case tx.Type == models.TransactionTypeProduct:
			s.ProductRevenue = s.ProductRevenue.Add(tx.Value)
		case tx.IsFromAppointment():
			s.ScheduledRevenue = s.ScheduledRevenue.Add(tx.Value)
		default:
			s.WalkInRevenue = s.WalkInRevenue.Add(tx.Value)
		}

		if item, ok := MatchCatalog(tx.Service, in.Catalog); ok {
			bucket := rankServices
			if item.Type == models.TransactionTypeProduct {
				bucket = rankProducts
			}
			r, exists := bucket[item.Name]
			if !exists {
				r = &RankedItem{Name: item.Name, Total: decimal.Zero}
				bucket[item.Name] = r
			}
			r.Count++
			r.Total = r.Total.Add(tx.Value)
		}
	}

	for i := range in.Installments {
		inst := &in.Installments[i]
		if inst.Status != "paid" || inst.PaidDate == "" {
			continue
		}
		if in.Previous.Contains(inst.PaidDate) {
			s.PreviousRevenue = s.PreviousRevenue.Add(inst.Amount)
		}
		if in.Current.Contains(inst.PaidDate) {
			s.CreditRevenue = s.CreditRevenue.Add(inst.Amount)
		}
	}

	for i := range in.Expenses {
		ex := &in.Expenses[i]
		if in.Current.Contains(ex.Date) {
			s.Expenses = s.Expenses.Add(ex.Value)
		}
	}

	s.Revenue = s.ScheduledRevenue.
		Add(s.WalkInRevenue).
		Add(s.ProductRevenue).
		Add(s.CreditRevenue)
	s.NetProfit = s.Revenue.Sub(s.Expenses)

	s.TopServices = topRanked(rankServices, topN)
	s.TopProducts = topRanked(rankProducts, topN)
	s.RevenueChangePct = changePct(s.Revenue, s.PreviousRevenue)

	return s
}

func topRanked(bucket map[string]*RankedItem, n int) []RankedItem {
	out := make([]RankedItem, 0, len(bucket))
	for _, r := range bucket {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// changePct compara com a janela anterior. Sem base de comparação
// (anterior zerada), cresceu 100% se houve receita, senão 0%.
func changePct(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.IsZero() {
			return 0
		}
		return 100
	}
	pct, _ := current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return pct
}
