package creditsale

import (
	"context"

	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/creditsale"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

type RefreshResult struct {
	InstallmentsMarked int `json:"installments_marked"`
	SalesChanged       int `json:"sales_changed"`
}

// RefreshOverdue é a reconciliação em lote chamada sob demanda (não
// há timer). Varre todas as vendas abertas e reclassifica.
type RefreshOverdue struct {
	repo domain.Repository
	bus  *events.Bus
}

func NewRefreshOverdue(
	repo domain.Repository,
	bus *events.Bus,
) *RefreshOverdue {
	return &RefreshOverdue{
		repo: repo,
		bus:  bus,
	}
}

func (uc *RefreshOverdue) Execute(ctx context.Context) (RefreshResult, error) {
	var result RefreshResult

	today := timezone.Today()

	sales, err := uc.repo.ListOpenSales(ctx)
	if err != nil {
		return result, err
	}

	for i := range sales {
		sale := &sales[i]

		installments, err := uc.repo.ListInstallmentsForSale(ctx, sale.ID)
		if err != nil {
			return result, err
		}

		for j := range installments {
			in := &installments[j]
			// Datas ISO comparam em ordem lexicográfica.
			if in.Status == string(domain.InstallmentPending) && in.DueDate < today {
				in.Status = string(domain.InstallmentOverdue)
				if err := uc.repo.UpdateInstallment(ctx, in); err != nil {
					return result, err
				}
				result.InstallmentsMarked++
			}
		}

		status := domain.Classify(installments)
		if sale.Status != string(status) {
			sale.Status = string(status)
			if err := uc.repo.UpdateSale(ctx, sale); err != nil {
				return result, err
			}
			result.SalesChanged++
		}
	}

	if result.InstallmentsMarked > 0 || result.SalesChanged > 0 {
		uc.bus.Publish(events.Event{Topic: events.TopicLedgerChanged})
	}

	return result, nil
}
