package report

import (
	"context"
	"fmt"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/cache"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/report"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

type GetSummaryInput struct {
	Period      domain.Period
	CustomStart string
	CustomEnd   string
	TopN        int
}

type GetSummary struct {
	repo  domain.Repository
	cache *cache.ReportCache
}

func NewGetSummary(
	repo domain.Repository,
	cache *cache.ReportCache,
) *GetSummary {
	return &GetSummary{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetSummary) Execute(
	ctx context.Context,
	in GetSummaryInput,
) (*domain.Summary, error) {

	current, previous, err := domain.Resolve(
		in.Period,
		timezone.Now(),
		in.CustomStart,
		in.CustomEnd,
	)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s:%s:%s:%d", in.Period, in.CustomStart, in.CustomEnd, in.TopN)

	var cached domain.Summary
	if uc.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	transactions, err := uc.repo.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	installments, err := uc.repo.ListInstallments(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.repo.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	catalog, err := uc.repo.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	summary := domain.Summarize(domain.Input{
		Transactions: transactions,
		Installments: installments,
		Expenses:     expenses,
		Catalog:      catalog,
		Current:      current,
		Previous:     previous,
		TopN:         in.TopN,
	})

	uc.cache.Set(ctx, cacheKey, summary)

	return &summary, nil
}
