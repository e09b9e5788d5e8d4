package report

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// Repository entrega as listas completas; o volume de dados de uma
// barbearia cabe em memória e o recorte por janela é feito aqui.
type Repository interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	ListInstallments(ctx context.Context) ([]models.Installment, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	ListCatalog(ctx context.Context) ([]models.CatalogItem, error)
}
