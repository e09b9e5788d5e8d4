package creditsale

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type Repository interface {
	// -------- Sale --------
	CreateSale(
		ctx context.Context,
		sale *models.CreditSale,
	) error

	DeleteSale(
		ctx context.Context,
		saleID uint,
	) error

	GetSale(
		ctx context.Context,
		saleID uint,
	) (*models.CreditSale, error)

	UpdateSale(
		ctx context.Context,
		sale *models.CreditSale,
	) error

	// Vendas ainda não quitadas (status != paid).
	ListOpenSales(
		ctx context.Context,
	) ([]models.CreditSale, error)

	// -------- Installment --------
	CreateInstallments(
		ctx context.Context,
		installments []models.Installment,
	) error

	GetInstallment(
		ctx context.Context,
		installmentID uint,
	) (*models.Installment, error)

	UpdateInstallment(
		ctx context.Context,
		installment *models.Installment,
	) error

	ListInstallmentsForSale(
		ctx context.Context,
		saleID uint,
	) ([]models.Installment, error)

	// -------- Revenue log --------
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}
