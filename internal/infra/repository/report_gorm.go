package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/report"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

func (r *ReportGormRepository) ListTransactions(
	ctx context.Context,
) ([]models.Transaction, error) {

	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *ReportGormRepository) ListInstallments(
	ctx context.Context,
) ([]models.Installment, error) {

	var installments []models.Installment
	if err := r.db.WithContext(ctx).
		Find(&installments).Error; err != nil {
		return nil, err
	}
	return installments, nil
}

func (r *ReportGormRepository) ListExpenses(
	ctx context.Context,
) ([]models.Expense, error) {

	var expenses []models.Expense
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ReportGormRepository) ListCatalog(
	ctx context.Context,
) ([]models.CatalogItem, error) {

	var items []models.CatalogItem
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Compile-time check
var _ domain.Repository = (*ReportGormRepository)(nil)
