package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/creditsale"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type CreditSaleGormRepository struct {
	db *gorm.DB
}

func NewCreditSaleGormRepository(db *gorm.DB) *CreditSaleGormRepository {
	return &CreditSaleGormRepository{db: db}
}

// --------------------------------------------------
// Sale
// --------------------------------------------------

func (r *CreditSaleGormRepository) CreateSale(
	ctx context.Context,
	sale *models.CreditSale,
) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *CreditSaleGormRepository) DeleteSale(
	ctx context.Context,
	saleID uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.CreditSale{}, saleID).Error
}

func (r *CreditSaleGormRepository) GetSale(
	ctx context.Context,
	saleID uint,
) (*models.CreditSale, error) {

	var sale models.CreditSale
	if err := r.db.WithContext(ctx).First(&sale, saleID).Error; err != nil {
		return nil, err
	}
	return &sale, nil
}

func (r *CreditSaleGormRepository) UpdateSale(
	ctx context.Context,
	sale *models.CreditSale,
) error {
	return r.db.WithContext(ctx).
		Omit("Installments").
		Save(sale).Error
}

func (r *CreditSaleGormRepository) ListOpenSales(
	ctx context.Context,
) ([]models.CreditSale, error) {

	var sales []models.CreditSale
	if err := r.db.WithContext(ctx).
		Where("status <> ?", string(domain.SalePaid)).
		Order("createdat DESC").
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// --------------------------------------------------
// Installment
// --------------------------------------------------

func (r *CreditSaleGormRepository) CreateInstallments(
	ctx context.Context,
	installments []models.Installment,
) error {
	return r.db.WithContext(ctx).Create(&installments).Error
}

func (r *CreditSaleGormRepository) GetInstallment(
	ctx context.Context,
	installmentID uint,
) (*models.Installment, error) {

	var installment models.Installment
	if err := r.db.WithContext(ctx).
		First(&installment, installmentID).Error; err != nil {
		return nil, err
	}
	return &installment, nil
}

func (r *CreditSaleGormRepository) UpdateInstallment(
	ctx context.Context,
	installment *models.Installment,
) error {
	return r.db.WithContext(ctx).Save(installment).Error
}

func (r *CreditSaleGormRepository) ListInstallmentsForSale(
	ctx context.Context,
	saleID uint,
) ([]models.Installment, error) {

	var installments []models.Installment
	if err := r.db.WithContext(ctx).
		Where("creditsaleid = ?", saleID).
		Order("installmentnumber ASC").
		Find(&installments).Error; err != nil {
		return nil, err
	}
	return installments, nil
}

// --------------------------------------------------
// Revenue log
// --------------------------------------------------

func (r *CreditSaleGormRepository) CreateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

// Compile-time check
var _ domain.Repository = (*CreditSaleGormRepository)(nil)
