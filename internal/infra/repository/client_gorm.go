package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/client"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientGormRepository) UpdateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// --------------------------------------------------
// Rename cascade
// --------------------------------------------------
// Só linhas com clientid preenchido; registros históricos sem
// vínculo ficam com o nome da época.

func (r *ClientGormRepository) RenameInTransactions(
	ctx context.Context,
	clientID uint,
	fullName string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Where("clientid = ?", clientID).
		Update("clientname", fullName).Error
}

func (r *ClientGormRepository) RenameInAppointments(
	ctx context.Context,
	clientID uint,
	fullName string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("clientid = ?", clientID).
		Update("clientname", fullName).Error
}

func (r *ClientGormRepository) RenameInCreditSales(
	ctx context.Context,
	clientID uint,
	fullName string,
) error {
	return r.db.WithContext(ctx).
		Model(&models.CreditSale{}).
		Where("clientid = ?", clientID).
		Update("clientname", fullName).Error
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
