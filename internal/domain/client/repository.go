package client

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type Repository interface {
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		client *models.Client,
	) error

	// -------- Rename cascade (por clientid) --------
	RenameInTransactions(
		ctx context.Context,
		clientID uint,
		fullName string,
	) error

	RenameInAppointments(
		ctx context.Context,
		clientID uint,
		fullName string,
	) error

	RenameInCreditSales(
		ctx context.Context,
		clientID uint,
		fullName string,
	) error
}
