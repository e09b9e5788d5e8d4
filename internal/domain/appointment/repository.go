package appointment

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type Repository interface {
	GetAppointment(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Registro de receita ao finalizar o atendimento.
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}
