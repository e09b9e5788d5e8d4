package appointment

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/appointment"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

type AdvanceStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdvanceStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdvanceStatus {
	return &AdvanceStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AdvanceStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	next domain.Status,
	userID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Advance(ap, next); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "appointment_status_advanced",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
