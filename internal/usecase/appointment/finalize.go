package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/appointment"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type FinalizeInput struct {
	AppointmentID uint

	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

// Finalize marca o agendamento como atendido e registra a receita.
// São duas escritas independentes, sem compensação: se a transação
// falhar depois do status, o agendamento fica atendido e a receita
// precisa ser lançada manualmente. Risco conhecido e aceito.
type Finalize struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewFinalize(
	repo domain.Repository,
	audit *audit.Dispatcher,
	bus *events.Bus,
) *Finalize {
	return &Finalize{
		repo:  repo,
		audit: audit,
		bus:   bus,
	}
}

func (uc *Finalize) Execute(
	ctx context.Context,
	in FinalizeInput,
) (*models.Transaction, error) {

	if in.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("missing_payment_method")
	}
	if !in.Subtotal.IsPositive() {
		return nil, httperr.ErrBusiness("invalid_subtotal")
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// --------------------------------------------------
	// 1️⃣ Agendamento → atendido
	// --------------------------------------------------
	if ap.Status != string(domain.StatusAttended) {
		if err := domain.Advance(ap, domain.StatusAttended); err != nil {
			return nil, err
		}
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 2️⃣ Receita
	// --------------------------------------------------
	name, _ := ap.SplitClientName()
	fromAppointment := true

	tx := &models.Transaction{
		ClientName:      name,
		ClientID:        ap.ClientID,
		Service:         ap.Service,
		Date:            timezone.Today(),
		PaymentMethod:   in.PaymentMethod,
		Subtotal:        in.Subtotal,
		Discount:        in.Discount,
		Value:           in.Subtotal.Sub(in.Discount),
		Type:            models.TransactionTypeService,
		FromAppointment: &fromAppointment,
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_finalized",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	uc.bus.Publish(events.Event{
		Topic:    events.TopicLedgerChanged,
		EntityID: tx.ID,
	})

	return tx, nil
}
