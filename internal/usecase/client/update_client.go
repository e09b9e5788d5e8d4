package client

import (
	"context"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/client"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type UpdateClientInput struct {
	ClientID uint

	FullName    *string
	Whatsapp    *string
	Nickname    *string
	CPF         *string
	Observation *string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type UpdateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewUpdateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	bus *events.Bus,
) *UpdateClient {
	return &UpdateClient{
		repo:  repo,
		audit: audit,
		bus:   bus,
	}
}

// Execute aplica a edição e, quando o nome muda, propaga o novo nome
// para transações, agendamentos e crediários com o mesmo clientid.
// Registros sem vínculo (clientid nulo) ficam intactos.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	in UpdateClientInput,
) (*models.Client, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	nameChanged := false

	if in.FullName != nil && *in.FullName != client.FullName {
		if *in.FullName == "" {
			return nil, httperr.ErrBusiness("missing_client_name")
		}
		client.FullName = *in.FullName
		nameChanged = true
	}

	if in.Whatsapp != nil {
		normalized, err := validators.NormalizePhone(*in.Whatsapp)
		if err != nil {
			return nil, err
		}
		client.Whatsapp = normalized
	}

	if in.CPF != nil {
		normalized, err := validators.NormalizeCPF(*in.CPF)
		if err != nil {
			return nil, err
		}
		client.CPF = normalized
	}

	if in.Nickname != nil {
		client.Nickname = *in.Nickname
	}
	if in.Observation != nil {
		client.Observation = *in.Observation
	}

	if err := uc.repo.UpdateClient(ctx, client); err != nil {
		return nil, err
	}

	if nameChanged {
		if err := uc.repo.RenameInTransactions(ctx, client.ID, client.FullName); err != nil {
			return nil, err
		}
		if err := uc.repo.RenameInAppointments(ctx, client.ID, client.FullName); err != nil {
			return nil, err
		}
		if err := uc.repo.RenameInCreditSales(ctx, client.ID, client.FullName); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: &client.ID,
	})

	uc.bus.Publish(events.Event{
		Topic:    events.TopicClientUpdated,
		EntityID: client.ID,
	})

	return client, nil
}
