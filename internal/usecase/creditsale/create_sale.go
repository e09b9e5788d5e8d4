package creditsale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/creditsale"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateSaleInput struct {
	ClientName string
	ClientID   *uint
	Products   string

	TotalAmount decimal.Decimal
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal

	NumberOfInstallments int
	FirstDueDate         string
	Date                 string

	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateSale struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewCreateSale(
	repo domain.Repository,
	audit *audit.Dispatcher,
	bus *events.Bus,
) *CreateSale {
	return &CreateSale{
		repo:  repo,
		audit: audit,
		bus:   bus,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSale) Execute(
	ctx context.Context,
	in CreateSaleInput,
) (*models.CreditSale, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	if in.ClientName == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	firstDue, err := time.ParseInLocation(
		domain.DateLayout,
		in.FirstDueDate,
		timezone.Location(timezone.DefaultTimezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_first_due_date")
	}

	date := in.Date
	if date == "" {
		date = timezone.Today()
	}

	// --------------------------------------------------
	// 2️⃣ Parcelas (valida total e quantidade)
	// --------------------------------------------------
	// Montadas antes da venda para falhar cedo; os IDs entram depois.
	if _, err := domain.SplitAmount(in.TotalAmount, in.NumberOfInstallments); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Venda
	// --------------------------------------------------
	sale := &models.CreditSale{
		ClientName:           in.ClientName,
		ClientID:             in.ClientID,
		Products:             in.Products,
		TotalAmount:          in.TotalAmount,
		Subtotal:             in.Subtotal,
		Discount:             in.Discount,
		NumberOfInstallments: in.NumberOfInstallments,
		FirstDueDate:         in.FirstDueDate,
		Status:               string(domain.SaleActive),
		TotalPaid:            decimal.Zero,
		RemainingAmount:      in.TotalAmount,
		Date:                 date,
	}

	if err := uc.repo.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Parcelas 1..N
	// --------------------------------------------------
	installments, err := domain.BuildInstallments(
		sale.ID,
		in.TotalAmount,
		in.NumberOfInstallments,
		firstDue,
	)
	if err == nil {
		err = uc.repo.CreateInstallments(ctx, installments)
	}

	if err != nil {
		// Compensação: a venda não pode ficar órfã de parcelas.
		if delErr := uc.repo.DeleteSale(ctx, sale.ID); delErr != nil {
			return nil, delErr
		}
		return nil, err
	}

	sale.Installments = installments

	// --------------------------------------------------
	// 5️⃣ Auditoria + notificação
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "credit_sale_created",
		Entity:   "credit_sale",
		EntityID: &sale.ID,
	})

	uc.bus.Publish(events.Event{
		Topic:    events.TopicLedgerChanged,
		EntityID: sale.ID,
	})

	return sale, nil
}
