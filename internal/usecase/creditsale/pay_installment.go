package creditsale

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/creditsale"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/timezone"
)

type PayInstallmentInput struct {
	InstallmentID uint
	PaymentMethod string
	PaidDate      string // vazio = hoje (fuso da barbearia)
	UserID        *uint
}

type PayInstallment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	bus   *events.Bus
}

func NewPayInstallment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	bus *events.Bus,
) *PayInstallment {
	return &PayInstallment{
		repo:  repo,
		audit: audit,
		bus:   bus,
	}
}

func (uc *PayInstallment) Execute(
	ctx context.Context,
	in PayInstallmentInput,
) (*models.Installment, error) {

	if in.PaymentMethod == "" {
		return nil, httperr.ErrBusiness("missing_payment_method")
	}

	installment, err := uc.repo.GetInstallment(ctx, in.InstallmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("installment_not_found")
	}

	if err := domain.CanPay(domain.InstallmentStatus(installment.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Parcela → paga
	// --------------------------------------------------
	paidDate := in.PaidDate
	if paidDate == "" {
		paidDate = timezone.Today()
	}

	installment.Status = string(domain.InstallmentPaid)
	installment.PaidDate = paidDate
	installment.PaymentMethod = in.PaymentMethod

	if err := uc.repo.UpdateInstallment(ctx, installment); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Agregados da venda
	// --------------------------------------------------
	sale, err := uc.repo.GetSale(ctx, installment.CreditSaleID)
	if err != nil {
		return nil, httperr.ErrBusiness("credit_sale_not_found")
	}

	domain.ApplyPayment(sale, installment.Amount)

	// --------------------------------------------------
	// 3️⃣ Status da venda (relê todas as parcelas)
	// --------------------------------------------------
	siblings, err := uc.repo.ListInstallmentsForSale(ctx, sale.ID)
	if err != nil {
		return nil, err
	}

	status := domain.Classify(siblings)
	if status == domain.SaleOverdue {
		// Pagamento não reclassifica atraso; isso é papel do refresh.
		status = domain.SaleActive
	}
	sale.Status = string(status)

	if err := uc.repo.UpdateSale(ctx, sale); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Receita no livro de transações (fail-open)
	// --------------------------------------------------
	// O pagamento já está gravado; se o registro de receita falhar,
	// o relatório cobre o valor pelas parcelas pagas.
	tx := &models.Transaction{
		ClientName:    sale.ClientName,
		ClientID:      sale.ClientID,
		Service:       domain.ReceiptLabel(sale.ClientName, installment.InstallmentNumber, sale.NumberOfInstallments),
		Date:          paidDate,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      installment.Amount,
		Value:         installment.Amount,
		Type:          models.TransactionTypeProduct,
	}
	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		logrus.WithError(err).
			WithField("installment_id", installment.ID).
			Warn("failed to log installment payment transaction")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "installment_paid",
		Entity:   "installment",
		EntityID: &installment.ID,
	})

	uc.bus.Publish(events.Event{
		Topic:    events.TopicLedgerChanged,
		EntityID: sale.ID,
	})

	return installment, nil
}
