package creditsale

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/audit"
	domain "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/domain/creditsale"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/events"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	sales        map[uint]*models.CreditSale
	installments map[uint]*models.Installment
	transactions []models.Transaction

	nextSaleID        uint
	nextInstallmentID uint

	failCreateInstallments error
	failCreateTransaction  error
	deletedSales           []uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sales:        map[uint]*models.CreditSale{},
		installments: map[uint]*models.Installment{},
	}
}

func (f *fakeRepo) CreateSale(_ context.Context, sale *models.CreditSale) error {
	f.nextSaleID++
	sale.ID = f.nextSaleID
	cp := *sale
	f.sales[sale.ID] = &cp
	return nil
}

func (f *fakeRepo) DeleteSale(_ context.Context, saleID uint) error {
	delete(f.sales, saleID)
	f.deletedSales = append(f.deletedSales, saleID)
	return nil
}

func (f *fakeRepo) GetSale(_ context.Context, saleID uint) (*models.CreditSale, error) {
	sale, ok := f.sales[saleID]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *sale
	return &cp, nil
}

func (f *fakeRepo) UpdateSale(_ context.Context, sale *models.CreditSale) error {
	cp := *sale
	f.sales[sale.ID] = &cp
	return nil
}

func (f *fakeRepo) ListOpenSales(_ context.Context) ([]models.CreditSale, error) {
	var out []models.CreditSale
	for _, sale := range f.sales {
		if sale.Status != string(domain.SalePaid) {
			out = append(out, *sale)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateInstallments(_ context.Context, installments []models.Installment) error {
	if f.failCreateInstallments != nil {
		return f.failCreateInstallments
	}
	for i := range installments {
		f.nextInstallmentID++
		installments[i].ID = f.nextInstallmentID
		cp := installments[i]
		f.installments[cp.ID] = &cp
	}
	return nil
}

func (f *fakeRepo) GetInstallment(_ context.Context, id uint) (*models.Installment, error) {
	in, ok := f.installments[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	cp := *in
	return &cp, nil
}

func (f *fakeRepo) UpdateInstallment(_ context.Context, in *models.Installment) error {
	cp := *in
	f.installments[in.ID] = &cp
	return nil
}

func (f *fakeRepo) ListInstallmentsForSale(_ context.Context, saleID uint) ([]models.Installment, error) {
	var out []models.Installment
	for _, in := range f.installments {
		if in.CreditSaleID == saleID {
			out = append(out, *in)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	if f.failCreateTransaction != nil {
		return f.failCreateTransaction
	}
	f.transactions = append(f.transactions, *tx)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func testDeps() (*audit.Dispatcher, *events.Bus) {
	return audit.NewDispatcher(nopSink{}), events.New()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ======================================================
// CREATE SALE
// ======================================================

func createScenarioSale(t *testing.T, repo *fakeRepo) *models.CreditSale {
	t.Helper()

	auditor, bus := testDeps()
	uc := NewCreateSale(repo, auditor, bus)

	sale, err := uc.Execute(context.Background(), CreateSaleInput{
		ClientName:           "João Silva",
		Products:             "Kit pomada + minoxidil",
		TotalAmount:          dec("300.00"),
		Subtotal:             dec("300.00"),
		Discount:             decimal.Zero,
		NumberOfInstallments: 3,
		FirstDueDate:         "2024-01-10",
		Date:                 "2024-01-02",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}
	return sale
}

func TestCreateSaleGeneratesSchedule(t *testing.T) {
	repo := newFakeRepo()
	sale := createScenarioSale(t, repo)

	if sale.Status != string(domain.SaleActive) {
		t.Errorf("status = %s, want active", sale.Status)
	}
	if !sale.RemainingAmount.Equal(dec("300.00")) {
		t.Errorf("remaining = %s, want 300.00", sale.RemainingAmount)
	}
	if !sale.TotalPaid.IsZero() {
		t.Errorf("totalpaid = %s, want 0", sale.TotalPaid)
	}

	installments, _ := repo.ListInstallmentsForSale(context.Background(), sale.ID)
	if len(installments) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(installments))
	}

	wantDue := map[int]string{1: "2024-01-10", 2: "2024-02-10", 3: "2024-03-10"}
	sum := decimal.Zero
	for _, in := range installments {
		if in.Status != string(domain.InstallmentPending) {
			t.Errorf("installment %d status %s", in.InstallmentNumber, in.Status)
		}
		if !in.Amount.Equal(dec("100.00")) {
			t.Errorf("installment %d amount %s", in.InstallmentNumber, in.Amount)
		}
		if in.DueDate != wantDue[in.InstallmentNumber] {
			t.Errorf("installment %d due %s, want %s", in.InstallmentNumber, in.DueDate, wantDue[in.InstallmentNumber])
		}
		sum = sum.Add(in.Amount)
	}
	if !sum.Equal(sale.TotalAmount) {
		t.Errorf("installment sum %s != total %s", sum, sale.TotalAmount)
	}
}

func TestCreateSaleRollsBackWhenInstallmentsFail(t *testing.T) {
	repo := newFakeRepo()
	repo.failCreateInstallments = errors.New("boom")

	auditor, bus := testDeps()
	uc := NewCreateSale(repo, auditor, bus)

	_, err := uc.Execute(context.Background(), CreateSaleInput{
		ClientName:           "João",
		TotalAmount:          dec("100.00"),
		NumberOfInstallments: 2,
		FirstDueDate:         "2024-01-10",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.sales) != 0 {
		t.Fatal("sale record must be deleted when installment creation fails")
	}
	if len(repo.deletedSales) != 1 {
		t.Fatal("compensating delete not issued")
	}
}

func TestCreateSaleValidation(t *testing.T) {
	repo := newFakeRepo()
	auditor, bus := testDeps()
	uc := NewCreateSale(repo, auditor, bus)

	_, err := uc.Execute(context.Background(), CreateSaleInput{
		ClientName:           "João",
		TotalAmount:          dec("100.00"),
		NumberOfInstallments: 0,
		FirstDueDate:         "2024-01-10",
	})
	if !httperr.IsBusiness(err, "invalid_installment_count") {
		t.Fatalf("expected invalid_installment_count, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateSaleInput{
		ClientName:           "João",
		TotalAmount:          dec("100.00"),
		NumberOfInstallments: 2,
		FirstDueDate:         "10/01/2024",
	})
	if !httperr.IsBusiness(err, "invalid_first_due_date") {
		t.Fatalf("expected invalid_first_due_date, got %v", err)
	}

	if len(repo.sales) != 0 {
		t.Fatal("validation failures must not create sales")
	}
}

// ======================================================
// PAY INSTALLMENT
// ======================================================

func installmentByNumber(t *testing.T, repo *fakeRepo, saleID uint, number int) *models.Installment {
	t.Helper()
	installments, _ := repo.ListInstallmentsForSale(context.Background(), saleID)
	for _, in := range installments {
		if in.InstallmentNumber == number {
			cp := in
			return &cp
		}
	}
	t.Fatalf("installment %d not found", number)
	return nil
}

func TestPayInstallmentUpdatesSaleAndLogsRevenue(t *testing.T) {
	repo := newFakeRepo()
	sale := createScenarioSale(t, repo)

	auditor, bus := testDeps()
	uc := NewPayInstallment(repo, auditor, bus)

	first := installmentByNumber(t, repo, sale.ID, 1)

	paid, err := uc.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: first.ID,
		PaymentMethod: "Pix",
		PaidDate:      "2024-01-09",
	})
	if err != nil {
		t.Fatalf("PayInstallment: %v", err)
	}

	if paid.Status != string(domain.InstallmentPaid) {
		t.Errorf("installment status = %s", paid.Status)
	}
	if paid.PaidDate != "2024-01-09" || paid.PaymentMethod != "Pix" {
		t.Errorf("payment metadata = %s %s", paid.PaidDate, paid.PaymentMethod)
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if !got.TotalPaid.Equal(dec("100.00")) {
		t.Errorf("totalpaid = %s, want 100.00", got.TotalPaid)
	}
	if !got.RemainingAmount.Equal(dec("200.00")) {
		t.Errorf("remaining = %s, want 200.00", got.RemainingAmount)
	}
	if got.Status != string(domain.SaleActive) {
		t.Errorf("sale status = %s, want active", got.Status)
	}
	if !got.TotalPaid.Add(got.RemainingAmount).Equal(got.TotalAmount) {
		t.Error("totalpaid + remaining must equal totalamount")
	}

	if len(repo.transactions) != 1 {
		t.Fatalf("expected 1 revenue transaction, got %d", len(repo.transactions))
	}
	tx := repo.transactions[0]
	if !tx.Value.Equal(dec("100.00")) || tx.Type != models.TransactionTypeProduct {
		t.Errorf("revenue transaction = %+v", tx)
	}
	if tx.Service != "Parcela 1/3 - João Silva" {
		t.Errorf("revenue label = %q", tx.Service)
	}
}

func TestPayAllInstallmentsSettlesSale(t *testing.T) {
	repo := newFakeRepo()
	sale := createScenarioSale(t, repo)

	auditor, bus := testDeps()
	uc := NewPayInstallment(repo, auditor, bus)

	for n := 1; n <= 3; n++ {
		in := installmentByNumber(t, repo, sale.ID, n)
		if _, err := uc.Execute(context.Background(), PayInstallmentInput{
			InstallmentID: in.ID,
			PaymentMethod: "Dinheiro",
		}); err != nil {
			t.Fatalf("pay installment %d: %v", n, err)
		}
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if got.Status != string(domain.SalePaid) {
		t.Errorf("sale status = %s, want paid", got.Status)
	}
	if !got.TotalPaid.Equal(got.TotalAmount) {
		t.Errorf("totalpaid = %s, want %s", got.TotalPaid, got.TotalAmount)
	}
	if !got.RemainingAmount.IsZero() {
		t.Errorf("remaining = %s, want 0", got.RemainingAmount)
	}
}

func TestPayInstallmentIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	sale := createScenarioSale(t, repo)

	auditor, bus := testDeps()
	uc := NewPayInstallment(repo, auditor, bus)

	first := installmentByNumber(t, repo, sale.ID, 1)
	if _, err := uc.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: first.ID,
		PaymentMethod: "Pix",
	}); err != nil {
		t.Fatalf("first payment: %v", err)
	}

	_, err := uc.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: first.ID,
		PaymentMethod: "Pix",
	})
	if !httperr.IsBusiness(err, "installment_already_paid") {
		t.Fatalf("expected installment_already_paid, got %v", err)
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if !got.TotalPaid.Equal(dec("100.00")) {
		t.Errorf("double payment must not change totals: %s", got.TotalPaid)
	}
}

func TestPayInstallmentFailOpenOnRevenueLog(t *testing.T) {
	repo := newFakeRepo()
	sale := createScenarioSale(t, repo)
	repo.failCreateTransaction = errors.New("boom")

	auditor, bus := testDeps()
	uc := NewPayInstallment(repo, auditor, bus)

	first := installmentByNumber(t, repo, sale.ID, 1)
	if _, err := uc.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: first.ID,
		PaymentMethod: "Pix",
	}); err != nil {
		t.Fatalf("payment must succeed even if revenue log fails: %v", err)
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if !got.TotalPaid.Equal(dec("100.00")) {
		t.Errorf("totalpaid = %s, want 100.00", got.TotalPaid)
	}
	if len(repo.transactions) != 0 {
		t.Error("no transaction should be recorded")
	}
}

func TestPayInstallmentRequiresMethod(t *testing.T) {
	repo := newFakeRepo()
	auditor, bus := testDeps()
	uc := NewPayInstallment(repo, auditor, bus)

	_, err := uc.Execute(context.Background(), PayInstallmentInput{InstallmentID: 1})
	if !httperr.IsBusiness(err, "missing_payment_method") {
		t.Fatalf("expected missing_payment_method, got %v", err)
	}
}

// ======================================================
// REFRESH OVERDUE
// ======================================================

func TestRefreshOverdueMarksLateInstallments(t *testing.T) {
	repo := newFakeRepo()

	auditor, bus := testDeps()
	create := NewCreateSale(repo, auditor, bus)

	// Vencimentos no passado distante: 1ª e 2ª parcela já venceram.
	sale, err := create.Execute(context.Background(), CreateSaleInput{
		ClientName:           "Maria",
		TotalAmount:          dec("300.00"),
		NumberOfInstallments: 3,
		FirstDueDate:         "2000-01-10",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	pay := NewPayInstallment(repo, auditor, bus)
	first := installmentByNumber(t, repo, sale.ID, 1)
	if _, err := pay.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: first.ID,
		PaymentMethod: "Pix",
	}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	refresh := NewRefreshOverdue(repo, bus)
	result, err := refresh.Execute(context.Background())
	if err != nil {
		t.Fatalf("RefreshOverdue: %v", err)
	}

	if result.InstallmentsMarked != 2 {
		t.Errorf("marked = %d, want 2", result.InstallmentsMarked)
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if got.Status != string(domain.SaleOverdue) {
		t.Errorf("sale status = %s, want overdue", got.Status)
	}

	// Parcela paga nunca vira overdue.
	paidAgain, _ := repo.GetInstallment(context.Background(), first.ID)
	if paidAgain.Status != string(domain.InstallmentPaid) {
		t.Errorf("paid installment reclassified to %s", paidAgain.Status)
	}
}

func TestRefreshOverdueNeverTouchesPaidSales(t *testing.T) {
	repo := newFakeRepo()

	auditor, bus := testDeps()
	create := NewCreateSale(repo, auditor, bus)
	pay := NewPayInstallment(repo, auditor, bus)

	sale, err := create.Execute(context.Background(), CreateSaleInput{
		ClientName:           "Maria",
		TotalAmount:          dec("100.00"),
		NumberOfInstallments: 2,
		FirstDueDate:         "2000-01-10",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	for n := 1; n <= 2; n++ {
		in := installmentByNumber(t, repo, sale.ID, n)
		if _, err := pay.Execute(context.Background(), PayInstallmentInput{
			InstallmentID: in.ID,
			PaymentMethod: "Pix",
		}); err != nil {
			t.Fatalf("pay %d: %v", n, err)
		}
	}

	refresh := NewRefreshOverdue(repo, bus)
	result, err := refresh.Execute(context.Background())
	if err != nil {
		t.Fatalf("RefreshOverdue: %v", err)
	}
	if result.InstallmentsMarked != 0 || result.SalesChanged != 0 {
		t.Errorf("paid sale must be untouched: %+v", result)
	}

	got, _ := repo.GetSale(context.Background(), sale.ID)
	if got.Status != string(domain.SalePaid) {
		t.Errorf("sale left paid state: %s", got.Status)
	}
}

func TestRefreshOverdueRecoversAfterPayment(t *testing.T) {
	repo := newFakeRepo()

	auditor, bus := testDeps()
	create := NewCreateSale(repo, auditor, bus)
	pay := NewPayInstallment(repo, auditor, bus)
	refresh := NewRefreshOverdue(repo, bus)

	sale, err := create.Execute(context.Background(), CreateSaleInput{
		ClientName:           "Maria",
		TotalAmount:          dec("100.00"),
		NumberOfInstallments: 1,
		FirstDueDate:         "2000-01-10",
	})
	if err != nil {
		t.Fatalf("CreateSale: %v", err)
	}

	if _, err := refresh.Execute(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	got, _ := repo.GetSale(context.Background(), sale.ID)
	if got.Status != string(domain.SaleOverdue) {
		t.Fatalf("expected overdue, got %s", got.Status)
	}

	// Atrasada → paga encerra a venda.
	in := installmentByNumber(t, repo, sale.ID, 1)
	if _, err := pay.Execute(context.Background(), PayInstallmentInput{
		InstallmentID: in.ID,
		PaymentMethod: "Pix",
	}); err != nil {
		t.Fatalf("pay overdue installment: %v", err)
	}

	got, _ = repo.GetSale(context.Background(), sale.ID)
	if got.Status != string(domain.SalePaid) {
		t.Fatalf("expected paid after settling overdue installment, got %s", got.Status)
	}
}
