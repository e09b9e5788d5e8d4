package creditsale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
)

func TestSplitAmount(t *testing.T) {
	cases := []struct {
		name  string
		total string
		n     int
		want  []string
	}{
		{"even split", "300.00", 3, []string{"100", "100", "100"}},
		{"single installment", "59.90", 1, []string{"59.9"}},
		{"remainder goes to last", "100.00", 3, []string{"33.33", "33.33", "33.34"}},
		{"two cents over", "0.05", 2, []string{"0.03", "0.02"}},
		{"ten installments", "99.99", 10, []string{"10", "10", "10", "10", "10", "10", "10", "10", "10", "9.99"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total := decimal.RequireFromString(tc.total)

			amounts, err := SplitAmount(total, tc.n)
			if err != nil {
				t.Fatalf("SplitAmount: %v", err)
			}
			if len(amounts) != tc.n {
				t.Fatalf("expected %d amounts, got %d", tc.n, len(amounts))
			}

			sum := decimal.Zero
			for i, a := range amounts {
				if a.String() != tc.want[i] {
					t.Errorf("amount[%d] = %s, want %s", i, a.String(), tc.want[i])
				}
				sum = sum.Add(a)
			}
			if !sum.Equal(total) {
				t.Fatalf("sum of installments %s != total %s", sum, total)
			}
		})
	}
}

func TestSplitAmountValidation(t *testing.T) {
	if _, err := SplitAmount(decimal.NewFromInt(100), 0); !httperr.IsBusiness(err, "invalid_installment_count") {
		t.Fatalf("expected invalid_installment_count, got %v", err)
	}
	if _, err := SplitAmount(decimal.Zero, 3); !httperr.IsBusiness(err, "invalid_total_amount") {
		t.Fatalf("expected invalid_total_amount, got %v", err)
	}
	if _, err := SplitAmount(decimal.NewFromInt(-10), 3); !httperr.IsBusiness(err, "invalid_total_amount") {
		t.Fatalf("expected invalid_total_amount, got %v", err)
	}
}

func TestDueDatesUseCalendarMonths(t *testing.T) {
	first := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	dates := DueDates(first, 3)
	want := []string{"2024-01-10", "2024-02-10", "2024-03-10"}
	for i, d := range dates {
		if d != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, d, want[i])
		}
	}

	// Janeiro 31 + 1 mês normaliza para março (comportamento do AddDate).
	edge := DueDates(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), 2)
	if edge[1] != "2024-03-02" {
		t.Fatalf("expected 2024-03-02 for Jan 31 + 1 month, got %s", edge[1])
	}
}

func TestBuildInstallments(t *testing.T) {
	first := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	total := decimal.RequireFromString("300.00")

	installments, err := BuildInstallments(7, total, 3, first)
	if err != nil {
		t.Fatalf("BuildInstallments: %v", err)
	}
	if len(installments) != 3 {
		t.Fatalf("expected 3 installments, got %d", len(installments))
	}

	seen := map[int]bool{}
	for i, in := range installments {
		if in.CreditSaleID != 7 {
			t.Errorf("installment %d has sale id %d", i, in.CreditSaleID)
		}
		if in.InstallmentNumber != i+1 {
			t.Errorf("installment %d numbered %d", i, in.InstallmentNumber)
		}
		if seen[in.InstallmentNumber] {
			t.Errorf("duplicate installment number %d", in.InstallmentNumber)
		}
		seen[in.InstallmentNumber] = true

		if in.Status != string(InstallmentPending) {
			t.Errorf("installment %d status %s, want pending", i, in.Status)
		}
		if !in.Amount.Equal(decimal.NewFromInt(100)) {
			t.Errorf("installment %d amount %s, want 100", i, in.Amount)
		}
	}
}
