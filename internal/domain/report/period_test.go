package report

import (
	"testing"
	"time"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
)

// quarta-feira, 17 de abril de 2024
var now = time.Date(2024, 4, 17, 15, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		period    Period
		wantStart string
		wantEnd   string
		prevStart string
	}{
		{"today", PeriodToday, "2024-04-17", "2024-04-18", "2024-04-16"},
		{"week starts monday", PeriodWeek, "2024-04-15", "2024-04-22", "2024-04-08"},
		{"month", PeriodMonth, "2024-04-01", "2024-05-01", "2024-03-01"},
		{"year", PeriodYear, "2024-01-01", "2025-01-01", "2023-01-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur, prev, err := Resolve(tc.period, now, "", "")
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := cur.Start.Format(DateLayout); got != tc.wantStart {
				t.Errorf("start = %s, want %s", got, tc.wantStart)
			}
			if got := cur.End.Format(DateLayout); got != tc.wantEnd {
				t.Errorf("end = %s, want %s", got, tc.wantEnd)
			}
			if got := prev.Start.Format(DateLayout); got != tc.prevStart {
				t.Errorf("previous start = %s, want %s", got, tc.prevStart)
			}
			if !prev.End.Equal(cur.Start) {
				t.Errorf("previous window must end where current starts")
			}
		})
	}
}

func TestResolveCustom(t *testing.T) {
	cur, prev, err := Resolve(PeriodCustom, now, "2024-03-10", "2024-03-19")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	// Data final inclusiva: 10 dias de janela.
	if !cur.Contains("2024-03-19") {
		t.Error("custom range must include its end date")
	}
	if cur.Contains("2024-03-20") {
		t.Error("custom range must not include the day after")
	}
	if got := prev.Start.Format(DateLayout); got != "2024-02-29" {
		t.Errorf("previous start = %s, want 2024-02-29", got)
	}

	if _, _, err := Resolve(PeriodCustom, now, "bogus", "2024-03-19"); !httperr.IsBusiness(err, "invalid_period_start") {
		t.Fatalf("expected invalid_period_start, got %v", err)
	}
	if _, _, err := Resolve(PeriodCustom, now, "2024-03-19", "2024-03-10"); !httperr.IsBusiness(err, "invalid_period_range") {
		t.Fatalf("expected invalid_period_range, got %v", err)
	}
}

func TestResolveAll(t *testing.T) {
	cur, prev, err := Resolve(PeriodAll, now, "", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !cur.Contains("1999-01-01") || !cur.Contains("2099-12-31") {
		t.Error("all-time range must contain any date")
	}
	if prev.Contains("2024-04-16") {
		t.Error("all-time has no previous window")
	}
}

func TestResolveUnknownPeriod(t *testing.T) {
	if _, _, err := Resolve(Period("quarter"), now, "", ""); !httperr.IsBusiness(err, "invalid_period") {
		t.Fatalf("expected invalid_period, got %v", err)
	}
}

func TestRangeContainsRejectsGarbage(t *testing.T) {
	cur, _, _ := Resolve(PeriodMonth, now, "", "")
	if cur.Contains("not-a-date") {
		t.Error("garbage dates must not match")
	}
}
