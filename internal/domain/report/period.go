package report

import (
	"time"

	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"
)

const DateLayout = "2006-01-02"

type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodYear   Period = "year"
	PeriodCustom Period = "custom"
	PeriodAll    Period = "all"
)

// Range é uma janela semiaberta [Start, End). Unbounded cobre tudo.
type Range struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

func (r Range) IsZero() bool {
	return !r.Unbounded && r.Start.IsZero() && r.End.IsZero()
}

// Contains testa uma data "2006-01-02" contra a janela.
func (r Range) Contains(date string) bool {
	if r.Unbounded {
		return true
	}
	if r.IsZero() {
		return false
	}
	d, err := time.ParseInLocation(DateLayout, date, r.Start.Location())
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && d.Before(r.End)
}

// Resolve calcula a janela atual e a janela anterior de mesmo
// comprimento, imediatamente antes da atual. Janelas de mês e ano
// usam aritmética de calendário; as demais usam duração fixa.
func Resolve(p Period, now time.Time, customStart, customEnd string) (current, previous Range, err error) {
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch p {
	case PeriodToday:
		current = Range{Start: midnight, End: midnight.AddDate(0, 0, 1)}
		previous = Range{Start: midnight.AddDate(0, 0, -1), End: midnight}

	case PeriodWeek:
		// Semana começa na segunda-feira.
		offset := (int(midnight.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		current = Range{Start: start, End: start.AddDate(0, 0, 7)}
		previous = Range{Start: start.AddDate(0, 0, -7), End: start}

	case PeriodMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		current = Range{Start: start, End: start.AddDate(0, 1, 0)}
		previous = Range{Start: start.AddDate(0, -1, 0), End: start}

	case PeriodYear:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc)
		current = Range{Start: start, End: start.AddDate(1, 0, 0)}
		previous = Range{Start: start.AddDate(-1, 0, 0), End: start}

	case PeriodAll:
		current = Range{Unbounded: true}
		previous = Range{} // vazio; não há janela anterior

	case PeriodCustom:
		start, perr := time.ParseInLocation(DateLayout, customStart, loc)
		if perr != nil {
			return Range{}, Range{}, httperr.ErrBusiness("invalid_period_start")
		}
		endDay, perr := time.ParseInLocation(DateLayout, customEnd, loc)
		if perr != nil {
			return Range{}, Range{}, httperr.ErrBusiness("invalid_period_end")
		}
		end := endDay.AddDate(0, 0, 1) // data final é inclusiva
		if !start.Before(end) {
			return Range{}, Range{}, httperr.ErrBusiness("invalid_period_range")
		}
		length := end.Sub(start)
		current = Range{Start: start, End: end}
		previous = Range{Start: start.Add(-length), End: start}

	default:
		return Range{}, Range{}, httperr.ErrBusiness("invalid_period")
	}

	return current, previous, nil
}
