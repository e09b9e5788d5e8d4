package appointment

import "github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusArrived   Status = "arrived"
	StatusAttended  Status = "attended"
)

var order = map[Status]int{
	StatusConfirmed: 0,
	StatusArrived:   1,
	StatusAttended:  2,
}

func IsValid(s Status) bool {
	_, ok := order[s]
	return ok
}

// CanAdvance valida a progressão confirmed → arrived → attended.
// Repetir o status atual ou voltar atrás é rejeitado.
func CanAdvance(current, next Status) error {
	cur, ok := order[current]
	if !ok {
		return httperr.ErrBusiness("invalid_status")
	}
	nxt, ok := order[next]
	if !ok {
		return httperr.ErrBusiness("invalid_status")
	}
	if nxt <= cur {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
