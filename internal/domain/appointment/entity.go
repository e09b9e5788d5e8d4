package appointment

import (
	"github.com/genilsonferreiraads/hugo-barbearia-dashboard-sub002/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Advance(ap *models.Appointment, next Status) error {
	if err := CanAdvance(Status(ap.Status), next); err != nil {
		return err
	}

	ap.Status = string(next)
	return nil
}
