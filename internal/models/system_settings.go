package models

import "time"

// SystemSettings é uma linha única global (id fixo = 1).
// Criada sob demanda com valores seguros quando ausente.
type SystemSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreditEnabled bool   `gorm:"column:creditenabled;default:true" json:"credit_enabled"`
	Theme         string `gorm:"column:theme;size:10;default:'light'" json:"theme"`

	UpdatedAt time.Time `gorm:"column:updatedat" json:"updated_at"`
}

func (SystemSettings) TableName() string { return "system_settings" }

const SystemSettingsRowID uint = 1

// DefaultSystemSettings é o valor usado quando a linha ainda não existe.
func DefaultSystemSettings() SystemSettings {
	return SystemSettings{
		ID:            SystemSettingsRowID,
		CreditEnabled: true,
		Theme:         "light",
	}
}
