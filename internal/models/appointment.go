package models

import (
	"strings"
	"time"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// ClientName pode embutir o telefone no formato "Nome|Telefone"
	// (legado do painel). Use SplitClientName para exibir.
	ClientName string `gorm:"column:clientname;size:150;not null" json:"client_name"`
	ClientID   *uint  `gorm:"column:clientid" json:"client_id"`

	Service string `gorm:"column:service;size:150" json:"service"`
	Date    string `gorm:"column:date;size:10;index" json:"date"` // 2006-01-02
	Time    string `gorm:"column:time;size:5" json:"time"`        // 15:04

	Status string `gorm:"column:status;size:20;default:'confirmed'" json:"status"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (Appointment) TableName() string { return "appointments" }

// SplitClientName separa "Nome|Telefone" em nome e telefone.
func (a *Appointment) SplitClientName() (name, phone string) {
	parts := strings.SplitN(a.ClientName, "|", 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		phone = strings.TrimSpace(parts[1])
	}
	return name, phone
}
