package models

import "time"

// Cliente do painel. As colunas mantêm os nomes das tabelas
// originais do backend hospedado (tudo minúsculo, sem underscore).
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FullName    string `gorm:"column:fullname;size:100;not null" json:"full_name"`
	Whatsapp    string `gorm:"column:whatsapp;size:20" json:"whatsapp"`
	Nickname    string `gorm:"column:nickname;size:50" json:"nickname"`
	CPF         string `gorm:"column:cpf;size:14" json:"cpf"`
	Observation string `gorm:"column:observation;size:255" json:"observation"`

	CreatedAt time.Time `gorm:"column:createdat" json:"created_at"`
}

func (Client) TableName() string { return "clients" }
