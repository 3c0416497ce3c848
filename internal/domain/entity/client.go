package entity

import "time"

// Client representa un cliente final (titular de las ventas).
type Client struct {
	ID            string
	Name          string
	Phone         string
	Email         string
	City          string
	Address       string
	DNI           string
	InternalNotes string // notas internas, solo visibles a roles autorizados
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	IsDemo        bool
}
