package entity

import "time"

// Contact contacto externo de la agenda (distribuidores, soporte de operadoras).
type Contact struct {
	ID        string
	Name      string
	Company   string
	Phone     string
	WhatsApp  string
	Email     string
	Notes     string
	CreatedBy string
	CreatedAt time.Time
}
