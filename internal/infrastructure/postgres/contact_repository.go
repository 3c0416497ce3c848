package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación de ContactRepository.
type ContactRepo struct {
	q Querier
}

// NewContactRepository construye el adaptador.
func NewContactRepository(q Querier) *ContactRepo {
	return &ContactRepo{q: q}
}

const contactColumns = `id, name, company, phone, whatsapp, email, notes, created_by, created_at`

// Create persiste un contacto de la agenda.
func (r *ContactRepo) Create(contact *entity.Contact) error {
	query := `
		INSERT INTO contacts (id, name, company, phone, whatsapp, email, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.Name, contact.Company, contact.Phone, contact.WhatsApp,
		contact.Email, contact.Notes, contact.CreatedBy, contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// GetByID obtiene un contacto por ID.
func (r *ContactRepo) GetByID(id string) (*entity.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	contact, err := scanContact(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

// List contactos ordenados por nombre, con filtro opcional por nombre o empresa.
func (r *ContactRepo) List(search string) ([]*entity.Contact, error) {
	query := `
		SELECT ` + contactColumns + ` FROM contacts
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR company ILIKE '%' || $1 || '%')
		ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, search)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*entity.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

// Update reemplaza los campos mutables del contacto.
func (r *ContactRepo) Update(contact *entity.Contact) error {
	query := `
		UPDATE contacts SET name = $2, company = $3, phone = $4, whatsapp = $5, email = $6, notes = $7
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		contact.ID, contact.Name, contact.Company, contact.Phone, contact.WhatsApp,
		contact.Email, contact.Notes,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un contacto.
func (r *ContactRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanContact(row pgx.Row) (*entity.Contact, error) {
	var c entity.Contact
	err := row.Scan(&c.ID, &c.Name, &c.Company, &c.Phone, &c.WhatsApp, &c.Email,
		&c.Notes, &c.CreatedBy, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
