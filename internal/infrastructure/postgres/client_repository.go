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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador.
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, phone, email, city, address, dni, internal_notes, created_by, created_at, updated_at, is_demo`

// Create persiste un nuevo cliente.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, phone, email, city, address, dni, internal_notes, created_by, created_at, updated_at, is_demo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Phone, client.Email, client.City, client.Address,
		client.DNI, client.InternalNotes, client.CreatedBy, client.CreatedAt, client.UpdatedAt, client.IsDemo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByPhone obtiene un cliente por teléfono exacto (deduplicación).
func (r *ClientRepo) GetByPhone(phone string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE phone = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, phone))
}

// List lista clientes con búsqueda opcional sobre nombre y teléfono.
func (r *ClientRepo) List(search string, limit, offset int) ([]*entity.Client, error) {
	query := `
		SELECT ` + clientColumns + ` FROM clients
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := r.scanFields(rows, &c); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, rows.Err()
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clients SET name = $2, phone = $3, email = $4, city = $5, address = $6,
			dni = $7, internal_notes = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		client.ID, client.Name, client.Phone, client.Email, client.City, client.Address,
		client.DNI, client.InternalNotes, client.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un cliente.
func (r *ClientRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.City, &c.Address,
		&c.DNI, &c.InternalNotes, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.IsDemo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) scanFields(rows pgx.Rows, c *entity.Client) error {
	err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.City, &c.Address,
		&c.DNI, &c.InternalNotes, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.IsDemo)
	if err != nil {
		return fmt.Errorf("scan client: %w", err)
	}
	return nil
}
