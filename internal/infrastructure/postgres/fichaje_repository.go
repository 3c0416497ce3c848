package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.FichajeRepository = (*FichajeRepo)(nil)

// FichajeRepo implementación de FichajeRepository.
type FichajeRepo struct {
	q Querier
}

// NewFichajeRepository construye el adaptador.
func NewFichajeRepository(q Querier) *FichajeRepo {
	return &FichajeRepo{q: q}
}

// Create persiste un evento de fichaje.
func (r *FichajeRepo) Create(fichaje *entity.Fichaje) error {
	query := `INSERT INTO fichajes (id, user_id, type, timestamp) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		fichaje.ID, fichaje.UserID, fichaje.Type, fichaje.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert fichaje: %w", err)
	}
	return nil
}

// ListByUser fichajes de un usuario en [from, to), en orden cronológico.
// Un to cero deja el intervalo abierto por arriba.
func (r *FichajeRepo) ListByUser(userID string, from, to time.Time) ([]*entity.Fichaje, error) {
	query := `
		SELECT id, user_id, type, timestamp FROM fichajes
		WHERE user_id = $1 AND timestamp >= $2 AND ($3::timestamptz IS NULL OR timestamp < $3)
		ORDER BY timestamp`
	return r.list(query, userID, from, nullableTime(to))
}

// ListAll fichajes de todos los usuarios en [from, to), en orden cronológico.
func (r *FichajeRepo) ListAll(from, to time.Time) ([]*entity.Fichaje, error) {
	query := `
		SELECT id, user_id, type, timestamp FROM fichajes
		WHERE timestamp >= $1 AND ($2::timestamptz IS NULL OR timestamp < $2)
		ORDER BY timestamp`
	return r.list(query, from, nullableTime(to))
}

// LastByUser último fichaje registrado del usuario, o nil si nunca ha fichado.
func (r *FichajeRepo) LastByUser(userID string) (*entity.Fichaje, error) {
	query := `
		SELECT id, user_id, type, timestamp FROM fichajes
		WHERE user_id = $1 ORDER BY timestamp DESC LIMIT 1`
	var f entity.Fichaje
	err := r.q.QueryRow(context.Background(), query, userID).Scan(&f.ID, &f.UserID, &f.Type, &f.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("last fichaje: %w", err)
	}
	return &f, nil
}

func (r *FichajeRepo) list(query string, args ...any) ([]*entity.Fichaje, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fichajes: %w", err)
	}
	defer rows.Close()

	var fichajes []*entity.Fichaje
	for rows.Next() {
		var f entity.Fichaje
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.Timestamp); err != nil {
			return nil, fmt.Errorf("scan fichaje: %w", err)
		}
		fichajes = append(fichajes, &f)
	}
	return fichajes, rows.Err()
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
