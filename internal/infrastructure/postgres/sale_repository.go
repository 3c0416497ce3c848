package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hipnotik-level/ventas-api/internal/domain"
	"github.com/hipnotik-level/ventas-api/internal/domain/entity"
	"github.com/hipnotik-level/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository. Las líneas móviles y la fibra
// se guardan como documentos JSONB dentro de la fila de la venta.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, client_id, company, pack_type, pack_id, pack_name, pack_price,
	mobile_lines, fiber, notes, status, score, created_by, created_at, updated_at, is_demo`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	lines, fiber, err := marshalSaleDocs(sale)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO sales (id, client_id, company, pack_type, pack_id, pack_name, pack_price,
			mobile_lines, fiber, notes, status, score, created_by, created_at, updated_at, is_demo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.Company, sale.PackType, sale.PackID, sale.PackName, sale.PackPrice,
		lines, fiber, sale.Notes, sale.Status, sale.Score, sale.CreatedBy, sale.CreatedAt, sale.UpdatedAt, sale.IsDemo,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// List lista ventas aplicando los filtros no vacíos, más recientes primero.
func (r *SaleRepo) List(filter repository.SaleFilter, limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CreatedBy != "" {
		query += ` AND created_by = ` + arg(filter.CreatedBy)
	}
	if filter.Status != "" {
		query += ` AND status = ` + arg(filter.Status)
	}
	if filter.Company != "" {
		query += ` AND company = ` + arg(filter.Company)
	}
	if filter.ClientID != "" {
		query += ` AND client_id = ` + arg(filter.ClientID)
	}
	if !filter.From.IsZero() {
		query += ` AND created_at >= ` + arg(filter.From)
	}
	if !filter.To.IsZero() {
		query += ` AND created_at < ` + arg(filter.To)
	}
	query += ` ORDER BY created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
	}
	return sales, rows.Err()
}

// Update reemplaza todos los campos mutables de la venta.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	lines, fiber, err := marshalSaleDocs(sale)
	if err != nil {
		return err
	}
	query := `
		UPDATE sales SET client_id = $2, company = $3, pack_type = $4, pack_id = $5,
			pack_name = $6, pack_price = $7, mobile_lines = $8, fiber = $9, notes = $10,
			status = $11, score = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ClientID, sale.Company, sale.PackType, sale.PackID, sale.PackName,
		sale.PackPrice, lines, fiber, sale.Notes, sale.Status, sale.Score, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListIDsByCreator devuelve solo los IDs de las ventas de un autor.
func (r *SaleRepo) ListIDsByCreator(createdBy string, limit int) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id FROM sales WHERE created_by = $1 LIMIT $2`, createdBy, limit)
	if err != nil {
		return nil, fmt.Errorf("list sale ids: %w", err)
	}
	defer rows.Close()
	return scanIDs(rows)
}

// marshalSaleDocs serializa los documentos anidados a JSONB (NULL si faltan).
func marshalSaleDocs(sale *entity.Sale) (lines, fiber []byte, err error) {
	if sale.MobileLines != nil {
		lines, err = json.Marshal(sale.MobileLines)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal mobile_lines: %w", err)
		}
	}
	if sale.Fiber != nil {
		fiber, err = json.Marshal(sale.Fiber)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal fiber: %w", err)
		}
	}
	return lines, fiber, nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s         entity.Sale
		linesJSON []byte
		fiberJSON []byte
	)
	err := row.Scan(&s.ID, &s.ClientID, &s.Company, &s.PackType, &s.PackID, &s.PackName,
		&s.PackPrice, &linesJSON, &fiberJSON, &s.Notes, &s.Status, &s.Score,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt, &s.IsDemo)
	if err != nil {
		return nil, err
	}
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &s.MobileLines); err != nil {
			return nil, fmt.Errorf("unmarshal mobile_lines: %w", err)
		}
	}
	if len(fiberJSON) > 0 {
		var f entity.FiberInfo
		if err := json.Unmarshal(fiberJSON, &f); err != nil {
			return nil, fmt.Errorf("unmarshal fiber: %w", err)
		}
		s.Fiber = &f
	}
	return &s, nil
}
