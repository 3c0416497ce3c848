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

var _ repository.PackRepository = (*PackRepo)(nil)

// PackRepo implementación de PackRepository.
type PackRepo struct {
	q Querier
}

// NewPackRepository construye el adaptador.
func NewPackRepository(q Querier) *PackRepo {
	return &PackRepo{q: q}
}

const packColumns = `id, company, name, type, price, features, validity_start, validity_end,
	active, observations, created_at, is_demo, category, fiber_speed_mbps, mobile_gb,
	minutes_type, lines_included, additional_lines_supported, tv_supported, tv_package_type, restrictions`

// Create persiste un nuevo pack.
func (r *PackRepo) Create(pack *entity.Pack) error {
	query := `
		INSERT INTO packs (id, company, name, type, price, features, validity_start, validity_end,
			active, observations, created_at, is_demo, category, fiber_speed_mbps, mobile_gb,
			minutes_type, lines_included, additional_lines_supported, tv_supported, tv_package_type, restrictions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(context.Background(), query,
		pack.ID, pack.Company, pack.Name, pack.Type, pack.Price, pack.Features,
		pack.ValidityStart, pack.ValidityEnd, pack.Active, pack.Observations, pack.CreatedAt, pack.IsDemo,
		pack.Category, pack.FiberSpeedMbps, pack.MobileGB, pack.MinutesType, pack.LinesIncluded,
		pack.AdditionalLinesSupported, pack.TVSupported, pack.TVPackageType, pack.Restrictions,
	)
	if err != nil {
		return fmt.Errorf("insert pack: %w", err)
	}
	return nil
}

// GetByID obtiene un pack por ID.
func (r *PackRepo) GetByID(id string) (*entity.Pack, error) {
	query := `SELECT ` + packColumns + ` FROM packs WHERE id = $1`
	pack, err := scanPack(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pack: %w", err)
	}
	return pack, nil
}

// List devuelve el catálogo; con activeOnly solo los packs activos.
func (r *PackRepo) List(activeOnly bool) ([]*entity.Pack, error) {
	query := `SELECT ` + packColumns + ` FROM packs WHERE ($1 = false OR active) ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}
	defer rows.Close()
	return scanPacks(rows)
}

// FindActiveByType packs activos de un tipo (vacío = todos los activos).
func (r *PackRepo) FindActiveByType(packType string) ([]*entity.Pack, error) {
	query := `SELECT ` + packColumns + ` FROM packs WHERE active AND ($1 = '' OR type = $1) ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, packType)
	if err != nil {
		return nil, fmt.Errorf("find active packs: %w", err)
	}
	defer rows.Close()
	return scanPacks(rows)
}

// Update reemplaza todos los campos mutables del pack.
func (r *PackRepo) Update(pack *entity.Pack) error {
	query := `
		UPDATE packs SET company = $2, name = $3, type = $4, price = $5, features = $6,
			validity_start = $7, validity_end = $8, active = $9, observations = $10,
			category = $11, fiber_speed_mbps = $12, mobile_gb = $13, minutes_type = $14,
			lines_included = $15, additional_lines_supported = $16, tv_supported = $17,
			tv_package_type = $18, restrictions = $19
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		pack.ID, pack.Company, pack.Name, pack.Type, pack.Price, pack.Features,
		pack.ValidityStart, pack.ValidityEnd, pack.Active, pack.Observations,
		pack.Category, pack.FiberSpeedMbps, pack.MobileGB, pack.MinutesType, pack.LinesIncluded,
		pack.AdditionalLinesSupported, pack.TVSupported, pack.TVPackageType, pack.Restrictions,
	)
	if err != nil {
		return fmt.Errorf("update pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un pack.
func (r *PackRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM packs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPack(row pgx.Row) (*entity.Pack, error) {
	var p entity.Pack
	err := row.Scan(&p.ID, &p.Company, &p.Name, &p.Type, &p.Price, &p.Features,
		&p.ValidityStart, &p.ValidityEnd, &p.Active, &p.Observations, &p.CreatedAt, &p.IsDemo,
		&p.Category, &p.FiberSpeedMbps, &p.MobileGB, &p.MinutesType, &p.LinesIncluded,
		&p.AdditionalLinesSupported, &p.TVSupported, &p.TVPackageType, &p.Restrictions)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanPacks(rows pgx.Rows) ([]*entity.Pack, error) {
	var packs []*entity.Pack
	for rows.Next() {
		pack, err := scanPack(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		packs = append(packs, pack)
	}
	return packs, rows.Err()
}
