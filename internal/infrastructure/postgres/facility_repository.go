package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
)

var _ repository.FacilityRepository = (*FacilityRepo)(nil)

// FacilityRepo implementación del puerto FacilityRepository sobre PostgreSQL.
type FacilityRepo struct {
	pool *pgxpool.Pool
}

// NewFacilityRepository construye el adaptador del directorio de plantas.
func NewFacilityRepository(pool *pgxpool.Pool) *FacilityRepo {
	return &FacilityRepo{pool: pool}
}

// List devuelve todas las plantas.
func (r *FacilityRepo) List(ctx context.Context) ([]entity.Facility, error) {
	query := `SELECT id, name, created_at FROM facilities ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var out []entity.Facility
	for rows.Next() {
		var f entity.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facilities: %w", err)
	}
	return out, nil
}

// GetByID devuelve una planta o domain.ErrNotFound.
func (r *FacilityRepo) GetByID(ctx context.Context, id string) (*entity.Facility, error) {
	query := `SELECT id, name, created_at FROM facilities WHERE id = $1`
	var f entity.Facility
	err := r.pool.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get facility: %w", err)
	}
	return &f, nil
}

// Create inserta una planta.
func (r *FacilityRepo) Create(ctx context.Context, facility *entity.Facility) error {
	query := `INSERT INTO facilities (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(ctx, query, facility.ID, facility.Name, facility.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert facility: %w", err)
	}
	return nil
}
