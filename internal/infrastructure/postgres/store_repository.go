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

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
// facility_id es NULL para tiendas sin planta asignada.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador del directorio de tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

// List devuelve el directorio completo de tiendas (mapeadas o no).
func (r *StoreRepo) List(ctx context.Context) ([]entity.Store, error) {
	query := `SELECT id, name, facility_id, created_at FROM stores ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var out []entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.FacilityID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stores: %w", err)
	}
	return out, nil
}

// GetByID devuelve una tienda o domain.ErrNotFound.
func (r *StoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	query := `SELECT id, name, facility_id, created_at FROM stores WHERE id = $1`
	var s entity.Store
	err := r.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.FacilityID, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// Create inserta una tienda.
func (r *StoreRepo) Create(ctx context.Context, store *entity.Store) error {
	query := `INSERT INTO stores (id, name, facility_id, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(ctx, query, store.ID, store.Name, store.FacilityID, store.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}
