package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
)

var _ repository.DispatchRequestRepository = (*DispatchRequestRepo)(nil)

// DispatchRequestRepo implementación del puerto DispatchRequestRepository
// sobre PostgreSQL. delivered y delivered_at son NULL hasta la entrega;
// delivered_at se guarda como texto tal cual llegó (el motor lo normaliza).
type DispatchRequestRepo struct {
	pool *pgxpool.Pool
}

// NewDispatchRequestRepository construye el adaptador de solicitudes de despacho.
func NewDispatchRequestRepository(pool *pgxpool.Pool) *DispatchRequestRepo {
	return &DispatchRequestRepo{pool: pool}
}

const dispatchRequestColumns = `id, store_id, requested, delivered, status, delivered_at, created_at, updated_at`

// List devuelve el historial completo de solicitudes.
func (r *DispatchRequestRepo) List(ctx context.Context) ([]entity.DispatchRequest, error) {
	query := `SELECT ` + dispatchRequestColumns + ` FROM dispatch_requests ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list dispatch_requests: %w", err)
	}
	defer rows.Close()
	return scanDispatchRequests(rows)
}

// ListByStore devuelve las solicitudes originadas en una tienda.
func (r *DispatchRequestRepo) ListByStore(ctx context.Context, storeID string) ([]entity.DispatchRequest, error) {
	query := `SELECT ` + dispatchRequestColumns + ` FROM dispatch_requests WHERE store_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list dispatch_requests by store: %w", err)
	}
	defer rows.Close()
	return scanDispatchRequests(rows)
}

// GetByID devuelve una solicitud o domain.ErrNotFound.
func (r *DispatchRequestRepo) GetByID(ctx context.Context, id string) (*entity.DispatchRequest, error) {
	query := `SELECT ` + dispatchRequestColumns + ` FROM dispatch_requests WHERE id = $1`
	req, err := scanDispatchRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get dispatch_request: %w", err)
	}
	return req, nil
}

// Create inserta una solicitud nueva (estado pending).
func (r *DispatchRequestRepo) Create(ctx context.Context, req *entity.DispatchRequest) error {
	requested, err := marshalQuantities(req.Requested)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO dispatch_requests (id, store_id, requested, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.pool.Exec(ctx, query,
		req.ID, req.StoreID, requested, req.Status, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert dispatch_request: %w", err)
	}
	return nil
}

// UpdateStatus persiste un cambio de estado ya validado por el caso de uso.
func (r *DispatchRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE dispatch_requests SET status = $2, updated_at = $3 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update dispatch status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkDelivered marca la entrega: estado delivered, cantidades y timestamp textual.
func (r *DispatchRequestRepo) MarkDelivered(
	ctx context.Context,
	id string,
	delivered map[entity.ProductKey]decimal.Decimal,
	deliveredAt string,
) error {
	deliveredJSON, err := marshalQuantities(delivered)
	if err != nil {
		return err
	}
	query := `
		UPDATE dispatch_requests
		SET status = $2, delivered = $3, delivered_at = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, entity.DispatchDelivered, deliveredJSON, deliveredAt, time.Now())
	if err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanDispatchRequest mapea una fila a la entidad.
func scanDispatchRequest(row pgx.Row) (*entity.DispatchRequest, error) {
	var (
		req         entity.DispatchRequest
		requested   []byte
		delivered   []byte
		deliveredAt *string
	)
	err := row.Scan(
		&req.ID, &req.StoreID, &requested, &delivered, &req.Status,
		&deliveredAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if req.Requested, err = unmarshalQuantities(requested); err != nil {
		return nil, err
	}
	if req.Delivered, err = unmarshalQuantities(delivered); err != nil {
		return nil, err
	}
	if deliveredAt != nil {
		req.DeliveredAt = *deliveredAt
	}
	return &req, nil
}

func scanDispatchRequests(rows pgx.Rows) ([]entity.DispatchRequest, error) {
	var out []entity.DispatchRequest
	for rows.Next() {
		req, err := scanDispatchRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dispatch_request: %w", err)
		}
		out = append(out, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatch_requests: %w", err)
	}
	return out, nil
}
