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

var _ repository.ProductionRecordRepository = (*ProductionRecordRepo)(nil)

// ProductionRecordRepo implementación del puerto ProductionRecordRepository
// sobre PostgreSQL. Los mapas de rendimiento y merma se guardan como JSONB.
type ProductionRecordRepo struct {
	pool *pgxpool.Pool
}

// NewProductionRecordRepository construye el adaptador de registros de producción.
func NewProductionRecordRepository(pool *pgxpool.Pool) *ProductionRecordRepo {
	return &ProductionRecordRepo{pool: pool}
}

const productionRecordColumns = `id, facility_id, date, yields, wastage, approval_status, created_by, created_at`

// List devuelve el historial completo de registros de producción.
func (r *ProductionRecordRepo) List(ctx context.Context) ([]entity.ProductionRecord, error) {
	query := `SELECT ` + productionRecordColumns + ` FROM production_records ORDER BY date, created_at`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list production_records: %w", err)
	}
	defer rows.Close()
	return scanProductionRecords(rows)
}

// ListByFacility devuelve los registros de una planta.
func (r *ProductionRecordRepo) ListByFacility(ctx context.Context, facilityID string) ([]entity.ProductionRecord, error) {
	query := `SELECT ` + productionRecordColumns + ` FROM production_records WHERE facility_id = $1 ORDER BY date, created_at`
	rows, err := r.pool.Query(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list production_records by facility: %w", err)
	}
	defer rows.Close()
	return scanProductionRecords(rows)
}

// GetByID devuelve un registro o domain.ErrNotFound.
func (r *ProductionRecordRepo) GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	query := `SELECT ` + productionRecordColumns + ` FROM production_records WHERE id = $1`
	rec, err := scanProductionRecord(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get production_record: %w", err)
	}
	return rec, nil
}

// Create inserta el cierre de producción de una planta/fecha.
func (r *ProductionRecordRepo) Create(ctx context.Context, record *entity.ProductionRecord) error {
	yields, err := marshalQuantities(record.Yields)
	if err != nil {
		return err
	}
	wastage, err := marshalWastage(record.Wastage)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO production_records (id, facility_id, date, yields, wastage, approval_status, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.pool.Exec(ctx, query,
		record.ID, record.FacilityID, record.Date, yields, wastage,
		record.ApprovalStatus, record.CreatedBy, record.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production_record: %w", err)
	}
	return nil
}

// UpdateApprovalStatus cambia el estado de aprobación del registro.
func (r *ProductionRecordRepo) UpdateApprovalStatus(ctx context.Context, id, status string) error {
	query := `UPDATE production_records SET approval_status = $2 WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update approval_status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// scanProductionRecord mapea una fila a la entidad.
func scanProductionRecord(row pgx.Row) (*entity.ProductionRecord, error) {
	var (
		rec     entity.ProductionRecord
		yields  []byte
		wastage []byte
	)
	err := row.Scan(
		&rec.ID, &rec.FacilityID, &rec.Date, &yields, &wastage,
		&rec.ApprovalStatus, &rec.CreatedBy, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rec.Yields, err = unmarshalQuantities(yields); err != nil {
		return nil, err
	}
	if rec.Wastage, err = unmarshalWastage(wastage); err != nil {
		return nil, err
	}
	return &rec, nil
}

func scanProductionRecords(rows pgx.Rows) ([]entity.ProductionRecord, error) {
	var out []entity.ProductionRecord
	for rows.Next() {
		rec, err := scanProductionRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production_record: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate production_records: %w", err)
	}
	return out, nil
}
