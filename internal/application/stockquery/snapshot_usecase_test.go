package stockquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Produccion-api/internal/application/stockquery"
	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
	"github.com/jcardenas/Produccion-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductionRepo struct {
	records []entity.ProductionRecord
	err     error
}

func (f *fakeProductionRepo) List(context.Context) ([]entity.ProductionRecord, error) {
	return f.records, f.err
}
func (f *fakeProductionRepo) ListByFacility(context.Context, string) ([]entity.ProductionRecord, error) {
	return f.records, f.err
}
func (f *fakeProductionRepo) GetByID(context.Context, string) (*entity.ProductionRecord, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeProductionRepo) Create(context.Context, *entity.ProductionRecord) error { return nil }
func (f *fakeProductionRepo) UpdateApprovalStatus(context.Context, string, string) error {
	return nil
}

type fakeDispatchRepo struct {
	requests []entity.DispatchRequest
	err      error
}

func (f *fakeDispatchRepo) List(context.Context) ([]entity.DispatchRequest, error) {
	return f.requests, f.err
}
func (f *fakeDispatchRepo) ListByStore(context.Context, string) ([]entity.DispatchRequest, error) {
	return f.requests, f.err
}
func (f *fakeDispatchRepo) GetByID(context.Context, string) (*entity.DispatchRequest, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeDispatchRepo) Create(context.Context, *entity.DispatchRequest) error       { return nil }
func (f *fakeDispatchRepo) UpdateStatus(context.Context, string, string) error          { return nil }
func (f *fakeDispatchRepo) MarkDelivered(context.Context, string, map[entity.ProductKey]decimal.Decimal, string) error {
	return nil
}

type fakeStoreRepo struct {
	stores []entity.Store
	err    error
}

func (f *fakeStoreRepo) List(context.Context) ([]entity.Store, error) { return f.stores, f.err }
func (f *fakeStoreRepo) GetByID(context.Context, string) (*entity.Store, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeStoreRepo) Create(context.Context, *entity.Store) error { return nil }

type fakeFacilityRepo struct {
	facilities []entity.Facility
	err        error
}

func (f *fakeFacilityRepo) List(context.Context) ([]entity.Facility, error) {
	return f.facilities, f.err
}
func (f *fakeFacilityRepo) GetByID(context.Context, string) (*entity.Facility, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeFacilityRepo) Create(context.Context, *entity.Facility) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func buildUseCase(prod *fakeProductionRepo, disp *fakeDispatchRepo, st *fakeStoreRepo, fac *fakeFacilityRepo) *stockquery.SnapshotUseCase {
	return stockquery.NewSnapshotUseCase(prod, disp, st, fac, stock.ApprovalPolicyIncludeAll, testLogger())
}

// ──────────────────────────────────────────────────────────────────────────────
// GetSnapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSnapshot_ConciliaColeccionesReales(t *testing.T) {
	fid := "planta-1"
	prod := &fakeProductionRepo{records: []entity.ProductionRecord{{
		FacilityID:     fid,
		Date:           "2025-01-01",
		Yields:         map[entity.ProductKey]decimal.Decimal{"yogurt": dec(100)},
		ApprovalStatus: entity.ApprovalApproved,
	}}}
	disp := &fakeDispatchRepo{requests: []entity.DispatchRequest{{
		ID:          "req-1",
		StoreID:     "tienda-1",
		Status:      entity.DispatchDelivered,
		DeliveredAt: "01/01/2025, 10:00:00",
		Delivered:   map[entity.ProductKey]decimal.Decimal{"yogurt": dec(40)},
	}}}
	st := &fakeStoreRepo{stores: []entity.Store{{ID: "tienda-1", FacilityID: &fid}}}

	uc := buildUseCase(prod, disp, st, &fakeFacilityRepo{})
	snap, err := uc.GetSnapshot(context.Background(), fid, "2025-01-01")

	require.NoError(t, err)
	require.Contains(t, snap.Products, "yogurt")
	assert.True(t, snap.Products["yogurt"].AvailableCumulative.Equal(dec(60)))
	assert.True(t, snap.Products["yogurt"].PercentRemaining.Equal(dec(60)))
}

// Un fetch fallido degrada a snapshot en ceros, nunca a un error para la UI.
func TestGetSnapshot_FetchFallidoDegradaACeros(t *testing.T) {
	prod := &fakeProductionRepo{err: errors.New("timeout del backend")}
	uc := buildUseCase(prod, &fakeDispatchRepo{}, &fakeStoreRepo{}, &fakeFacilityRepo{})

	snap, err := uc.GetSnapshot(context.Background(), "planta-1", "2025-01-01")

	require.NoError(t, err, "el fallo de fetch no debe tumbar la consulta")
	assert.Equal(t, "planta-1", snap.FacilityID)
	assert.Equal(t, "2025-01-01", snap.AsOfDate)
	assert.Empty(t, snap.Products)
	assert.True(t, snap.TotalProducedToday.IsZero())
}

// Sin eventos el snapshot es válido y todo cero (EmptyEventSet no es error).
func TestGetSnapshot_SinEventos(t *testing.T) {
	uc := buildUseCase(&fakeProductionRepo{}, &fakeDispatchRepo{}, &fakeStoreRepo{}, &fakeFacilityRepo{})

	snap, err := uc.GetSnapshot(context.Background(), "planta-1", "2025-06-15")

	require.NoError(t, err)
	assert.Empty(t, snap.Products)
	assert.Zero(t, snap.ApprovedCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetAllSnapshots
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAllSnapshots_UnaPorPlanta(t *testing.T) {
	fac := &fakeFacilityRepo{facilities: []entity.Facility{{ID: "planta-1"}, {ID: "planta-2"}}}
	prod := &fakeProductionRepo{records: []entity.ProductionRecord{{
		FacilityID:     "planta-2",
		Date:           "2025-01-01",
		Yields:         map[entity.ProductKey]decimal.Decimal{"kumis": dec(30)},
		ApprovalStatus: entity.ApprovalApproved,
	}}}

	uc := buildUseCase(prod, &fakeDispatchRepo{}, &fakeStoreRepo{}, fac)
	snaps, err := uc.GetAllSnapshots(context.Background(), "2025-01-01")

	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Empty(t, snaps[0].Products)
	assert.True(t, snaps[1].Products["kumis"].AvailableCumulative.Equal(dec(30)))
}

func TestGetAllSnapshots_FetchDePlantasFallido(t *testing.T) {
	fac := &fakeFacilityRepo{err: errors.New("sin conexión")}
	uc := buildUseCase(&fakeProductionRepo{}, &fakeDispatchRepo{}, &fakeStoreRepo{}, fac)

	snaps, err := uc.GetAllSnapshots(context.Background(), "2025-01-01")

	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestGetAllSnapshots_ColeccionesFallidasDegradanEnCeros(t *testing.T) {
	fac := &fakeFacilityRepo{facilities: []entity.Facility{{ID: "planta-1"}}}
	disp := &fakeDispatchRepo{err: errors.New("token vencido")}

	uc := buildUseCase(&fakeProductionRepo{}, disp, &fakeStoreRepo{}, fac)
	snaps, err := uc.GetAllSnapshots(context.Background(), "2025-01-01")

	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Empty(t, snaps[0].Products)
}
