package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/application/usecase"
	"github.com/jcardenas/Produccion-api/internal/domain"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memDispatchRepo struct {
	byID map[string]*entity.DispatchRequest
}

func newMemDispatchRepo(reqs ...*entity.DispatchRequest) *memDispatchRepo {
	m := &memDispatchRepo{byID: map[string]*entity.DispatchRequest{}}
	for _, r := range reqs {
		m.byID[r.ID] = r
	}
	return m
}

func (m *memDispatchRepo) List(context.Context) ([]entity.DispatchRequest, error) {
	out := make([]entity.DispatchRequest, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memDispatchRepo) ListByStore(_ context.Context, storeID string) ([]entity.DispatchRequest, error) {
	var out []entity.DispatchRequest
	for _, r := range m.byID {
		if r.StoreID == storeID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memDispatchRepo) GetByID(_ context.Context, id string) (*entity.DispatchRequest, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memDispatchRepo) Create(_ context.Context, req *entity.DispatchRequest) error {
	m.byID[req.ID] = req
	return nil
}

func (m *memDispatchRepo) UpdateStatus(_ context.Context, id, status string) error {
	m.byID[id].Status = status
	return nil
}

func (m *memDispatchRepo) MarkDelivered(_ context.Context, id string, delivered map[entity.ProductKey]decimal.Decimal, deliveredAt string) error {
	r := m.byID[id]
	r.Status = entity.DispatchDelivered
	r.Delivered = delivered
	r.DeliveredAt = deliveredAt
	return nil
}

type memStoreRepo struct {
	stores map[string]*entity.Store
}

func (m *memStoreRepo) List(context.Context) ([]entity.Store, error) { return nil, nil }
func (m *memStoreRepo) GetByID(_ context.Context, id string) (*entity.Store, error) {
	s, ok := m.stores[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (m *memStoreRepo) Create(context.Context, *entity.Store) error { return nil }

func qty(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func pendingRequest(id string) *entity.DispatchRequest {
	return &entity.DispatchRequest{
		ID:        id,
		StoreID:   "tienda-1",
		Status:    entity.DispatchPending,
		Requested: map[entity.ProductKey]decimal.Decimal{"yogurt": qty(10)},
	}
}

func buildDispatchUC(repo *memDispatchRepo) *usecase.DispatchUseCase {
	stores := &memStoreRepo{stores: map[string]*entity.Store{"tienda-1": {ID: "tienda-1"}}}
	return usecase.NewDispatchUseCase(repo, stores)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestDispatchCreate_NaceEnPending(t *testing.T) {
	repo := newMemDispatchRepo()
	uc := buildDispatchUC(repo)

	out, err := uc.Create(context.Background(), dto.CreateDispatchRequest{
		StoreID:   "tienda-1",
		Requested: map[string]decimal.Decimal{"Yogurt": qty(10)},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DispatchPending, out.Status)
	assert.Contains(t, out.Requested, "yogurt", "los nombres se normalizan a ProductKey")
	assert.NotEmpty(t, out.ID)
}

func TestDispatchCreate_TiendaInexistente(t *testing.T) {
	uc := buildDispatchUC(newMemDispatchRepo())

	_, err := uc.Create(context.Background(), dto.CreateDispatchRequest{
		StoreID:   "tienda-fantasma",
		Requested: map[string]decimal.Decimal{"yogurt": qty(1)},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDispatchUpdateStatus_TransicionValida(t *testing.T) {
	repo := newMemDispatchRepo(pendingRequest("req-1"))
	uc := buildDispatchUC(repo)

	err := uc.UpdateStatus(context.Background(), "req-1", dto.UpdateDispatchStatusRequest{Status: entity.DispatchApproved})

	require.NoError(t, err)
	assert.Equal(t, entity.DispatchApproved, repo.byID["req-1"].Status)
}

// Saltarse la aprobación viola la máquina de estados.
func TestDispatchUpdateStatus_SaltoInvalido(t *testing.T) {
	repo := newMemDispatchRepo(pendingRequest("req-1"))
	uc := buildDispatchUC(repo)

	err := uc.UpdateStatus(context.Background(), "req-1", dto.UpdateDispatchStatusRequest{Status: entity.DispatchFulfilled})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, entity.DispatchPending, repo.byID["req-1"].Status, "el estado no debe cambiar")
}

// delivered no pasa por UpdateStatus: requiere cantidades y timestamp.
func TestDispatchUpdateStatus_DeliveredVaPorDeliver(t *testing.T) {
	req := pendingRequest("req-1")
	req.Status = entity.DispatchFulfilled
	uc := buildDispatchUC(newMemDispatchRepo(req))

	err := uc.UpdateStatus(context.Background(), "req-1", dto.UpdateDispatchStatusRequest{Status: entity.DispatchDelivered})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDispatchDeliver_EstampaEntrega(t *testing.T) {
	req := pendingRequest("req-1")
	req.Status = entity.DispatchPartiallyFulfilled
	repo := newMemDispatchRepo(req)
	uc := buildDispatchUC(repo)

	err := uc.Deliver(context.Background(), "req-1", dto.DeliverDispatchRequest{
		Delivered:   map[string]decimal.Decimal{"Yogurt": qty(8)},
		DeliveredAt: "2025-01-05 14:30:00",
	})

	require.NoError(t, err)
	stored := repo.byID["req-1"]
	assert.Equal(t, entity.DispatchDelivered, stored.Status)
	assert.Equal(t, "2025-01-05 14:30:00", stored.DeliveredAt)
	assert.True(t, stored.Delivered["yogurt"].Equal(qty(8)))
}

func TestDispatchDeliver_DesdePendingEsInvalido(t *testing.T) {
	uc := buildDispatchUC(newMemDispatchRepo(pendingRequest("req-1")))

	err := uc.Deliver(context.Background(), "req-1", dto.DeliverDispatchRequest{
		Delivered: map[string]decimal.Decimal{"yogurt": qty(8)},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDispatchDeliver_DobleEntrega(t *testing.T) {
	req := pendingRequest("req-1")
	req.Status = entity.DispatchDelivered
	uc := buildDispatchUC(newMemDispatchRepo(req))

	err := uc.Deliver(context.Background(), "req-1", dto.DeliverDispatchRequest{
		Delivered: map[string]decimal.Decimal{"yogurt": qty(8)},
	})

	assert.ErrorIs(t, err, domain.ErrAlreadyDelivered)
}
