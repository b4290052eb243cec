// Package stockquery orquesta la consulta de snapshots de stock: trae las
// colecciones fuente en paralelo y delega el cálculo en el motor puro
// (internal/domain/stock). Toda la lógica con efectos (fetch, logging de
// señales de calidad de datos) vive aquí, nunca dentro del motor.
package stockquery

import (
	"context"

	"github.com/jcardenas/Produccion-api/internal/application/dto"
	"github.com/jcardenas/Produccion-api/internal/domain/entity"
	"github.com/jcardenas/Produccion-api/internal/domain/repository"
	"github.com/jcardenas/Produccion-api/internal/domain/stock"
	"github.com/jcardenas/Produccion-api/pkg/logger"
)

// SnapshotUseCase computa snapshots de stock por planta y fecha de consulta.
//
// Las tres colecciones fuente se traen en paralelo (fan-out) y el cálculo
// empieza solo cuando las tres terminan (fan-in). Si cualquier fetch falla, la
// consulta degrada a un snapshot en ceros con un warning en el log, en vez de
// tumbar el dashboard. El motor en sí no aplica retry ni timeout: la
// cancelación viaja por el contexto de los fetch.
type SnapshotUseCase struct {
	productionRepo repository.ProductionRecordRepository
	dispatchRepo   repository.DispatchRequestRepository
	storeRepo      repository.StoreRepository
	facilityRepo   repository.FacilityRepository
	policy         stock.ApprovalPolicy
	log            *logger.Logger
}

// NewSnapshotUseCase construye el caso de uso.
func NewSnapshotUseCase(
	productionRepo repository.ProductionRecordRepository,
	dispatchRepo repository.DispatchRequestRepository,
	storeRepo repository.StoreRepository,
	facilityRepo repository.FacilityRepository,
	policy stock.ApprovalPolicy,
	log *logger.Logger,
) *SnapshotUseCase {
	return &SnapshotUseCase{
		productionRepo: productionRepo,
		dispatchRepo:   dispatchRepo,
		storeRepo:      storeRepo,
		facilityRepo:   facilityRepo,
		policy:         policy,
		log:            log,
	}
}

// collections colecciones fuente ya materializadas para una consulta.
type collections struct {
	records  []entity.ProductionRecord
	requests []entity.DispatchRequest
	stores   []entity.Store
}

// fetchCollections fan-out de los tres fetch en goroutines, fan-in al
// completarse los tres. Devuelve el primer error encontrado, si hubo.
func (uc *SnapshotUseCase) fetchCollections(ctx context.Context) (collections, error) {
	type recordsResult struct {
		records []entity.ProductionRecord
		err     error
	}
	type requestsResult struct {
		requests []entity.DispatchRequest
		err      error
	}
	type storesResult struct {
		stores []entity.Store
		err    error
	}

	recordsCh := make(chan recordsResult, 1)
	requestsCh := make(chan requestsResult, 1)
	storesCh := make(chan storesResult, 1)

	go func() {
		records, err := uc.productionRepo.List(ctx)
		recordsCh <- recordsResult{records, err}
	}()
	go func() {
		requests, err := uc.dispatchRepo.List(ctx)
		requestsCh <- requestsResult{requests, err}
	}()
	go func() {
		stores, err := uc.storeRepo.List(ctx)
		storesCh <- storesResult{stores, err}
	}()

	records := <-recordsCh
	requests := <-requestsCh
	stores := <-storesCh

	if records.err != nil {
		return collections{}, records.err
	}
	if requests.err != nil {
		return collections{}, requests.err
	}
	if stores.err != nil {
		return collections{}, stores.err
	}
	return collections{
		records:  records.records,
		requests: requests.requests,
		stores:   stores.stores,
	}, nil
}

// warnDataQuality loguea las entregas con timestamp no reconocido: quedan
// excluidas de todos los totales y un volumen alto implica subconteo.
func (uc *SnapshotUseCase) warnDataQuality(requests []entity.DispatchRequest) {
	if ids := stock.UnrecognizedDeliveryTimestamps(requests); len(ids) > 0 {
		uc.log.Warn().
			Int("count", len(ids)).
			Strs("request_ids", ids).
			Msg("entregas con timestamp no reconocido excluidas de los totales")
	}
}

// GetSnapshot computa el snapshot de una planta a la fecha dada.
// Un fetch fallido degrada a un snapshot en ceros (warning en el log); la
// ausencia de eventos para la planta/fecha no es un error.
func (uc *SnapshotUseCase) GetSnapshot(
	ctx context.Context,
	facilityID string,
	asOf stock.DateKey,
) (dto.StockSnapshotDTO, error) {
	cols, err := uc.fetchCollections(ctx)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("facility_id", facilityID).
			Str("as_of", string(asOf)).
			Msg("fetch de colecciones falló; snapshot degradado en ceros")
		return dto.NewStockSnapshotDTO(stock.ComputeStockSnapshot(
			facilityID, asOf, nil, nil, nil, uc.policy,
		)), nil
	}

	uc.warnDataQuality(cols.requests)
	snap := stock.ComputeStockSnapshot(facilityID, asOf, cols.records, cols.requests, cols.stores, uc.policy)
	return dto.NewStockSnapshotDTO(snap), nil
}

// GetAllSnapshots computa el snapshot de todas las plantas a la misma fecha.
// El directorio de plantas se trae junto con las colecciones; si ese fetch
// falla no hay sobre qué iterar y se devuelve la lista vacía.
func (uc *SnapshotUseCase) GetAllSnapshots(
	ctx context.Context,
	asOf stock.DateKey,
) ([]dto.StockSnapshotDTO, error) {
	type facilitiesResult struct {
		facilities []entity.Facility
		err        error
	}
	facilitiesCh := make(chan facilitiesResult, 1)
	go func() {
		facilities, err := uc.facilityRepo.List(ctx)
		facilitiesCh <- facilitiesResult{facilities, err}
	}()

	cols, err := uc.fetchCollections(ctx)
	facilities := <-facilitiesCh

	if facilities.err != nil {
		uc.log.Warn().Err(facilities.err).Msg("fetch de plantas falló; sin snapshots que computar")
		return []dto.StockSnapshotDTO{}, nil
	}
	if err != nil {
		uc.log.Warn().Err(err).
			Str("as_of", string(asOf)).
			Msg("fetch de colecciones falló; snapshots degradados en ceros")
		cols = collections{}
	} else {
		uc.warnDataQuality(cols.requests)
	}

	snaps := stock.ComputeAllFacilitySnapshots(asOf, facilities.facilities, cols.records, cols.requests, cols.stores, uc.policy)
	out := make([]dto.StockSnapshotDTO, 0, len(snaps))
	for _, snap := range snaps {
		out = append(out, dto.NewStockSnapshotDTO(snap))
	}
	return out, nil
}
