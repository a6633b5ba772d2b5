package inventory

import (
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// QueryUseCase lecturas del libro de movimientos y de la proyección de stock.
// Opera sobre el pool, sin transacción: son consultas de solo lectura.
type QueryUseCase struct {
	movRepo   repository.StockMovementRepository
	stockRepo repository.CurrentStockRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(movRepo repository.StockMovementRepository, stockRepo repository.CurrentStockRepository) *QueryUseCase {
	return &QueryUseCase{movRepo: movRepo, stockRepo: stockRepo}
}

// ListMovements lista el libro según el filtro.
func (uc *QueryUseCase) ListMovements(filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return uc.movRepo.List(filter)
}

// GetMovement obtiene un movimiento por ID. Devuelve nil si no existe.
func (uc *QueryUseCase) GetMovement(id string) (*entity.StockMovement, error) {
	return uc.movRepo.GetByID(id)
}

// ListStock lista la proyección completa, paginada.
func (uc *QueryUseCase) ListStock(limit, offset int) ([]*entity.CurrentStock, error) {
	return uc.stockRepo.List(limit, offset)
}

// ListStockByProduct lista el stock de un producto en todos los acopios.
func (uc *QueryUseCase) ListStockByProduct(productID string) ([]*entity.CurrentStock, error) {
	return uc.stockRepo.ListByProduct(productID)
}

// GetStock devuelve la fila de un par (producto, acopio); en cero si no existe.
func (uc *QueryUseCase) GetStock(productID, stockpileID string) (*entity.CurrentStock, error) {
	return uc.stockRepo.Get(productID, stockpileID)
}
