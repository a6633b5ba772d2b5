package repository

import "github.com/specialdk/rac-inventory-sub000/internal/domain/entity"

// CurrentStockRepository define el puerto para la proyección de stock actual
// por (producto, acopio). Usado dentro de transacciones para garantizar
// consistencia con el libro de movimientos.
type CurrentStockRepository interface {
	Get(productID, stockpileID string) (*entity.CurrentStock, error)
	// GetForUpdate bloquea la fila para la duración de la transacción
	// (SELECT FOR UPDATE). Si el par todavía no tiene fila, la materializa
	// en cero antes de bloquear: sin fila no hay lock, y dos primeros
	// movimientos concurrentes del mismo par se sobreescribirían.
	GetForUpdate(productID, stockpileID string) (*entity.CurrentStock, error)
	Upsert(stock *entity.CurrentStock) error
	List(limit, offset int) ([]*entity.CurrentStock, error)
	ListByProduct(productID string) ([]*entity.CurrentStock, error)
	// DeleteAll vacía la proyección; solo lo usa la reconstrucción desde el libro.
	DeleteAll() error
}
