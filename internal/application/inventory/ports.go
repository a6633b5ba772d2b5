package inventory

import (
	"context"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el insert en el libro de
// movimientos y el update de CurrentStock sean todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error) error
}
