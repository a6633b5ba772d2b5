package repository

import (
	"time"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
)

// MovementFilter criterios de búsqueda para listados del libro de movimientos.
type MovementFilter struct {
	ProductID   string
	StockpileID string
	Type        string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. El libro es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	// ExistsCancellation indica si ya hay un CANCEL que referencia el movimiento.
	ExistsCancellation(movementID string) (bool, error)
	// ListChronological devuelve todo el libro en orden de creación, para
	// reconstruir la proyección CurrentStock.
	ListChronological() ([]*entity.StockMovement, error)
}
