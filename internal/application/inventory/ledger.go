package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// recalculatesCost indica si un movimiento entrante trae su propia base de
// costo y por tanto recalcula el promedio ponderado. Las ventas nunca cambian
// el costo de lo que queda; la demanda proyectada ni siquiera toca el stock.
func recalculatesCost(movementType string) bool {
	switch movementType {
	case entity.MovementTypePRODUCTION,
		entity.MovementTypeOPENING,
		entity.MovementTypeADJUSTMENT,
		entity.MovementTypeTRANSFER,
		entity.MovementTypeCANCEL,
		entity.MovementTypeEDIT:
		return true
	}
	return false
}

// affectsCostBasis decide si el movimiento recalcula el promedio. Entradas:
// solo los tipos con base de costo propia. Salidas: únicamente CANCEL, que
// retira valor a la base del movimiento anulado para que el promedio quede
// como si la entrada anulada nunca hubiera existido.
func affectsCostBasis(movementType string, qtyChange decimal.Decimal) bool {
	if qtyChange.IsPositive() {
		return recalculatesCost(movementType)
	}
	return movementType == entity.MovementTypeCANCEL
}

// applyMovement es el actualizador del libro: muta la fila CurrentStock del
// par (producto, acopio) dentro de la transacción ambiente del caller.
//
//  1. Bloquea la fila (SELECT FOR UPDATE); si no existe, parte de cero.
//  2. Una salida mayor al saldo corta con ErrInsufficientStock y revienta la
//     transacción completa, incluido el insert del movimiento.
//  3. Solo las entradas (cantidad > 0) de tipos con base de costo propia
//     recalculan el promedio ponderado; todo lo demás lo deja intacto.
//  4. Persiste cantidad, promedio y valor total vía upsert (ON CONFLICT),
//     que cubre la creación perezosa de la fila sin ventana de carrera.
//
// unitCost nil significa "usar el promedio actual" (ventas, ajustes al costo
// vigente). Devuelve la fila ya actualizada; para una venta el promedio
// devuelto es, por definición, el vigente antes de la venta.
func applyMovement(
	stockRepo repository.CurrentStockRepository,
	productID, stockpileID string,
	qtyChange decimal.Decimal,
	unitCost *decimal.Decimal,
	movementType string,
	at time.Time,
) (*entity.CurrentStock, error) {
	cs, err := stockRepo.GetForUpdate(productID, stockpileID)
	if err != nil {
		return nil, err
	}

	if qtyChange.IsNegative() && cs.Quantity.LessThan(qtyChange.Neg()) {
		return nil, domain.ErrInsufficientStock
	}

	cost := cs.AverageCost
	if unitCost != nil {
		cost = *unitCost
	}

	newQty := cs.Quantity.Add(qtyChange)
	avg := cs.AverageCost
	if affectsCostBasis(movementType, qtyChange) {
		avg = inventory.WeightedAverageCost(cs.Quantity, cs.AverageCost, qtyChange, cost)
		if avg.IsNegative() {
			avg = decimal.Zero
		}
	}

	cs.Quantity = newQty
	cs.AverageCost = avg
	cs.TotalValue = inventory.TotalValue(newQty, avg)
	cs.LastMovementAt = at
	cs.UpdatedAt = at
	if err := stockRepo.Upsert(cs); err != nil {
		return nil, err
	}
	return cs, nil
}
