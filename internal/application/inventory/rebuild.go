package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// RebuildCurrentStock reconstruye la proyección CurrentStock reproduciendo el
// libro completo en orden cronológico, dentro de una sola transacción. La
// proyección no es autoritativa; esta operación es la prueba de ello y la
// herramienta de reparación si alguna vez divergiera.
//
// El replay no valida saldos: el libro ya pasó esas validaciones cuando se
// escribió, y una reconstrucción debe terminar aunque encuentre datos
// históricos imperfectos. Devuelve la cantidad de pares reconstruidos.
func (uc *RegisterMovementUseCase) RebuildCurrentStock(ctx context.Context) (int, error) {
	now := time.Now()
	var rebuilt int
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error {
		movements, err := movRepo.ListChronological()
		if err != nil {
			return err
		}
		if err := stockRepo.DeleteAll(); err != nil {
			return err
		}

		type pair struct{ productID, stockpileID string }
		acc := make(map[pair]*entity.CurrentStock)
		var order []pair

		for _, m := range movements {
			if m.Type == entity.MovementTypeDEMAND {
				continue
			}
			sp := m.Stockpile()
			if sp == "" {
				continue
			}
			key := pair{m.ProductID, sp}
			cs, ok := acc[key]
			if !ok {
				cs = &entity.CurrentStock{ProductID: m.ProductID, StockpileID: sp}
				acc[key] = cs
				order = append(order, key)
			}
			if affectsCostBasis(m.Type, m.Quantity) {
				avg := inventory.WeightedAverageCost(cs.Quantity, cs.AverageCost, m.Quantity, m.UnitCost)
				if avg.IsNegative() {
					avg = decimal.Zero
				}
				cs.AverageCost = avg
			}
			cs.Quantity = cs.Quantity.Add(m.Quantity)
			cs.TotalValue = inventory.TotalValue(cs.Quantity, cs.AverageCost)
			cs.LastMovementAt = m.Date
			cs.UpdatedAt = now
		}

		for _, key := range order {
			if err := stockRepo.Upsert(acc[key]); err != nil {
				return err
			}
		}
		rebuilt = len(order)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return rebuilt, nil
}
