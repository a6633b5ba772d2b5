package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// CancelMovement anula un movimiento insertando un registro CANCEL con la
// cantidad negada y reaplicando el libro. El registro original queda intacto
// (pista de auditoría); un movimiento solo puede anularse una vez.
//
// Los registros de TRANSFER no se anulan individualmente: un traslado son dos
// filas enlazadas y anular una sola dejaría el par desbalanceado; se corrige
// con un traslado en sentido contrario.
func (uc *RegisterMovementUseCase) CancelMovement(ctx context.Context, movementID, userID, reason string) (*entity.StockMovement, error) {
	now := time.Now()
	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error {
		var err error
		created, err = uc.cancelInTx(movRepo, stockRepo, movementID, userID, reason, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *RegisterMovementUseCase) cancelInTx(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	movementID, userID, reason string,
	now time.Time,
) (*entity.StockMovement, error) {
	orig, err := movRepo.GetByID(movementID)
	if err != nil {
		return nil, err
	}
	if orig == nil {
		return nil, domain.ErrNotFound
	}
	switch orig.Type {
	case entity.MovementTypeCANCEL, entity.MovementTypeTRANSFER:
		return nil, domain.ErrInvalidInput
	}
	canceled, err := movRepo.ExistsCancellation(orig.ID)
	if err != nil {
		return nil, err
	}
	if canceled {
		return nil, domain.ErrMovementClosed
	}

	reversal := &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: uuid.New().String(),
		Type:          entity.MovementTypeCANCEL,
		Date:          now,
		ProductID:     orig.ProductID,
		// acopios invertidos: el reverso deshace en el mismo acopio
		FromStockpileID: orig.ToStockpileID,
		ToStockpileID:   orig.FromStockpileID,
		Quantity:        orig.Quantity.Neg(),
		UnitCost:        orig.UnitCost,
		TotalCost:       orig.TotalCost.Neg(),
		UnitPrice:       orig.UnitPrice,
		TotalRevenue:    orig.TotalRevenue.Neg(),
		CustomerID:      orig.CustomerID,
		Reference:       orig.ID,
		Notes:           reason,
		CreatedAt:       now,
		CreatedBy:       userID,
	}

	// La demanda proyectada nunca tocó CurrentStock; su reverso tampoco.
	if orig.Type != entity.MovementTypeDEMAND {
		cost := orig.UnitCost
		if _, err := applyMovement(stockRepo, orig.ProductID, orig.Stockpile(),
			orig.Quantity.Neg(), &cost, entity.MovementTypeCANCEL, now); err != nil {
			return nil, err
		}
	}
	if err := movRepo.Create(reversal); err != nil {
		return nil, err
	}
	return reversal, nil
}

// EditMovement corrige un movimiento: anula el original y registra el
// reemplazo (tipo EDIT, referenciando al original) en una sola transacción.
func (uc *RegisterMovementUseCase) EditMovement(ctx context.Context, movementID string, input MovementInput) (*entity.StockMovement, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}
	now := time.Now()
	txID := uuid.New().String()

	var created *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.CurrentStockRepository,
	) error {
		if _, err := uc.cancelInTx(movRepo, stockRepo, movementID, input.UserID,
			"editado: reemplazado por nuevo registro", now); err != nil {
			return err
		}
		input.recordType = entity.MovementTypeEDIT
		if input.Reference == "" {
			input.Reference = movementID
		}
		var err error
		created, err = uc.register(movRepo, stockRepo, input, now, txID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
