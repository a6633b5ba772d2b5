package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/inventory"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos del libro de stock de forma
// transaccional (PRODUCTION, SALES, ADJUSTMENT, OPENING, TRANSFER, DEMAND)
// con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	stockpileRepo repository.StockpileRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	stockpileRepo repository.StockpileRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		stockpileRepo: stockpileRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
// PRODUCTION/OPENING: ProductID, ToStockpileID, Quantity > 0, UnitCost ≥ 0.
// SALES: ProductID, FromStockpileID, Quantity > 0, UnitPrice; el costo se toma
// del promedio vigente, nunca del caller.
// ADJUSTMENT: ProductID, StockpileID, Quantity con signo; UnitCost opcional en
// ajustes positivos (por defecto el promedio vigente).
// TRANSFER: ProductID, FromStockpileID, ToStockpileID, Quantity > 0.
// DEMAND: ProductID, Quantity > 0; no afecta el stock actual.
type MovementInput struct {
	UserID          string
	Type            string
	Date            time.Time
	ProductID       string
	StockpileID     string // solo ajustes
	FromStockpileID string
	ToStockpileID   string
	Quantity        decimal.Decimal
	UnitCost        *decimal.Decimal
	UnitPrice       decimal.Decimal
	CustomerID      string
	VehicleID       string
	DriverID        string
	DocketNumber    string
	Reference       string
	Notes           string

	// recordType fuerza el tipo persistido del registro (lo usa EDIT).
	recordType string
}

// RegisterMovement valida la entrada, inicia una transacción y registra el
// movimiento junto con la actualización de CurrentStock. Devuelve la fila
// creada en el libro.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
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
		var err error
		created, err = uc.register(movRepo, stockRepo, input, now, txID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// validate corre las validaciones previas a la transacción: campos y
// existencia de producto y acopios. Las violaciones de saldo se detectan
// dentro de la transacción, con la fila bloqueada.
func (uc *RegisterMovementUseCase) validate(input MovementInput) error {
	if input.ProductID == "" {
		return domain.ErrInvalidInput
	}
	switch input.Type {
	case entity.MovementTypePRODUCTION, entity.MovementTypeOPENING:
		if input.ToStockpileID == "" || !input.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
		if input.UnitCost == nil || input.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeSALES:
		if input.FromStockpileID == "" || !input.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
		if input.UnitPrice.IsNegative() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeADJUSTMENT:
		if input.StockpileID == "" || input.Quantity.IsZero() {
			return domain.ErrInvalidInput
		}
		if input.UnitCost != nil && input.UnitCost.IsNegative() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTRANSFER:
		if input.FromStockpileID == "" || input.ToStockpileID == "" ||
			input.FromStockpileID == input.ToStockpileID || !input.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeDEMAND:
		if !input.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	for _, id := range []string{input.StockpileID, input.FromStockpileID, input.ToStockpileID} {
		if id == "" {
			continue
		}
		sp, err := uc.stockpileRepo.GetByID(id)
		if err != nil || sp == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

// register despacha por tipo dentro de la transacción. Lo comparte
// RegisterMovement y EditMovement.
func (uc *RegisterMovementUseCase) register(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	switch input.Type {
	case entity.MovementTypePRODUCTION, entity.MovementTypeOPENING:
		return uc.doIntake(movRepo, stockRepo, input, now, txID)
	case entity.MovementTypeSALES:
		return uc.doSales(movRepo, stockRepo, input, now, txID)
	case entity.MovementTypeADJUSTMENT:
		return uc.doAdjustment(movRepo, stockRepo, input, now, txID)
	case entity.MovementTypeTRANSFER:
		return uc.doTransfer(movRepo, stockRepo, input, now, txID)
	case entity.MovementTypeDEMAND:
		return uc.doDemand(movRepo, input, now, txID)
	}
	return nil, domain.ErrInvalidInput
}

// doIntake registra una entrada con costo propio (producción o apertura):
// actualiza la proyección y guarda el registro del libro.
func (uc *RegisterMovementUseCase) doIntake(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	recordType := input.persistedType()
	if _, err := applyMovement(stockRepo, input.ProductID, input.ToStockpileID,
		input.Quantity, input.UnitCost, recordType, input.Date); err != nil {
		return nil, err
	}
	mov := newMovement(input, recordType, now, txID)
	mov.ToStockpileID = input.ToStockpileID
	mov.Quantity = input.Quantity
	mov.UnitCost = *input.UnitCost
	mov.TotalCost = input.Quantity.Mul(*input.UnitCost).Round(inventory.MoneyScale)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// doSales registra una venta: verifica el saldo con la fila bloqueada, resta
// la cantidad y guarda el registro al costo promedio vigente (la venta jamás
// introduce una base de costo nueva).
func (uc *RegisterMovementUseCase) doSales(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	recordType := input.persistedType()
	cs, err := applyMovement(stockRepo, input.ProductID, input.FromStockpileID,
		input.Quantity.Neg(), nil, recordType, input.Date)
	if err != nil {
		return nil, err
	}
	unitCost := cs.AverageCost // sin cambio por la venta: es el vigente

	mov := newMovement(input, recordType, now, txID)
	mov.FromStockpileID = input.FromStockpileID
	mov.Quantity = input.Quantity.Neg()
	mov.UnitCost = unitCost
	mov.TotalCost = mov.Quantity.Mul(unitCost).Round(inventory.MoneyScale)
	mov.UnitPrice = input.UnitPrice
	mov.TotalRevenue = input.Quantity.Mul(input.UnitPrice).Round(inventory.MoneyScale)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// doAdjustment registra un ajuste con signo. Positivo con UnitCost promedia
// esa base de costo; positivo sin costo o negativo deja el promedio intacto.
func (uc *RegisterMovementUseCase) doAdjustment(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	recordType := input.persistedType()
	cs, err := applyMovement(stockRepo, input.ProductID, input.StockpileID,
		input.Quantity, input.UnitCost, recordType, input.Date)
	if err != nil {
		return nil, err
	}
	unitCost := cs.AverageCost
	if input.UnitCost != nil {
		unitCost = *input.UnitCost
	}

	mov := newMovement(input, recordType, now, txID)
	if input.Quantity.IsNegative() {
		mov.FromStockpileID = input.StockpileID
	} else {
		mov.ToStockpileID = input.StockpileID
	}
	mov.Quantity = input.Quantity
	mov.UnitCost = unitCost
	mov.TotalCost = input.Quantity.Mul(unitCost).Round(inventory.MoneyScale)
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// doTransfer descuenta del acopio origen y suma en el destino dentro de la
// misma transacción, al costo promedio del origen; guarda dos registros
// enlazados por TransactionID. Devuelve el registro de salida.
func (uc *RegisterMovementUseCase) doTransfer(
	movRepo repository.StockMovementRepository,
	stockRepo repository.CurrentStockRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	recordType := input.persistedType()
	origin, err := applyMovement(stockRepo, input.ProductID, input.FromStockpileID,
		input.Quantity.Neg(), nil, recordType, input.Date)
	if err != nil {
		return nil, err
	}
	srcCost := origin.AverageCost
	if _, err := applyMovement(stockRepo, input.ProductID, input.ToStockpileID,
		input.Quantity, &srcCost, recordType, input.Date); err != nil {
		return nil, err
	}

	outMov := newMovement(input, recordType, now, txID)
	outMov.FromStockpileID = input.FromStockpileID
	outMov.Quantity = input.Quantity.Neg()
	outMov.UnitCost = srcCost
	outMov.TotalCost = outMov.Quantity.Mul(srcCost).Round(inventory.MoneyScale)
	if err := movRepo.Create(outMov); err != nil {
		return nil, err
	}

	inMov := newMovement(input, recordType, now, txID)
	inMov.ToStockpileID = input.ToStockpileID
	inMov.Quantity = input.Quantity
	inMov.UnitCost = srcCost
	inMov.TotalCost = input.Quantity.Mul(srcCost).Round(inventory.MoneyScale)
	if err := movRepo.Create(inMov); err != nil {
		return nil, err
	}
	return outMov, nil
}

// doDemand registra demanda proyectada: solo el libro, sin tocar CurrentStock.
func (uc *RegisterMovementUseCase) doDemand(
	movRepo repository.StockMovementRepository,
	input MovementInput,
	now time.Time, txID string,
) (*entity.StockMovement, error) {
	mov := newMovement(input, input.persistedType(), now, txID)
	mov.ToStockpileID = input.ToStockpileID
	mov.Quantity = input.Quantity
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// persistedType devuelve el tipo a guardar en el libro (EDIT lo fuerza).
func (in MovementInput) persistedType() string {
	if in.recordType != "" {
		return in.recordType
	}
	return in.Type
}

// newMovement arma el registro base del libro con los campos comunes.
func newMovement(input MovementInput, recordType string, now time.Time, txID string) *entity.StockMovement {
	return &entity.StockMovement{
		ID:            uuid.New().String(),
		TransactionID: txID,
		Type:          recordType,
		Date:          input.Date,
		ProductID:     input.ProductID,
		CustomerID:    input.CustomerID,
		VehicleID:     input.VehicleID,
		DriverID:      input.DriverID,
		DocketNumber:  input.DocketNumber,
		Reference:     input.Reference,
		Notes:         input.Notes,
		CreatedAt:     now,
		CreatedBy:     input.UserID,
	}
}
