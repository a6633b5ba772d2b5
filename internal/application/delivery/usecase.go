package delivery

import (
	"time"

	"github.com/google/uuid"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// DeliveryUseCase gestiona las guías de despacho: alta, consulta y render
// de la guía en PDF o XML.
type DeliveryUseCase struct {
	deliveryRepo repository.DeliveryRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockpileRepository
	customerRepo repository.CustomerRepository
	carrierRepo  repository.CarrierRepository
	driverRepo   repository.DriverRepository
	vehicleRepo  repository.VehicleRepository
	pdfGen       DocketPDFGenerator
	xmlBuilder   DocketXMLBuilder
}

// NewDeliveryUseCase construye el caso de uso de despachos.
func NewDeliveryUseCase(
	deliveryRepo repository.DeliveryRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockpileRepository,
	customerRepo repository.CustomerRepository,
	carrierRepo repository.CarrierRepository,
	driverRepo repository.DriverRepository,
	vehicleRepo repository.VehicleRepository,
	pdfGen DocketPDFGenerator,
	xmlBuilder DocketXMLBuilder,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		deliveryRepo: deliveryRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		customerRepo: customerRepo,
		carrierRepo:  carrierRepo,
		driverRepo:   driverRepo,
		vehicleRepo:  vehicleRepo,
		pdfGen:       pdfGen,
		xmlBuilder:   xmlBuilder,
	}
}

// Create registra la guía de un movimiento de venta existente.
// El movimiento debe ser SALES y el número de guía único.
func (uc *DeliveryUseCase) Create(in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	if in.MovementID == "" || in.DocketNumber == "" || in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	movement, err := uc.movementRepo.GetByID(in.MovementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	if movement.Type != entity.MovementTypeSALES {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.deliveryRepo.GetByDocketNumber(in.DocketNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	deliveryDate := time.Now()
	if in.DeliveryDate != "" {
		d, err := time.Parse("2006-01-02", in.DeliveryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		deliveryDate = d
	}

	del := &entity.Delivery{
		ID:           uuid.New().String(),
		MovementID:   in.MovementID,
		DocketNumber: in.DocketNumber,
		CustomerID:   in.CustomerID,
		CarrierID:    in.CarrierID,
		VehicleID:    in.VehicleID,
		DriverID:     in.DriverID,
		DeliveryDate: deliveryDate,
		Destination:  in.Destination,
		Notes:        in.Notes,
		CreatedAt:    time.Now(),
	}
	if err := uc.deliveryRepo.Create(del); err != nil {
		return nil, err
	}
	return toDeliveryResponse(del), nil
}

// GetByID obtiene un despacho por ID.
func (uc *DeliveryUseCase) GetByID(id string) (*dto.DeliveryResponse, error) {
	del, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if del == nil {
		return nil, nil
	}
	return toDeliveryResponse(del), nil
}

// List lista despachos; si customerID no es vacío filtra por cliente.
func (uc *DeliveryUseCase) List(customerID string, limit, offset int) (*dto.DeliveryListResponse, error) {
	var (
		list []*entity.Delivery
		err  error
	)
	if customerID != "" {
		list, err = uc.deliveryRepo.ListByCustomer(customerID, limit, offset)
	} else {
		list, err = uc.deliveryRepo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDeliveryResponse(d))
	}
	return &dto.DeliveryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// DocketPDF renderiza la guía de un despacho en PDF.
func (uc *DeliveryUseCase) DocketPDF(id string) ([]byte, error) {
	data, err := uc.docketData(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.Generate(*data)
}

// DocketXML serializa la guía de un despacho como XML.
func (uc *DeliveryUseCase) DocketXML(id string) ([]byte, error) {
	data, err := uc.docketData(id)
	if err != nil {
		return nil, err
	}
	return uc.xmlBuilder.Build(*data)
}

// docketData resuelve nombres y arma el DocketData de un despacho.
func (uc *DeliveryUseCase) docketData(id string) (*DocketData, error) {
	del, err := uc.deliveryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if del == nil {
		return nil, domain.ErrNotFound
	}
	movement, err := uc.movementRepo.GetByID(del.MovementID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}

	data := &DocketData{
		DocketNumber: del.DocketNumber,
		DeliveryDate: del.DeliveryDate,
		Quantity:     movement.Quantity.Abs(),
		UnitPrice:    movement.UnitPrice,
		Total:        movement.TotalRevenue,
		Destination:  del.Destination,
		Notes:        del.Notes,
	}

	if product, err := uc.productRepo.GetByID(movement.ProductID); err != nil {
		return nil, err
	} else if product != nil {
		data.ProductCode = product.Code
		data.ProductName = product.Name
	}
	if sp, err := uc.stockRepo.GetByID(movement.FromStockpileID); err != nil {
		return nil, err
	} else if sp != nil {
		data.Stockpile = sp.Name
	}
	if customer, err := uc.customerRepo.GetByID(del.CustomerID); err != nil {
		return nil, err
	} else if customer != nil {
		data.Customer = customer.Name
	}
	if del.CarrierID != "" {
		carrier, err := uc.carrierRepo.GetByID(del.CarrierID)
		if err != nil {
			return nil, err
		}
		if carrier != nil {
			data.Carrier = carrier.Name
		}
	}
	if del.DriverID != "" {
		driver, err := uc.driverRepo.GetByID(del.DriverID)
		if err != nil {
			return nil, err
		}
		if driver != nil {
			data.Driver = driver.Name
		}
	}
	if del.VehicleID != "" {
		vehicle, err := uc.vehicleRepo.GetByID(del.VehicleID)
		if err != nil {
			return nil, err
		}
		if vehicle != nil {
			data.VehiclePlate = vehicle.Plate
		}
	}
	return data, nil
}

func toDeliveryResponse(d *entity.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:           d.ID,
		MovementID:   d.MovementID,
		DocketNumber: d.DocketNumber,
		CustomerID:   d.CustomerID,
		CarrierID:    d.CarrierID,
		VehicleID:    d.VehicleID,
		DriverID:     d.DriverID,
		DeliveryDate: d.DeliveryDate,
		Destination:  d.Destination,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
	}
}
