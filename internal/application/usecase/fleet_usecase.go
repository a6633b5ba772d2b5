package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// CarrierUseCase casos de uso CRUD para transportadoras.
type CarrierUseCase struct {
	repo repository.CarrierRepository
}

func NewCarrierUseCase(repo repository.CarrierRepository) *CarrierUseCase {
	return &CarrierUseCase{repo: repo}
}

func (uc *CarrierUseCase) Create(in dto.CreateCarrierRequest) (*dto.CarrierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	carrier := &entity.Carrier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(carrier); err != nil {
		return nil, err
	}
	return toCarrierResponse(carrier), nil
}

func (uc *CarrierUseCase) GetByID(id string) (*dto.CarrierResponse, error) {
	carrier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if carrier == nil {
		return nil, nil
	}
	return toCarrierResponse(carrier), nil
}

func (uc *CarrierUseCase) List(limit, offset int) ([]dto.CarrierResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CarrierResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCarrierResponse(c))
	}
	return items, nil
}

func (uc *CarrierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCarrierResponse(c *entity.Carrier) *dto.CarrierResponse {
	return &dto.CarrierResponse{
		ID:        c.ID,
		Name:      c.Name,
		TaxID:     c.TaxID,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// DriverUseCase casos de uso CRUD para conductores.
type DriverUseCase struct {
	repo        repository.DriverRepository
	carrierRepo repository.CarrierRepository
}

func NewDriverUseCase(repo repository.DriverRepository, carrierRepo repository.CarrierRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo, carrierRepo: carrierRepo}
}

func (uc *DriverUseCase) Create(in dto.CreateDriverRequest) (*dto.DriverResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CarrierID != "" {
		carrier, err := uc.carrierRepo.GetByID(in.CarrierID)
		if err != nil {
			return nil, err
		}
		if carrier == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	driver := &entity.Driver{
		ID:            uuid.New().String(),
		CarrierID:     in.CarrierID,
		Name:          in.Name,
		LicenseNumber: in.LicenseNumber,
		Phone:         in.Phone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

func (uc *DriverUseCase) GetByID(id string) (*dto.DriverResponse, error) {
	driver, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, nil
	}
	return toDriverResponse(driver), nil
}

// List lista conductores; si carrierID no es vacío filtra por transportadora.
func (uc *DriverUseCase) List(carrierID string, limit, offset int) ([]dto.DriverResponse, error) {
	var (
		list []*entity.Driver
		err  error
	)
	if carrierID != "" {
		list, err = uc.repo.ListByCarrier(carrierID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.DriverResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDriverResponse(d))
	}
	return items, nil
}

func (uc *DriverUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toDriverResponse(d *entity.Driver) *dto.DriverResponse {
	return &dto.DriverResponse{
		ID:            d.ID,
		CarrierID:     d.CarrierID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Phone:         d.Phone,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// VehicleUseCase casos de uso CRUD para vehículos.
type VehicleUseCase struct {
	repo        repository.VehicleRepository
	carrierRepo repository.CarrierRepository
}

func NewVehicleUseCase(repo repository.VehicleRepository, carrierRepo repository.CarrierRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, carrierRepo: carrierRepo}
}

func (uc *VehicleUseCase) Create(in dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	if in.Plate == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Capacity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByPlate(in.Plate)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.CarrierID != "" {
		carrier, err := uc.carrierRepo.GetByID(in.CarrierID)
		if err != nil {
			return nil, err
		}
		if carrier == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	vehicle := &entity.Vehicle{
		ID:          uuid.New().String(),
		CarrierID:   in.CarrierID,
		Plate:       in.Plate,
		Description: in.Description,
		Capacity:    in.Capacity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(vehicle); err != nil {
		return nil, err
	}
	return toVehicleResponse(vehicle), nil
}

func (uc *VehicleUseCase) GetByID(id string) (*dto.VehicleResponse, error) {
	vehicle, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, nil
	}
	return toVehicleResponse(vehicle), nil
}

// List lista vehículos; si carrierID no es vacío filtra por transportadora.
func (uc *VehicleUseCase) List(carrierID string, limit, offset int) ([]dto.VehicleResponse, error) {
	var (
		list []*entity.Vehicle
		err  error
	)
	if carrierID != "" {
		list, err = uc.repo.ListByCarrier(carrierID)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehicleResponse, 0, len(list))
	for _, v := range list {
		items = append(items, *toVehicleResponse(v))
	}
	return items, nil
}

func (uc *VehicleUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toVehicleResponse(v *entity.Vehicle) *dto.VehicleResponse {
	return &dto.VehicleResponse{
		ID:          v.ID,
		CarrierID:   v.CarrierID,
		Plate:       v.Plate,
		Description: v.Description,
		Capacity:    v.Capacity,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
