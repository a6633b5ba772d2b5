package repository

import "github.com/specialdk/rac-inventory-sub000/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	List(limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}

// CarrierRepository define el puerto de persistencia para transportadoras.
type CarrierRepository interface {
	Create(carrier *entity.Carrier) error
	GetByID(id string) (*entity.Carrier, error)
	Update(carrier *entity.Carrier) error
	List(limit, offset int) ([]*entity.Carrier, error)
	Delete(id string) error
}

// DriverRepository define el puerto de persistencia para conductores.
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	Update(driver *entity.Driver) error
	List(limit, offset int) ([]*entity.Driver, error)
	ListByCarrier(carrierID string) ([]*entity.Driver, error)
	Delete(id string) error
}

// VehicleRepository define el puerto de persistencia para vehículos.
type VehicleRepository interface {
	Create(vehicle *entity.Vehicle) error
	GetByID(id string) (*entity.Vehicle, error)
	GetByPlate(plate string) (*entity.Vehicle, error)
	Update(vehicle *entity.Vehicle) error
	List(limit, offset int) ([]*entity.Vehicle, error)
	ListByCarrier(carrierID string) ([]*entity.Vehicle, error)
	Delete(id string) error
}
