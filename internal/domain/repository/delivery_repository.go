package repository

import "github.com/specialdk/rac-inventory-sub000/internal/domain/entity"

// DeliveryRepository define el puerto de persistencia para despachos (guías).
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	GetByDocketNumber(docketNumber string) (*entity.Delivery, error)
	List(limit, offset int) ([]*entity.Delivery, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.Delivery, error)
}

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
