package repository

import "github.com/specialdk/rac-inventory-sub000/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}

// StockpileRepository define el puerto de persistencia para acopios.
type StockpileRepository interface {
	Create(stockpile *entity.Stockpile) error
	GetByID(id string) (*entity.Stockpile, error)
	GetByCode(code string) (*entity.Stockpile, error)
	Update(stockpile *entity.Stockpile) error
	List(limit, offset int) ([]*entity.Stockpile, error)
	Delete(id string) error
}
