package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/specialdk/rac-inventory-sub000/internal/application/dto"
	"github.com/specialdk/rac-inventory-sub000/internal/domain"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/entity"
	"github.com/specialdk/rac-inventory-sub000/internal/domain/repository"
)

// StockpileUseCase casos de uso CRUD para acopios.
type StockpileUseCase struct {
	repo repository.StockpileRepository
}

// NewStockpileUseCase construye el caso de uso.
func NewStockpileUseCase(repo repository.StockpileRepository) *StockpileUseCase {
	return &StockpileUseCase{repo: repo}
}

// Create crea un acopio nuevo; el código es único.
func (uc *StockpileUseCase) Create(in dto.CreateStockpileRequest) (*dto.StockpileResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Capacity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sp := &entity.Stockpile{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		Capacity:    in.Capacity,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(sp); err != nil {
		return nil, err
	}
	return toStockpileResponse(sp), nil
}

// GetByID obtiene un acopio por ID.
func (uc *StockpileUseCase) GetByID(id string) (*dto.StockpileResponse, error) {
	sp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, nil
	}
	return toStockpileResponse(sp), nil
}

// Update actualiza los campos editables de un acopio (no el código).
func (uc *StockpileUseCase) Update(id string, in dto.UpdateStockpileRequest) (*dto.StockpileResponse, error) {
	sp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sp == nil {
		return nil, nil
	}
	if in.Name != nil {
		sp.Name = *in.Name
	}
	if in.Description != nil {
		sp.Description = *in.Description
	}
	if in.Capacity != nil {
		if in.Capacity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		sp.Capacity = *in.Capacity
	}
	if in.Active != nil {
		sp.Active = *in.Active
	}
	sp.UpdatedAt = time.Now()
	if err := uc.repo.Update(sp); err != nil {
		return nil, err
	}
	return toStockpileResponse(sp), nil
}

// List lista acopios con paginación.
func (uc *StockpileUseCase) List(limit, offset int) (*dto.StockpileListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockpileResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, *toStockpileResponse(sp))
	}
	return &dto.StockpileListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un acopio por ID.
func (uc *StockpileUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toStockpileResponse(sp *entity.Stockpile) *dto.StockpileResponse {
	if sp == nil {
		return nil
	}
	return &dto.StockpileResponse{
		ID:          sp.ID,
		Code:        sp.Code,
		Name:        sp.Name,
		Description: sp.Description,
		Capacity:    sp.Capacity,
		Active:      sp.Active,
		CreatedAt:   sp.CreatedAt,
		UpdatedAt:   sp.UpdatedAt,
	}
}
