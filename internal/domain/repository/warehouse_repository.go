package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// WarehouseRepository puerto de persistencia para bodegas.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	ListByStore(storeID string) ([]*entity.Warehouse, error)
}
