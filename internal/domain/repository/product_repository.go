package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve el producto con sus colecciones (precios por volumen,
// etiquetas, existencias por bodega, vínculos) cargadas como snapshot.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByStoreAndSKU(storeID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByStore(storeID string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
