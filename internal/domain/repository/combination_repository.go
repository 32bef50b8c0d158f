package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CombinationRepository puerto de persistencia para combinaciones de atributos.
type CombinationRepository interface {
	ListByProduct(productID string) ([]*entity.AttributeCombination, error)
	Create(combination *entity.AttributeCombination) error
}
