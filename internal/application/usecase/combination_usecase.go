package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CombinationUseCase administra las combinaciones de atributos de un producto.
type CombinationUseCase struct {
	productRepo     repository.ProductRepository
	combinationRepo repository.CombinationRepository
}

func NewCombinationUseCase(productRepo repository.ProductRepository, combinationRepo repository.CombinationRepository) *CombinationUseCase {
	return &CombinationUseCase{productRepo: productRepo, combinationRepo: combinationRepo}
}

// Create registra una combinación para el producto. Devuelve nil si el
// producto no existe.
func (uc *CombinationUseCase) Create(productID string, in dto.CombinationRequest) (*dto.CombinationResponse, error) {
	if in.AttributesXML == "" {
		return nil, fmt.Errorf("%w: attributes_xml es requerido", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("cargar producto: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	combination := &entity.AttributeCombination{
		ID:                     uuid.NewString(),
		ProductID:              product.ID,
		AttributesXML:          in.AttributesXML,
		StockQuantity:          in.StockQuantity,
		AllowOutOfStockOrders:  in.AllowOutOfStockOrders,
		SKU:                    in.SKU,
		ManufacturerPartNumber: in.ManufacturerPartNumber,
		Gtin:                   in.Gtin,
	}
	if err := uc.combinationRepo.Create(combination); err != nil {
		return nil, err
	}
	return toCombinationResponse(combination), nil
}

// List devuelve las combinaciones registradas del producto.
func (uc *CombinationUseCase) List(productID string) ([]dto.CombinationResponse, error) {
	list, err := uc.combinationRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CombinationResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCombinationResponse(c))
	}
	return out, nil
}

func toCombinationResponse(c *entity.AttributeCombination) *dto.CombinationResponse {
	return &dto.CombinationResponse{
		ID:                     c.ID,
		ProductID:              c.ProductID,
		AttributesXML:          c.AttributesXML,
		StockQuantity:          c.StockQuantity,
		AllowOutOfStockOrders:  c.AllowOutOfStockOrders,
		SKU:                    c.SKU,
		ManufacturerPartNumber: c.ManufacturerPartNumber,
		Gtin:                   c.Gtin,
	}
}
