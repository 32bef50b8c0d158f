package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// AvailabilityUseCase resuelve la disponibilidad de un producto para una
// selección de atributos: mensaje de stock, cantidad total, identificadores
// (SKU/MPN/GTIN) y cantidades permitidas.
type AvailabilityUseCase struct {
	productRepo  repository.ProductRepository
	resources    domaincatalog.ResourceLookup
	combinations domaincatalog.CombinationFinder
	ranges       domaincatalog.AvailabilityRangeLookup
}

// NewAvailabilityUseCase construye el caso de uso.
func NewAvailabilityUseCase(
	productRepo repository.ProductRepository,
	resources domaincatalog.ResourceLookup,
	combinations domaincatalog.CombinationFinder,
	ranges domaincatalog.AvailabilityRangeLookup,
) *AvailabilityUseCase {
	return &AvailabilityUseCase{
		productRepo:  productRepo,
		resources:    resources,
		combinations: combinations,
		ranges:       ranges,
	}
}

// GetAvailability carga el producto y ejecuta el resolver. Devuelve nil si el
// producto no existe.
func (uc *AvailabilityUseCase) GetAvailability(productID string, in dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("cargar producto: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	message, err := domaincatalog.StockMessage(product, in.AttributesXML, uc.resources, uc.combinations, uc.ranges)
	if err != nil {
		return nil, err
	}

	quantity, err := domaincatalog.TotalStockQuantity(product, true, in.WarehouseID)
	if err != nil {
		return nil, err
	}

	ids, err := domaincatalog.ResolveIdentifiers(product, in.AttributesXML, uc.combinations)
	if err != nil {
		return nil, err
	}

	allowed, err := domaincatalog.ParseAllowedQuantities(product)
	if err != nil {
		return nil, err
	}

	return &dto.AvailabilityResponse{
		ProductID:              product.ID,
		StockMessage:           message,
		StockQuantity:          quantity,
		SKU:                    ids.SKU,
		ManufacturerPartNumber: ids.ManufacturerPartNumber,
		Gtin:                   ids.Gtin,
		AllowedQuantities:      allowed,
	}, nil
}
