package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ProductIdentifiers identificadores resueltos de un producto para una
// selección de atributos concreta.
type ProductIdentifiers struct {
	SKU                    string
	ManufacturerPartNumber string
	Gtin                   string
}

// ResolveIdentifiers resuelve SKU, MPN y GTIN. Con una selección de atributos
// y stock por combinaciones, los campos no vacíos de la combinación encontrada
// sustituyen a los del producto; cualquier campo vacío cae al valor del
// producto. Nunca devuelve vacío un campo que el producto tiene poblado.
func ResolveIdentifiers(product *entity.Product, attributesXML string, combinations CombinationFinder) (ProductIdentifiers, error) {
	if product == nil {
		return ProductIdentifiers{}, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}

	var ids ProductIdentifiers
	if attributesXML != "" && product.ManageInventory == entity.InventoryTrackByAttributes {
		if combinations == nil {
			return ProductIdentifiers{}, fmt.Errorf("%w: buscador de combinaciones requerido", domain.ErrInvalidInput)
		}
		combination, err := combinations.FindCombination(product, attributesXML)
		if err != nil {
			return ProductIdentifiers{}, fmt.Errorf("buscar combinación: %w", err)
		}
		if combination != nil {
			ids.SKU = combination.SKU
			ids.ManufacturerPartNumber = combination.ManufacturerPartNumber
			ids.Gtin = combination.Gtin
		}
	}

	if ids.SKU == "" {
		ids.SKU = product.SKU
	}
	if ids.ManufacturerPartNumber == "" {
		ids.ManufacturerPartNumber = product.ManufacturerPartNumber
	}
	if ids.Gtin == "" {
		ids.Gtin = product.Gtin
	}
	return ids, nil
}

// FormatSku devuelve el SKU resuelto para la selección de atributos.
func FormatSku(product *entity.Product, attributesXML string, combinations CombinationFinder) (string, error) {
	ids, err := ResolveIdentifiers(product, attributesXML, combinations)
	if err != nil {
		return "", err
	}
	return ids.SKU, nil
}

// FormatMpn devuelve el número de parte del fabricante resuelto.
func FormatMpn(product *entity.Product, attributesXML string, combinations CombinationFinder) (string, error) {
	ids, err := ResolveIdentifiers(product, attributesXML, combinations)
	if err != nil {
		return "", err
	}
	return ids.ManufacturerPartNumber, nil
}

// FormatGtin devuelve el GTIN resuelto.
func FormatGtin(product *entity.Product, attributesXML string, combinations CombinationFinder) (string, error) {
	ids, err := ResolveIdentifiers(product, attributesXML, combinations)
	if err != nil {
		return "", err
	}
	return ids.Gtin, nil
}
