package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ParseAllowedQuantities interpreta la lista de cantidades permitidas del
// producto ("1,5,10"). Entradas no numéricas se descartan en silencio.
func ParseAllowedQuantities(product *entity.Product) ([]int, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	raw := strings.TrimSpace(product.AllowedQuantities)
	if raw == "" {
		return nil, nil
	}
	var result []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		qty, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		result = append(result, qty)
	}
	return result, nil
}

// ProductTagExists indica si el producto tiene la etiqueta dada.
func ProductTagExists(product *entity.Product, tagID string) (bool, error) {
	if product == nil {
		return false, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	for _, tag := range product.Tags {
		if tag != nil && tag.ID == tagID {
			return true, nil
		}
	}
	return false, nil
}

// FindRelatedProduct busca un vínculo de productos relacionados por el par de IDs.
func FindRelatedProduct(source []*entity.RelatedProduct, productID1, productID2 string) *entity.RelatedProduct {
	for _, rp := range source {
		if rp != nil && rp.ProductID1 == productID1 && rp.ProductID2 == productID2 {
			return rp
		}
	}
	return nil
}

// FindCrossSellProduct busca un vínculo de venta cruzada por el par de IDs.
func FindCrossSellProduct(source []*entity.CrossSellProduct, productID1, productID2 string) *entity.CrossSellProduct {
	for _, cs := range source {
		if cs != nil && cs.ProductID1 == productID1 && cs.ProductID2 == productID2 {
			return cs
		}
	}
	return nil
}
