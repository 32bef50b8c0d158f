package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// BasePrice formatea el precio base (precio por unidad de referencia, ej.
// $/kg) del producto en la moneda de trabajo del caller.
//
// Devuelve cadena vacía, sin error, cuando el precio base está deshabilitado,
// la cantidad configurada es cero o alguna unidad de medida no puede
// resolverse: el precio base es un dato de presentación opcional.
// explicitPrice nil usa el precio propio del producto.
func BasePrice(
	product *entity.Product,
	explicitPrice *decimal.Decimal,
	resources ResourceLookup,
	measures MeasureConverter,
	currencies CurrencyConverter,
	workingCurrency *entity.Currency,
	formatter PriceFormatter,
) (string, error) {
	if product == nil {
		return "", fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if resources == nil || measures == nil || currencies == nil || formatter == nil || workingCurrency == nil {
		return "", fmt.Errorf("%w: colaboradores de precio base requeridos", domain.ErrInvalidInput)
	}

	if !product.BasepriceEnabled {
		return "", nil
	}
	productAmount := product.BasepriceAmount
	if productAmount.IsZero() {
		return "", nil
	}
	referenceAmount := product.BasepriceBaseAmount

	productUnit, err := measures.MeasureWeightByID(product.BasepriceUnitID)
	if err != nil {
		return "", fmt.Errorf("buscar unidad del producto: %w", err)
	}
	if productUnit == nil {
		return "", nil
	}
	referenceUnit, err := measures.MeasureWeightByID(product.BasepriceBaseUnitID)
	if err != nil {
		return "", fmt.Errorf("buscar unidad de referencia: %w", err)
	}
	if referenceUnit == nil {
		return "", nil
	}

	price := product.Price
	if explicitPrice != nil {
		price = *explicitPrice
	}

	// Sin redondeo intermedio: redondear aquí distorsiona el precio unitario
	amountInReference := measures.ConvertWeight(productAmount, productUnit, referenceUnit, false)
	if amountInReference.IsZero() {
		return "", fmt.Errorf("%w: conversión de unidad con resultado cero", domain.ErrConfiguracion)
	}

	basePrice := price.Div(amountInReference).Mul(referenceAmount)
	basePriceInCurrency := currencies.ConvertFromPrimary(basePrice, workingCurrency)
	basePriceStr := formatter.FormatPrice(basePriceInCurrency, workingCurrency, true, false)

	return fmt.Sprintf(resources.Resource(ResBasePrice),
		basePriceStr, trimTrailingZeros(referenceAmount), referenceUnit.Name), nil
}

// trimTrailingZeros representación decimal sin ceros finales (1000.00 -> 1000).
func trimTrailingZeros(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
