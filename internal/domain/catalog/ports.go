// Package catalog contiene las reglas de negocio puras de precios y
// disponibilidad de productos: selección de precio por volumen, mensaje de
// stock, stock total multi-bodega, resolución de SKU/MPN/GTIN, períodos de
// alquiler y precio base por unidad de medida.
//
// Todas las funciones son puras respecto a sus entradas más lecturas a través
// de los puertos de este archivo; no hay estado mutable compartido, por lo que
// pueden invocarse concurrentemente sin coordinación.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ResourceLookup resuelve plantillas de mensajes por clave (localización).
// Una clave desconocida debe devolver una plantilla utilizable, nunca vacío.
type ResourceLookup interface {
	Resource(key string) string
}

// CombinationFinder busca la combinación de atributos de un producto que
// corresponde a una selección serializada en XML. Devuelve nil si ninguna
// combinación registrada coincide.
type CombinationFinder interface {
	FindCombination(product *entity.Product, attributesXML string) (*entity.AttributeCombination, error)
}

// AvailabilityRangeLookup resuelve un rango de disponibilidad por ID.
// Devuelve nil si el rango no existe (sin rango configurado).
type AvailabilityRangeLookup interface {
	AvailabilityRangeByID(id string) (*entity.AvailabilityRange, error)
}

// MeasureConverter resuelve unidades de medida y convierte cantidades entre ellas.
type MeasureConverter interface {
	MeasureWeightByID(id string) (*entity.MeasureWeight, error)
	// ConvertWeight convierte amount de la unidad from a la unidad to.
	// Con round=false no se redondea ningún paso intermedio.
	ConvertWeight(amount decimal.Decimal, from, to *entity.MeasureWeight, round bool) decimal.Decimal
}

// CurrencyConverter convierte montos desde la moneda primaria de la tienda.
type CurrencyConverter interface {
	ConvertFromPrimary(amount decimal.Decimal, target *entity.Currency) decimal.Decimal
}

// PriceFormatter produce la representación localizada de un precio.
type PriceFormatter interface {
	FormatPrice(amount decimal.Decimal, currency *entity.Currency, showCurrency, showDecimals bool) string
}
