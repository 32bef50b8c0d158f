package catalog_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba para los puertos del resolver. Las plantillas devuelven la
// clave con marcadores para poder afirmar sobre la sustitución sin depender
// de textos de un idioma.
// ──────────────────────────────────────────────────────────────────────────────

type fakeResources struct{}

func (fakeResources) Resource(key string) string {
	switch key {
	case catalog.ResInStockWithQuantity:
		return "in_stock qty=%d"
	case catalog.ResAvailabilityRange:
		return "available_from range=%s"
	case catalog.ResBackorderingWithDate:
		return "backordering range=%s"
	case catalog.ResBasePrice:
		return "base_price %s por %s %s"
	default:
		return key
	}
}

// fakeCombinations devuelve siempre la misma combinación (o nil) y registra
// el XML con el que fue invocado.
type fakeCombinations struct {
	combination *entity.AttributeCombination
	err         error
	lastXML     string
}

func (f *fakeCombinations) FindCombination(_ *entity.Product, attributesXML string) (*entity.AttributeCombination, error) {
	f.lastXML = attributesXML
	return f.combination, f.err
}

// fakeRanges resuelve rangos de disponibilidad desde un mapa.
type fakeRanges struct {
	ranges map[string]*entity.AvailabilityRange
}

func (f *fakeRanges) AvailabilityRangeByID(id string) (*entity.AvailabilityRange, error) {
	if f == nil || f.ranges == nil {
		return nil, nil
	}
	return f.ranges[id], nil
}

// fakeMeasures convierte por relación de ratios, como el adaptador real.
type fakeMeasures struct {
	units map[string]*entity.MeasureWeight
}

func (f *fakeMeasures) MeasureWeightByID(id string) (*entity.MeasureWeight, error) {
	return f.units[id], nil
}

func (f *fakeMeasures) ConvertWeight(amount decimal.Decimal, from, to *entity.MeasureWeight, _ bool) decimal.Decimal {
	return amount.Div(from.Ratio).Mul(to.Ratio)
}

// fakeCurrencies multiplica por la tasa de la moneda destino.
type fakeCurrencies struct{}

func (fakeCurrencies) ConvertFromPrimary(amount decimal.Decimal, target *entity.Currency) decimal.Decimal {
	return amount.Mul(target.Rate)
}

// fakeFormatter concatena código de moneda y monto con dos decimales.
type fakeFormatter struct{}

func (fakeFormatter) FormatPrice(amount decimal.Decimal, currency *entity.Currency, _, _ bool) string {
	return currency.CurrencyCode + " " + amount.StringFixed(2)
}
