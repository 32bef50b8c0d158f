package money

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ catalog.CurrencyConverter = (*CurrencyConverter)(nil)

// CurrencyConverter convierte montos desde la moneda primaria aplicando la
// tasa de la moneda destino.
type CurrencyConverter struct{}

func NewCurrencyConverter() *CurrencyConverter {
	return &CurrencyConverter{}
}

func (c *CurrencyConverter) ConvertFromPrimary(amount decimal.Decimal, target *entity.Currency) decimal.Decimal {
	if target == nil || target.Rate.IsZero() {
		return amount
	}
	return amount.Mul(target.Rate)
}

var _ catalog.MeasureConverter = (*MeasureConverter)(nil)

// MeasureConverter convierte cantidades entre unidades de medida usando el
// ratio de cada unidad respecto a la unidad primaria del sistema.
type MeasureConverter struct {
	measures repository.MeasureRepository
}

func NewMeasureConverter(measures repository.MeasureRepository) *MeasureConverter {
	return &MeasureConverter{measures: measures}
}

func (m *MeasureConverter) MeasureWeightByID(id string) (*entity.MeasureWeight, error) {
	return m.measures.GetByID(id)
}

// ConvertWeight pasa amount a la unidad primaria (división por el ratio de
// origen) y luego a la unidad destino (multiplicación por su ratio).
func (m *MeasureConverter) ConvertWeight(amount decimal.Decimal, from, to *entity.MeasureWeight, round bool) decimal.Decimal {
	if from == nil || to == nil || from.Ratio.IsZero() {
		return amount
	}
	result := amount.Div(from.Ratio).Mul(to.Ratio)
	if round {
		result = result.Round(2)
	}
	return result
}
