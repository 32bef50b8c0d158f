package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/money"
)

func monedaCOP() *entity.Currency {
	return &entity.Currency{
		ID:           "cur-cop",
		Name:         "Peso colombiano",
		CurrencyCode: "COP",
		Rate:         decimal.NewFromInt(1),
		LanguageTag:  "es-CO",
	}
}

func TestFormatPrice_ConDecimales(t *testing.T) {
	f := money.NewFormatter("es-CO")

	got := f.FormatPrice(decimal.NewFromFloat(50000), monedaCOP(), false, true)
	assert.Contains(t, got, "50", "debería contener la parte entera")
	assert.Contains(t, got, "00", "debería conservar dos decimales")
}

func TestFormatPrice_SinDecimales(t *testing.T) {
	f := money.NewFormatter("es-CO")

	got := f.FormatPrice(decimal.NewFromFloat(1234.56), monedaCOP(), false, false)
	assert.NotContains(t, got, ",56", "sin decimales el monto debería redondearse")
	assert.NotContains(t, got, ".56")
}

func TestFormatPrice_ConSimboloDeMoneda(t *testing.T) {
	f := money.NewFormatter("es-CO")

	sinSimbolo := f.FormatPrice(decimal.NewFromInt(100), monedaCOP(), false, true)
	conSimbolo := f.FormatPrice(decimal.NewFromInt(100), monedaCOP(), true, true)
	assert.Greater(t, len(conSimbolo), len(sinSimbolo),
		"con símbolo la cadena debería ser más larga")
}

func TestFormatPrice_MonedaNilNoPanic(t *testing.T) {
	f := money.NewFormatter("es-CO")

	got := f.FormatPrice(decimal.NewFromInt(7), nil, true, true)
	assert.NotEmpty(t, got)
}

func TestConvertFromPrimary(t *testing.T) {
	c := money.NewCurrencyConverter()
	usd := &entity.Currency{CurrencyCode: "USD", Rate: decimal.NewFromFloat(0.00025)}

	got := c.ConvertFromPrimary(decimal.NewFromInt(100000), usd)
	assert.True(t, got.Equal(decimal.NewFromInt(25)), "100000 * 0.00025 = 25, se obtuvo %s", got)
}

func TestConvertFromPrimary_MonedaNil(t *testing.T) {
	c := money.NewCurrencyConverter()

	got := c.ConvertFromPrimary(decimal.NewFromInt(42), nil)
	assert.True(t, got.Equal(decimal.NewFromInt(42)), "sin moneda destino el monto no cambia")
}

// ──────────────────────────────────────────────
// Conversión de unidades de medida
// ──────────────────────────────────────────────

type fakeMeasureRepo struct {
	byID map[string]*entity.MeasureWeight
}

func (f *fakeMeasureRepo) GetByID(id string) (*entity.MeasureWeight, error) {
	return f.byID[id], nil
}

func TestConvertWeight_GramosAKilogramos(t *testing.T) {
	gramo := &entity.MeasureWeight{ID: "g", Name: "g", Ratio: decimal.NewFromInt(1000)}
	kilo := &entity.MeasureWeight{ID: "kg", Name: "kg", Ratio: decimal.NewFromInt(1)}
	m := money.NewMeasureConverter(&fakeMeasureRepo{})

	got := m.ConvertWeight(decimal.NewFromInt(500), gramo, kilo, false)
	require.True(t, got.Equal(decimal.NewFromFloat(0.5)), "500 g = 0.5 kg, se obtuvo %s", got)
}

func TestConvertWeight_MismaUnidad(t *testing.T) {
	gramo := &entity.MeasureWeight{ID: "g", Name: "g", Ratio: decimal.NewFromInt(1000)}
	m := money.NewMeasureConverter(&fakeMeasureRepo{})

	got := m.ConvertWeight(decimal.NewFromInt(500), gramo, gramo, false)
	assert.True(t, got.Equal(decimal.NewFromInt(500)))
}

func TestConvertWeight_Redondeo(t *testing.T) {
	libra := &entity.MeasureWeight{ID: "lb", Name: "lb", Ratio: decimal.NewFromFloat(2.20462)}
	kilo := &entity.MeasureWeight{ID: "kg", Name: "kg", Ratio: decimal.NewFromInt(1)}
	m := money.NewMeasureConverter(&fakeMeasureRepo{})

	got := m.ConvertWeight(decimal.NewFromInt(1), libra, kilo, true)
	assert.True(t, got.Equal(decimal.NewFromFloat(0.45)), "1 lb ≈ 0.45 kg, se obtuvo %s", got)
}

func TestMeasureWeightByID(t *testing.T) {
	kilo := &entity.MeasureWeight{ID: "kg", Name: "kg", Ratio: decimal.NewFromInt(1)}
	m := money.NewMeasureConverter(&fakeMeasureRepo{byID: map[string]*entity.MeasureWeight{"kg": kilo}})

	got, err := m.MeasureWeightByID("kg")
	require.NoError(t, err)
	assert.Equal(t, kilo, got)

	missing, err := m.MeasureWeightByID("nope")
	require.NoError(t, err)
	assert.Nil(t, missing, "unidad inexistente devuelve nil sin error")
}
