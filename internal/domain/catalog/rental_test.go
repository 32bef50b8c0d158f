package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func rentalProduct(period entity.RentalPricePeriod, length int) *entity.Product {
	return &entity.Product{
		ID:                "prod-1",
		IsRental:          true,
		RentalPricePeriod: period,
		RentalPriceLength: length,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRentalPeriods_ProductoNil(t *testing.T) {
	_, err := catalog.RentalPeriods(nil, date(2024, 1, 1), date(2024, 1, 2))
	assert.Error(t, err)
}

func TestRentalPeriods_NoAlquilable(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodDays, 3)
	p.IsRental = false

	periods, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 12, 31))
	require.NoError(t, err)
	assert.Equal(t, 1, periods, "producto no alquilable siempre cuenta como un período")
}

func TestRentalPeriods_RangoDegenerado(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodDays, 3)

	// Mismas fechas
	periods, err := catalog.RentalPeriods(p, date(2024, 1, 5), date(2024, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)

	// Fin antes del inicio: un período, nunca error
	periods, err = catalog.RentalPeriods(p, date(2024, 1, 10), date(2024, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)
}

// 3 días por período, 2024-01-01 → 2024-01-10 = 9 días
// transcurridos = ceil(9/3) = 3 períodos.
func TestRentalPeriods_DiasEjemplo(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodDays, 3)

	periods, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 1, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, periods)
}

func TestRentalPeriods_DiasRedondeaHaciaArriba(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodDays, 7)

	periods, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 1, 9))
	require.NoError(t, err)
	assert.Equal(t, 2, periods, "8 días en períodos de 7 = 2 períodos")
}

func TestRentalPeriods_Semanas(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodWeeks, 2)

	// 15 días en períodos de 14 = 2
	periods, err := catalog.RentalPeriods(p, date(2024, 3, 1), date(2024, 3, 16))
	require.NoError(t, err)
	assert.Equal(t, 2, periods)

	// 14 días exactos = 1
	periods, err = catalog.RentalPeriods(p, date(2024, 3, 1), date(2024, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)
}

func TestRentalPeriods_MesesCalendario(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodMonths, 1)

	// Mes calendario exacto
	periods, err := catalog.RentalPeriods(p, date(2024, 1, 15), date(2024, 2, 15))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)

	// Mes y algunos días: el resto cuenta como mes adicional
	periods, err = catalog.RentalPeriods(p, date(2024, 1, 15), date(2024, 2, 20))
	require.NoError(t, err)
	assert.Equal(t, 2, periods)

	// Menos de un mes dentro del mismo mes
	periods, err = catalog.RentalPeriods(p, date(2024, 1, 5), date(2024, 1, 20))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)
}

// Inicios a fin de mes: sumar un mes calendario fija el día al último del mes
// destino (31 ago → 30 sep, 31 ene → 28/29 feb) en vez de desbordar al mes
// siguiente. Horas sueltas después de esa fecha cuentan como mes adicional.
func TestRentalPeriods_MesesFinDeMes(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodMonths, 1)

	// 31 ago → 30 sep 18:00: un mes (hasta el 30 sep) más un resto parcial
	periods, err := catalog.RentalPeriods(p,
		date(2024, 8, 31), time.Date(2024, 9, 30, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, periods, "el resto tras el fin de mes cuenta como mes adicional")

	// 31 ago → 30 sep exacto: un solo mes
	periods, err = catalog.RentalPeriods(p, date(2024, 8, 31), date(2024, 9, 30))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)

	// 31 ene → 29 feb (bisiesto): exacto = 1; con horas de más = 2
	periods, err = catalog.RentalPeriods(p, date(2024, 1, 31), date(2024, 2, 29))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)

	periods, err = catalog.RentalPeriods(p,
		date(2024, 1, 31), time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, periods)

	// 29 ene → 28 feb (no bisiesto): exacto = 1; con horas de más = 2
	periods, err = catalog.RentalPeriods(p, date(2023, 1, 29), date(2023, 2, 28))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)

	periods, err = catalog.RentalPeriods(p,
		date(2023, 1, 29), time.Date(2023, 2, 28, 6, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, periods)

	// 30 abr → 30 may: el día existe en el mes destino, sin clamping
	periods, err = catalog.RentalPeriods(p, date(2024, 4, 30), date(2024, 5, 30))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)
}

func TestRentalPeriods_MesesConLongitudMayor(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodMonths, 3)

	// 4 meses en períodos de 3 = 2
	periods, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 5, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, periods)
}

func TestRentalPeriods_Anios(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodYears, 1)

	// 366 días en períodos de 365 = 2
	periods, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2025, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, periods, "2024 es bisiesto: 366 días exceden el período de 365")

	periods, err = catalog.RentalPeriods(p, date(2023, 1, 1), date(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, 1, periods)
}

func TestRentalPeriods_ConfiguracionInvalida(t *testing.T) {
	p := rentalProduct(entity.RentalPricePeriod(99), 3)
	_, err := catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 1, 10))
	assert.ErrorIs(t, err, domain.ErrConfiguracion,
		"una unidad de período desconocida es un error fatal de configuración")

	p = rentalProduct(entity.RentalPeriodDays, 0)
	_, err = catalog.RentalPeriods(p, date(2024, 1, 1), date(2024, 1, 10))
	assert.ErrorIs(t, err, domain.ErrConfiguracion,
		"una longitud de período no positiva es un error de configuración")
}

func TestFormatRentalDate(t *testing.T) {
	p := rentalProduct(entity.RentalPeriodDays, 1)

	s, err := catalog.FormatRentalDate(p, date(2024, 7, 4))
	require.NoError(t, err)
	assert.Equal(t, "2024-07-04", s)

	p.IsRental = false
	s, err = catalog.FormatRentalDate(p, date(2024, 7, 4))
	require.NoError(t, err)
	assert.Empty(t, s, "producto no alquilable no tiene fecha de alquiler")
}
