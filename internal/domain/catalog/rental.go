package catalog

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// RentalPeriods calcula el número de períodos de alquiler entre dos fechas
// (relación de precio). Siempre >= 1: productos no alquilables y rangos
// degenerados (inicio >= fin) cuentan como un período, nunca son error.
// Una unidad de período desconocida o una longitud no positiva es un error
// de configuración del catálogo (ErrConfiguracion).
func RentalPeriods(product *entity.Product, startDate, endDate time.Time) (int, error) {
	if product == nil {
		return 0, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !product.IsRental {
		return 1, nil
	}
	if !endDate.After(startDate) {
		return 1, nil
	}
	if product.RentalPriceLength <= 0 {
		return 0, fmt.Errorf("%w: longitud de período de alquiler %d", domain.ErrConfiguracion, product.RentalPriceLength)
	}

	switch product.RentalPricePeriod {
	case entity.RentalPeriodDays:
		return periodsByDays(startDate, endDate, product.RentalPriceLength), nil
	case entity.RentalPeriodWeeks:
		return periodsByDays(startDate, endDate, 7*product.RentalPriceLength), nil
	case entity.RentalPeriodYears:
		return periodsByDays(startDate, endDate, 365*product.RentalPriceLength), nil
	case entity.RentalPeriodMonths:
		// Diferencia en meses calendario; los días sueltos cuentan como mes extra
		totalMonths := (endDate.Year()-startDate.Year())*12 + int(endDate.Month()) - int(startDate.Month())
		if addMonthsClamped(startDate, totalMonths).Before(endDate) {
			totalMonths++
		}
		periods := (totalMonths + product.RentalPriceLength - 1) / product.RentalPriceLength
		if periods < 1 {
			periods = 1
		}
		return periods, nil
	default:
		return 0, fmt.Errorf("%w: período de alquiler no soportado %d", domain.ErrConfiguracion, product.RentalPricePeriod)
	}
}

// addMonthsClamped suma meses calendario fijando el día al último del mes
// resultante cuando el día original no existe en él (31 ene + 1 mes = 28/29
// feb, 31 ago + 1 mes = 30 sep). time.AddDate normaliza el desborde hacia el
// mes siguiente, lo que adelantaría la fecha y ocultaría un mes parcial.
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := year*12 + int(month) - 1 + months
	targetYear, targetMonth := total/12, time.Month(total%12+1)
	lastDay := time.Date(targetYear, targetMonth+1, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}
	h, m, s := t.Clock()
	return time.Date(targetYear, targetMonth, day, h, m, s, t.Nanosecond(), t.Location())
}

// periodsByDays días transcurridos (mínimo 1) divididos por la longitud del
// período en días, redondeando hacia arriba.
func periodsByDays(startDate, endDate time.Time, periodDays int) int {
	totalDays := endDate.Sub(startDate).Hours() / 24
	if totalDays < 1 {
		totalDays = 1
	}
	return int(math.Ceil(totalDays / float64(periodDays)))
}

// FormatRentalDate formatea una fecha de inicio/fin de alquiler.
// Devuelve vacío para productos no alquilables.
func FormatRentalDate(product *entity.Product, date time.Time) (string, error) {
	if product == nil {
		return "", fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !product.IsRental {
		return "", nil
	}
	return date.Format("2006-01-02"), nil
}
