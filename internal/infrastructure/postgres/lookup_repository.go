package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Adaptadores de solo lectura para los catálogos auxiliares del resolver:
// rangos de disponibilidad, unidades de medida, monedas y recursos de mensajes.

var _ repository.AvailabilityRangeRepository = (*AvailabilityRangeRepo)(nil)

type AvailabilityRangeRepo struct {
	q Querier
}

func NewAvailabilityRangeRepository(q Querier) *AvailabilityRangeRepo {
	return &AvailabilityRangeRepo{q: q}
}

func (r *AvailabilityRangeRepo) GetByID(id string) (*entity.AvailabilityRange, error) {
	var ar entity.AvailabilityRange
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name FROM availability_ranges WHERE id = $1`, id).
		Scan(&ar.ID, &ar.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get availability range: %w", err)
	}
	return &ar, nil
}

var _ repository.MeasureRepository = (*MeasureRepo)(nil)

type MeasureRepo struct {
	q Querier
}

func NewMeasureRepository(q Querier) *MeasureRepo {
	return &MeasureRepo{q: q}
}

func (r *MeasureRepo) GetByID(id string) (*entity.MeasureWeight, error) {
	var m entity.MeasureWeight
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, keyword, ratio FROM measure_weights WHERE id = $1`, id).
		Scan(&m.ID, &m.Name, &m.Keyword, &m.Ratio)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get measure weight: %w", err)
	}
	return &m, nil
}

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

type CurrencyRepo struct {
	q Querier
}

func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

func (r *CurrencyRepo) GetByCode(code string) (*entity.Currency, error) {
	return r.scanCurrency(r.q.QueryRow(context.Background(), `
		SELECT id, name, currency_code, rate, language_tag
		FROM currencies WHERE currency_code = $1`, code))
}

// Primary devuelve la moneda primaria de la tienda (tasa 1).
func (r *CurrencyRepo) Primary() (*entity.Currency, error) {
	return r.scanCurrency(r.q.QueryRow(context.Background(), `
		SELECT id, name, currency_code, rate, language_tag
		FROM currencies WHERE is_primary`))
}

func (r *CurrencyRepo) scanCurrency(row pgx.Row) (*entity.Currency, error) {
	var c entity.Currency
	err := row.Scan(&c.ID, &c.Name, &c.CurrencyCode, &c.Rate, &c.LanguageTag)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return &c, nil
}

var _ repository.ResourceRepository = (*ResourceRepo)(nil)

type ResourceRepo struct {
	q Querier
}

func NewResourceRepository(q Querier) *ResourceRepo {
	return &ResourceRepo{q: q}
}

// GetByKey devuelve la plantilla del recurso o cadena vacía si no existe.
func (r *ResourceRepo) GetByKey(key string) (string, error) {
	var value string
	err := r.q.QueryRow(context.Background(),
		`SELECT value FROM locale_resources WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get resource: %w", err)
	}
	return value, nil
}
