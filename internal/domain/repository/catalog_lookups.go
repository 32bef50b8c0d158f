package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// AvailabilityRangeRepository puerto de lectura de rangos de disponibilidad.
// GetByID devuelve nil (sin error) cuando el rango no existe.
type AvailabilityRangeRepository interface {
	GetByID(id string) (*entity.AvailabilityRange, error)
}

// MeasureRepository puerto de lectura de unidades de medida.
// GetByID devuelve nil (sin error) cuando la unidad no existe.
type MeasureRepository interface {
	GetByID(id string) (*entity.MeasureWeight, error)
}

// CurrencyRepository puerto de lectura de monedas.
type CurrencyRepository interface {
	GetByCode(code string) (*entity.Currency, error)
	Primary() (*entity.Currency, error)
}

// ResourceRepository puerto de lectura de recursos de mensajes localizados.
// GetByKey devuelve cadena vacía (sin error) cuando la clave no existe; el
// adaptador de localización aplica entonces su plantilla por defecto.
type ResourceRepository interface {
	GetByKey(key string) (string, error)
}

// CustomerRepository puerto de lectura de clientes con sus roles.
type CustomerRepository interface {
	GetByID(id string) (*entity.Customer, error)
}
