// Package localization resuelve las plantillas de mensajes del catálogo.
// Las plantillas se leen del repositorio de recursos; cuando una clave no
// está registrada se usa la plantilla en español por defecto.
package localization

import (
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// plantillas por defecto; los verbos coinciden con los valores que sustituye
// el resolver (cantidad %d, nombre de rango o fecha %s).
var defaultTemplates = map[string]string{
	catalog.ResInStock:              "En stock",
	catalog.ResInStockWithQuantity:  "En stock: %d unidades",
	catalog.ResOutOfStock:           "Agotado",
	catalog.ResAvailabilityRange:    "Disponible en %s",
	catalog.ResBackordering:         "Disponible bajo pedido",
	catalog.ResBackorderingWithDate: "Disponible bajo pedido a partir de %s",
	catalog.ResBasePrice:            "%s por %s %s",
}

var _ catalog.ResourceLookup = (*Resources)(nil)

// Resources adaptador de localización sobre el repositorio de recursos.
type Resources struct {
	repo repository.ResourceRepository
}

func NewResources(repo repository.ResourceRepository) *Resources {
	return &Resources{repo: repo}
}

// Resource devuelve la plantilla registrada para la clave, o la plantilla por
// defecto. Una clave totalmente desconocida devuelve la clave misma para que
// el mensaje nunca quede vacío.
func (r *Resources) Resource(key string) string {
	if r.repo != nil {
		value, err := r.repo.GetByKey(key)
		if err == nil && value != "" {
			return value
		}
	}
	if tpl, ok := defaultTemplates[key]; ok {
		return tpl
	}
	return key
}

var _ catalog.AvailabilityRangeLookup = (*RangeLookup)(nil)

// RangeLookup adaptador del puerto de rangos de disponibilidad del dominio.
type RangeLookup struct {
	repo repository.AvailabilityRangeRepository
}

func NewRangeLookup(repo repository.AvailabilityRangeRepository) *RangeLookup {
	return &RangeLookup{repo: repo}
}

func (l *RangeLookup) AvailabilityRangeByID(id string) (*entity.AvailabilityRange, error) {
	if id == "" {
		return nil, nil
	}
	return l.repo.GetByID(id)
}
