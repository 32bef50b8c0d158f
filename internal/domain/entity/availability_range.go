package entity

// AvailabilityRange rango de disponibilidad configurable (ej. "1-2 semanas").
// Se muestra en el mensaje de stock cuando el producto está agotado o en backorder.
type AvailabilityRange struct {
	ID   string
	Name string
}
