package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierPrice precio por volumen: a partir de Quantity unidades aplica Price.
// StoreID vacío = aplica en todas las tiendas. CustomerRoleID vacío = aplica
// a cualquier cliente. StartDate/EndDate nil = vigencia abierta.
type TierPrice struct {
	ID             string
	ProductID      string
	StoreID        string
	CustomerRoleID string
	Quantity       int
	Price          decimal.Decimal
	StartDate      *time.Time
	EndDate        *time.Time
}
