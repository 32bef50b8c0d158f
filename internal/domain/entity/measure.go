package entity

import "github.com/shopspring/decimal"

// MeasureWeight unidad de medida de peso/cantidad para precio base.
// Ratio es el factor respecto a la unidad primaria del sistema
// (ej. primaria=kg: gramo tiene Ratio=1000, libra Ratio≈2.2046).
type MeasureWeight struct {
	ID       string
	Name     string // nombre a mostrar, ej. "kg"
	Keyword  string // código interno, ej. "KGM"
	Ratio    decimal.Decimal
}
