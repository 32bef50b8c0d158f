package entity

import "github.com/shopspring/decimal"

// Currency moneda de trabajo de una tienda. Rate es la tasa respecto a la
// moneda primaria (primaria tiene Rate=1).
type Currency struct {
	ID           string
	Name         string
	CurrencyCode string // código ISO 4217, ej. "COP", "USD"
	Rate         decimal.Decimal
	LanguageTag  string // etiqueta BCP 47 para formateo, ej. "es-CO"
}
