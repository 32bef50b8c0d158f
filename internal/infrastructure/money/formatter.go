// Package money implementa el formateo localizado de precios y las
// conversiones de moneda y de unidades de medida que usa el resolver.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var _ catalog.PriceFormatter = (*Formatter)(nil)

// Formatter produce precios localizados según la etiqueta de idioma de la
// moneda (separadores de miles/decimales y símbolo según la región).
type Formatter struct {
	fallback language.Tag
}

// NewFormatter construye el formateador. fallbackTag se usa cuando la moneda
// no trae etiqueta de idioma válida (ej. "es-CO").
func NewFormatter(fallbackTag string) *Formatter {
	tag, err := language.Parse(fallbackTag)
	if err != nil {
		tag = language.Spanish
	}
	return &Formatter{fallback: tag}
}

// FormatPrice devuelve el precio formateado para la moneda dada.
// showCurrency antepone el símbolo; showDecimals controla los dos decimales.
func (f *Formatter) FormatPrice(amount decimal.Decimal, cur *entity.Currency, showCurrency, showDecimals bool) string {
	tag := f.fallback
	if cur != nil && cur.LanguageTag != "" {
		if parsed, err := language.Parse(cur.LanguageTag); err == nil {
			tag = parsed
		}
	}
	p := message.NewPrinter(tag)

	scale := 2
	if !showDecimals {
		scale = 0
		amount = amount.Round(0)
	}
	value, _ := amount.Float64()
	formatted := p.Sprintf("%v", number.Decimal(value,
		number.Scale(scale), number.MinFractionDigits(scale)))

	if !showCurrency || cur == nil {
		return formatted
	}
	unit, err := currency.ParseISO(cur.CurrencyCode)
	if err != nil {
		return fmt.Sprintf("%s %s", cur.CurrencyCode, formatted)
	}
	return p.Sprintf("%v %s", currency.Symbol(unit), formatted)
}
