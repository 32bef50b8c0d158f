package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AvailabilityRequest consulta de disponibilidad de un producto.
// AttributesXML es la selección de atributos serializada (opcional).
type AvailabilityRequest struct {
	AttributesXML string `query:"attributes"`
	WarehouseID   string `query:"warehouse_id"`
}

// AvailabilityResponse disponibilidad resuelta de un producto.
type AvailabilityResponse struct {
	ProductID     string `json:"product_id"`
	StockMessage  string `json:"stock_message"`
	StockQuantity int    `json:"stock_quantity"`

	SKU                    string `json:"sku"`
	ManufacturerPartNumber string `json:"manufacturer_part_number,omitempty"`
	Gtin                   string `json:"gtin,omitempty"`

	AllowedQuantities []int `json:"allowed_quantities,omitempty"`
}

// QuoteRequest solicitud de cotización de precio para una cantidad.
// AttributesXML es la selección de atributos serializada (opcional); si apunta
// a una combinación con SKU propio, la cotización lo refleja.
type QuoteRequest struct {
	Quantity      int        `json:"quantity" validate:"required,min=1"`
	CustomerID    string     `json:"customer_id"`
	CurrencyCode  string     `json:"currency_code"`
	AttributesXML string     `json:"attributes"`
	RentalStart   *time.Time `json:"rental_start"`
	RentalEnd     *time.Time `json:"rental_end"`
}

// QuoteResponse cotización resuelta: precio unitario efectivo (con precio por
// volumen aplicado), períodos de alquiler, total y precio base formateado.
type QuoteResponse struct {
	ProductID string `json:"product_id"`
	SKU       string `json:"sku,omitempty"`
	Quantity  int    `json:"quantity"`

	UnitPrice         decimal.Decimal `json:"unit_price"`
	TierQuantity      int             `json:"tier_quantity,omitempty"` // umbral aplicado, 0 = precio de lista
	RentalPeriods     int             `json:"rental_periods"`
	Total             decimal.Decimal `json:"total"`
	TotalFormatted    string          `json:"total_formatted"`
	BasePrice         string          `json:"base_price,omitempty"`
	CurrencyCode      string          `json:"currency_code"`
}

// CombinationRequest alta de una combinación de atributos de un producto.
type CombinationRequest struct {
	AttributesXML          string `json:"attributes_xml" validate:"required"`
	StockQuantity          int    `json:"stock_quantity"`
	AllowOutOfStockOrders  bool   `json:"allow_out_of_stock_orders"`
	SKU                    string `json:"sku"`
	ManufacturerPartNumber string `json:"manufacturer_part_number"`
	Gtin                   string `json:"gtin"`
}

// CombinationResponse salida de una combinación de atributos.
type CombinationResponse struct {
	ID                     string `json:"id"`
	ProductID              string `json:"product_id"`
	AttributesXML          string `json:"attributes_xml"`
	StockQuantity          int    `json:"stock_quantity"`
	AllowOutOfStockOrders  bool   `json:"allow_out_of_stock_orders"`
	SKU                    string `json:"sku,omitempty"`
	ManufacturerPartNumber string `json:"manufacturer_part_number,omitempty"`
	Gtin                   string `json:"gtin,omitempty"`
}
