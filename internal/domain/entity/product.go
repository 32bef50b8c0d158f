package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ManageInventoryMethod indica cómo se controla el inventario de un producto.
type ManageInventoryMethod int

const (
	// InventoryNotManaged el stock no se controla (servicios, descargables).
	InventoryNotManaged ManageInventoryMethod = iota
	// InventoryTrackStock el stock se controla a nivel de producto (cantidad plana o multi-bodega).
	InventoryTrackStock
	// InventoryTrackByAttributes el stock se controla por combinación de atributos (talla, color).
	InventoryTrackByAttributes
)

// BackorderMode política de venta cuando el stock es cero o negativo.
type BackorderMode int

const (
	// BackorderNone no se permiten pedidos sin stock.
	BackorderNone BackorderMode = iota
	// BackorderAllowQtyBelow0 se permite vender con stock negativo sin avisar al cliente.
	BackorderAllowQtyBelow0
	// BackorderAllowQtyBelow0AndNotify se permite vender con stock negativo notificando el backorder.
	BackorderAllowQtyBelow0AndNotify
)

// RentalPricePeriod unidad del período de alquiler.
type RentalPricePeriod int

const (
	RentalPeriodDays RentalPricePeriod = iota
	RentalPeriodWeeks
	RentalPeriodMonths
	RentalPeriodYears
)

// Product representa un producto del catálogo con su configuración de precios,
// inventario, alquiler y precio base (precio por unidad de medida).
// El resolver de disponibilidad/precios solo lee; el ciclo de vida pertenece
// al almacén de catálogo.
type Product struct {
	ID          string
	StoreID     string
	SKU         string // código único por tienda
	Name        string
	Description string

	ManufacturerPartNumber string
	Gtin                   string

	Price decimal.Decimal // precio de venta (moneda primaria de la tienda)

	// Inventario
	ManageInventory         ManageInventoryMethod
	StockQuantity           int
	UseMultipleWarehouses   bool
	DisplayStockAvailability bool
	DisplayStockQuantity    bool
	Backorder               BackorderMode
	AvailabilityRangeID     string
	AllowedQuantities       string // lista separada por comas, ej. "1,5,10"
	// Solo se aceptan selecciones de atributos con combinación registrada.
	AllowOnlyExistingCombinations bool

	// Alquiler
	IsRental          bool
	RentalPricePeriod RentalPricePeriod
	RentalPriceLength int

	// Precio base (precio por unidad de referencia, ej. $/kg)
	BasepriceEnabled    bool
	BasepriceAmount     decimal.Decimal // cantidad del producto en su unidad (ej. 500 g)
	BasepriceBaseAmount decimal.Decimal // cantidad de referencia (ej. 1000 g)
	BasepriceUnitID     string
	BasepriceBaseUnitID string

	// Colecciones (snapshot de solo lectura durante una resolución)
	TierPrices          []*TierPrice
	Tags                []*ProductTag
	WarehouseInventory  []*ProductWarehouseInventory
	RelatedProducts     []*RelatedProduct
	CrossSellProducts   []*CrossSellProduct

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTierPrices indica si el producto tiene precios por volumen configurados.
func (p *Product) HasTierPrices() bool {
	return len(p.TierPrices) > 0
}

// ProductTag etiqueta asociada a un producto.
type ProductTag struct {
	ID   string
	Name string
}

// RelatedProduct vínculo "productos relacionados" entre dos productos.
type RelatedProduct struct {
	ID         string
	ProductID1 string
	ProductID2 string
}

// CrossSellProduct vínculo de venta cruzada entre dos productos.
type CrossSellProduct struct {
	ID         string
	ProductID1 string
	ProductID2 string
}
