package entity

// AttributeCombination combinación concreta de atributos de un producto
// (ej. talla M + color rojo) con datos propios de stock e identificadores.
// Un campo identificador vacío significa "usar el del producto".
type AttributeCombination struct {
	ID                     string
	ProductID              string
	AttributesXML          string // selección de atributos serializada en XML
	StockQuantity          int
	AllowOutOfStockOrders  bool
	SKU                    string
	ManufacturerPartNumber string
	Gtin                   string
}
