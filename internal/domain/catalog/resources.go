package catalog

// Claves de recursos de mensajes usadas por el resolver. Este paquete nunca
// produce texto en un idioma concreto: solo claves y valores a sustituir.
const (
	ResInStock              = "products.availability.in_stock"
	ResInStockWithQuantity  = "products.availability.in_stock_with_quantity"
	ResOutOfStock           = "products.availability.out_of_stock"
	ResAvailabilityRange    = "products.availability.availability_range"
	ResBackordering         = "products.availability.backordering"
	ResBackorderingWithDate = "products.availability.backordering_with_date"
	ResBasePrice            = "products.base_price"
)
