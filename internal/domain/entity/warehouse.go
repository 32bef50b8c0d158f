package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        string
	StoreID   string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductWarehouseInventory existencias de un producto en una bodega.
// ReservedQuantity son unidades comprometidas en pedidos aún no despachados.
type ProductWarehouseInventory struct {
	ID               string
	ProductID        string
	WarehouseID      string
	StockQuantity    int
	ReservedQuantity int
}
