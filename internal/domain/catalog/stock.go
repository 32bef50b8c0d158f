package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// TotalStockQuantity calcula el stock total de un producto.
//
// Solo tiene sentido cuando el inventario se controla a nivel de producto
// (InventoryTrackStock); en cualquier otro modo devuelve 0. Sin multi-bodega
// devuelve la cantidad plana del producto. Con multi-bodega suma las
// existencias por bodega (restringibles a warehouseID) y, con
// netReserved=true, descuenta las cantidades reservadas: los callers
// normalmente quieren el stock neto disponible.
func TotalStockQuantity(product *entity.Product, netReserved bool, warehouseID string) (int, error) {
	if product == nil {
		return 0, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}

	if product.ManageInventory != entity.InventoryTrackStock {
		return 0, nil
	}

	if !product.UseMultipleWarehouses {
		return product.StockQuantity, nil
	}

	total := 0
	reserved := 0
	for _, pwi := range product.WarehouseInventory {
		if warehouseID != "" && pwi.WarehouseID != warehouseID {
			continue
		}
		total += pwi.StockQuantity
		reserved += pwi.ReservedQuantity
	}
	if netReserved {
		total -= reserved
	}
	return total, nil
}
