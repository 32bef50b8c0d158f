package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `
	id, store_id, sku, name, description, manufacturer_part_number, gtin, price,
	manage_inventory, stock_quantity, use_multiple_warehouses,
	display_stock_availability, display_stock_quantity, backorder_mode,
	availability_range_id, allowed_quantities, allow_only_existing_combinations,
	is_rental, rental_price_period, rental_price_length,
	baseprice_enabled, baseprice_amount, baseprice_base_amount,
	baseprice_unit_id, baseprice_base_unit_id, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto con sus precios por volumen.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.StoreID, product.SKU, product.Name, product.Description,
		product.ManufacturerPartNumber, product.Gtin, product.Price,
		int(product.ManageInventory), product.StockQuantity, product.UseMultipleWarehouses,
		product.DisplayStockAvailability, product.DisplayStockQuantity, int(product.Backorder),
		product.AvailabilityRangeID, product.AllowedQuantities, product.AllowOnlyExistingCombinations,
		product.IsRental, int(product.RentalPricePeriod), product.RentalPriceLength,
		product.BasepriceEnabled, product.BasepriceAmount, product.BasepriceBaseAmount,
		product.BasepriceUnitID, product.BasepriceBaseUnitID, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return r.insertTierPrices(product)
}

// GetByID obtiene un producto por ID con sus colecciones cargadas.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	product, err := r.scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil || product == nil {
		return nil, err
	}
	if err := r.loadCollections(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByStoreAndSKU obtiene un producto por tienda y SKU (sin colecciones).
func (r *ProductRepo) GetByStoreAndSKU(storeID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND sku = $2`
	return r.scanProduct(r.q.QueryRow(context.Background(), query, storeID, sku))
}

// Update actualiza un producto y reemplaza sus precios por volumen.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, price = $4,
			manage_inventory = $5, stock_quantity = $6, use_multiple_warehouses = $7,
			display_stock_availability = $8, display_stock_quantity = $9, backorder_mode = $10,
			availability_range_id = $11, allowed_quantities = $12, allow_only_existing_combinations = $13,
			is_rental = $14, rental_price_period = $15, rental_price_length = $16,
			baseprice_enabled = $17, baseprice_amount = $18, baseprice_base_amount = $19,
			baseprice_unit_id = $20, baseprice_base_unit_id = $21, updated_at = $22
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.Price,
		int(product.ManageInventory), product.StockQuantity, product.UseMultipleWarehouses,
		product.DisplayStockAvailability, product.DisplayStockQuantity, int(product.Backorder),
		product.AvailabilityRangeID, product.AllowedQuantities, product.AllowOnlyExistingCombinations,
		product.IsRental, int(product.RentalPricePeriod), product.RentalPriceLength,
		product.BasepriceEnabled, product.BasepriceAmount, product.BasepriceBaseAmount,
		product.BasepriceUnitID, product.BasepriceBaseUnitID, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM tier_prices WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("delete tier prices: %w", err)
	}
	return r.insertTierPrices(product)
}

// ListByStore lista productos por tienda con paginación (sin colecciones).
func (r *ProductRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE store_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto y sus colecciones dependientes (FK en cascada).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) insertTierPrices(product *entity.Product) error {
	for _, tp := range product.TierPrices {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO tier_prices (id, product_id, store_id, customer_role_id, quantity, price, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			tp.ID, product.ID, tp.StoreID, tp.CustomerRoleID, tp.Quantity, tp.Price, tp.StartDate, tp.EndDate,
		)
		if err != nil {
			return fmt.Errorf("insert tier price: %w", err)
		}
	}
	return nil
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var manageInventory, backorder, rentalPeriod int
	err := row.Scan(
		&p.ID, &p.StoreID, &p.SKU, &p.Name, &p.Description,
		&p.ManufacturerPartNumber, &p.Gtin, &p.Price,
		&manageInventory, &p.StockQuantity, &p.UseMultipleWarehouses,
		&p.DisplayStockAvailability, &p.DisplayStockQuantity, &backorder,
		&p.AvailabilityRangeID, &p.AllowedQuantities, &p.AllowOnlyExistingCombinations,
		&p.IsRental, &rentalPeriod, &p.RentalPriceLength,
		&p.BasepriceEnabled, &p.BasepriceAmount, &p.BasepriceBaseAmount,
		&p.BasepriceUnitID, &p.BasepriceBaseUnitID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan product: %w", err)
	}
	p.ManageInventory = entity.ManageInventoryMethod(manageInventory)
	p.Backorder = entity.BackorderMode(backorder)
	p.RentalPricePeriod = entity.RentalPricePeriod(rentalPeriod)
	return &p, nil
}

// loadCollections carga precios por volumen, etiquetas, existencias por bodega
// y vínculos de productos. Snapshot de solo lectura para el resolver.
func (r *ProductRepo) loadCollections(p *entity.Product) error {
	ctx := context.Background()

	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, store_id, customer_role_id, quantity, price, start_date, end_date
		FROM tier_prices WHERE product_id = $1 ORDER BY quantity`, p.ID)
	if err != nil {
		return fmt.Errorf("load tier prices: %w", err)
	}
	for rows.Next() {
		var tp entity.TierPrice
		if err := rows.Scan(&tp.ID, &tp.ProductID, &tp.StoreID, &tp.CustomerRoleID,
			&tp.Quantity, &tp.Price, &tp.StartDate, &tp.EndDate); err != nil {
			rows.Close()
			return fmt.Errorf("scan tier price: %w", err)
		}
		p.TierPrices = append(p.TierPrices, &tp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx, `SELECT id, name FROM product_tags WHERE product_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load tags: %w", err)
	}
	for rows.Next() {
		var tag entity.ProductTag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			rows.Close()
			return fmt.Errorf("scan tag: %w", err)
		}
		p.Tags = append(p.Tags, &tag)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, product_id, warehouse_id, stock_quantity, reserved_quantity
		FROM product_warehouse_inventory WHERE product_id = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load warehouse inventory: %w", err)
	}
	for rows.Next() {
		var pwi entity.ProductWarehouseInventory
		if err := rows.Scan(&pwi.ID, &pwi.ProductID, &pwi.WarehouseID,
			&pwi.StockQuantity, &pwi.ReservedQuantity); err != nil {
			rows.Close()
			return fmt.Errorf("scan warehouse inventory: %w", err)
		}
		p.WarehouseInventory = append(p.WarehouseInventory, &pwi)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, product_id1, product_id2 FROM related_products WHERE product_id1 = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load related products: %w", err)
	}
	for rows.Next() {
		var rp entity.RelatedProduct
		if err := rows.Scan(&rp.ID, &rp.ProductID1, &rp.ProductID2); err != nil {
			rows.Close()
			return fmt.Errorf("scan related product: %w", err)
		}
		p.RelatedProducts = append(p.RelatedProducts, &rp)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.q.Query(ctx, `
		SELECT id, product_id1, product_id2 FROM cross_sell_products WHERE product_id1 = $1`, p.ID)
	if err != nil {
		return fmt.Errorf("load cross-sell products: %w", err)
	}
	for rows.Next() {
		var cs entity.CrossSellProduct
		if err := rows.Scan(&cs.ID, &cs.ProductID1, &cs.ProductID2); err != nil {
			rows.Close()
			return fmt.Errorf("scan cross-sell product: %w", err)
		}
		p.CrossSellProducts = append(p.CrossSellProducts, &cs)
	}
	rows.Close()
	return rows.Err()
}
