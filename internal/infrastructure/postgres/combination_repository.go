package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CombinationRepository = (*CombinationRepo)(nil)

// CombinationRepo persistencia de combinaciones de atributos sobre PostgreSQL.
type CombinationRepo struct {
	q Querier
}

func NewCombinationRepository(q Querier) *CombinationRepo {
	return &CombinationRepo{q: q}
}

// ListByProduct devuelve todas las combinaciones registradas de un producto.
func (r *CombinationRepo) ListByProduct(productID string) ([]*entity.AttributeCombination, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, product_id, attributes_xml, stock_quantity, allow_out_of_stock_orders,
		       sku, manufacturer_part_number, gtin
		FROM attribute_combinations WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("list combinations: %w", err)
	}
	defer rows.Close()

	var list []*entity.AttributeCombination
	for rows.Next() {
		var c entity.AttributeCombination
		if err := rows.Scan(&c.ID, &c.ProductID, &c.AttributesXML, &c.StockQuantity,
			&c.AllowOutOfStockOrders, &c.SKU, &c.ManufacturerPartNumber, &c.Gtin); err != nil {
			return nil, fmt.Errorf("scan combination: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create registra una combinación de atributos de un producto.
func (r *CombinationRepo) Create(c *entity.AttributeCombination) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO attribute_combinations
			(id, product_id, attributes_xml, stock_quantity, allow_out_of_stock_orders,
			 sku, manufacturer_part_number, gtin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.ProductID, c.AttributesXML, c.StockQuantity, c.AllowOutOfStockOrders,
		c.SKU, c.ManufacturerPartNumber, c.Gtin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert combination: %w", err)
	}
	return nil
}
