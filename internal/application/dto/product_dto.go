package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TierPriceInput precio por volumen dentro de un producto.
type TierPriceInput struct {
	StoreID        string          `json:"store_id"`
	CustomerRoleID string          `json:"customer_role_id"`
	Quantity       int             `json:"quantity" validate:"required,min=1"`
	Price          decimal.Decimal `json:"price"`
	StartDate      *time.Time      `json:"start_date"`
	EndDate        *time.Time      `json:"end_date"`
}

// CreateProductRequest entrada para crear un producto del catálogo.
type CreateProductRequest struct {
	SKU         string `json:"sku" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`

	ManufacturerPartNumber string `json:"manufacturer_part_number"`
	Gtin                   string `json:"gtin"`

	Price decimal.Decimal `json:"price"`

	ManageInventory          int    `json:"manage_inventory"` // 0=no, 1=por producto, 2=por atributos
	StockQuantity            int    `json:"stock_quantity"`
	UseMultipleWarehouses    bool   `json:"use_multiple_warehouses"`
	DisplayStockAvailability bool   `json:"display_stock_availability"`
	DisplayStockQuantity     bool   `json:"display_stock_quantity"`
	Backorder                int    `json:"backorder_mode"`
	AvailabilityRangeID      string `json:"availability_range_id"`
	AllowedQuantities        string `json:"allowed_quantities"`
	AllowOnlyExistingCombinations bool `json:"allow_only_existing_combinations"`

	IsRental          bool `json:"is_rental"`
	RentalPricePeriod int  `json:"rental_price_period"`
	RentalPriceLength int  `json:"rental_price_length"`

	BasepriceEnabled    bool            `json:"baseprice_enabled"`
	BasepriceAmount     decimal.Decimal `json:"baseprice_amount"`
	BasepriceBaseAmount decimal.Decimal `json:"baseprice_base_amount"`
	BasepriceUnitID     string          `json:"baseprice_unit_id"`
	BasepriceBaseUnitID string          `json:"baseprice_base_unit_id"`

	TierPrices []TierPriceInput `json:"tier_prices"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`

	StockQuantity            *int    `json:"stock_quantity"`
	DisplayStockAvailability *bool   `json:"display_stock_availability"`
	DisplayStockQuantity     *bool   `json:"display_stock_quantity"`
	Backorder                *int    `json:"backorder_mode"`
	AvailabilityRangeID      *string `json:"availability_range_id"`
	AllowedQuantities        *string `json:"allowed_quantities"`

	TierPrices []TierPriceInput `json:"tier_prices"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`

	ManufacturerPartNumber string `json:"manufacturer_part_number,omitempty"`
	Gtin                   string `json:"gtin,omitempty"`

	ManageInventory          int    `json:"manage_inventory"`
	StockQuantity            int    `json:"stock_quantity"`
	UseMultipleWarehouses    bool   `json:"use_multiple_warehouses"`
	DisplayStockAvailability bool   `json:"display_stock_availability"`
	DisplayStockQuantity     bool   `json:"display_stock_quantity"`
	Backorder                int    `json:"backorder_mode"`
	AvailabilityRangeID      string `json:"availability_range_id,omitempty"`
	AllowedQuantities        []int  `json:"allowed_quantities,omitempty"`

	IsRental          bool `json:"is_rental"`
	RentalPricePeriod int  `json:"rental_price_period,omitempty"`
	RentalPriceLength int  `json:"rental_price_length,omitempty"`

	BasepriceEnabled bool `json:"baseprice_enabled"`

	TierPrices []TierPriceInput `json:"tier_prices,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
