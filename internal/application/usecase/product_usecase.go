package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// La disponibilidad y la cotización viven en application/catalog.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto. El SKU es único por tienda.
func (uc *ProductUseCase) Create(storeID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, _ := uc.repo.GetByStoreAndSKU(storeID, in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.ManageInventory < 0 || in.ManageInventory > int(entity.InventoryTrackByAttributes) {
		return nil, domain.ErrInvalidInput
	}
	if in.Backorder < 0 || in.Backorder > int(entity.BackorderAllowQtyBelow0AndNotify) {
		return nil, domain.ErrInvalidInput
	}
	if in.IsRental && in.RentalPriceLength < 1 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,

		ManufacturerPartNumber: in.ManufacturerPartNumber,
		Gtin:                   in.Gtin,
		Price:                  in.Price,

		ManageInventory:          entity.ManageInventoryMethod(in.ManageInventory),
		StockQuantity:            in.StockQuantity,
		UseMultipleWarehouses:    in.UseMultipleWarehouses,
		DisplayStockAvailability: in.DisplayStockAvailability,
		DisplayStockQuantity:     in.DisplayStockQuantity,
		Backorder:                entity.BackorderMode(in.Backorder),
		AvailabilityRangeID:      in.AvailabilityRangeID,
		AllowedQuantities:        in.AllowedQuantities,
		AllowOnlyExistingCombinations: in.AllowOnlyExistingCombinations,

		IsRental:          in.IsRental,
		RentalPricePeriod: entity.RentalPricePeriod(in.RentalPricePeriod),
		RentalPriceLength: in.RentalPriceLength,

		BasepriceEnabled:    in.BasepriceEnabled,
		BasepriceAmount:     in.BasepriceAmount,
		BasepriceBaseAmount: in.BasepriceBaseAmount,
		BasepriceUnitID:     in.BasepriceUnitID,
		BasepriceBaseUnitID: in.BasepriceBaseUnitID,

		TierPrices: tierPricesFromInput(in.TierPrices),

		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, tp := range product.TierPrices {
		tp.ProductID = product.ID
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID con sus colecciones.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos editables de un producto.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.DisplayStockAvailability != nil {
		product.DisplayStockAvailability = *in.DisplayStockAvailability
	}
	if in.DisplayStockQuantity != nil {
		product.DisplayStockQuantity = *in.DisplayStockQuantity
	}
	if in.Backorder != nil {
		if *in.Backorder < 0 || *in.Backorder > int(entity.BackorderAllowQtyBelow0AndNotify) {
			return nil, domain.ErrInvalidInput
		}
		product.Backorder = entity.BackorderMode(*in.Backorder)
	}
	if in.AvailabilityRangeID != nil {
		product.AvailabilityRangeID = *in.AvailabilityRangeID
	}
	if in.AllowedQuantities != nil {
		product.AllowedQuantities = *in.AllowedQuantities
	}
	if in.TierPrices != nil {
		product.TierPrices = tierPricesFromInput(in.TierPrices)
		for _, tp := range product.TierPrices {
			tp.ProductID = product.ID
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos por tienda con paginación.
func (uc *ProductUseCase) List(storeID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func tierPricesFromInput(in []dto.TierPriceInput) []*entity.TierPrice {
	if len(in) == 0 {
		return nil
	}
	out := make([]*entity.TierPrice, 0, len(in))
	for _, tp := range in {
		out = append(out, &entity.TierPrice{
			ID:             uuid.New().String(),
			StoreID:        tp.StoreID,
			CustomerRoleID: tp.CustomerRoleID,
			Quantity:       tp.Quantity,
			Price:          tp.Price,
			StartDate:      tp.StartDate,
			EndDate:        tp.EndDate,
		})
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	allowed, _ := domaincatalog.ParseAllowedQuantities(p)
	tiers := make([]dto.TierPriceInput, 0, len(p.TierPrices))
	for _, tp := range p.TierPrices {
		tiers = append(tiers, dto.TierPriceInput{
			StoreID:        tp.StoreID,
			CustomerRoleID: tp.CustomerRoleID,
			Quantity:       tp.Quantity,
			Price:          tp.Price,
			StartDate:      tp.StartDate,
			EndDate:        tp.EndDate,
		})
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		StoreID:     p.StoreID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,

		ManufacturerPartNumber: p.ManufacturerPartNumber,
		Gtin:                   p.Gtin,

		ManageInventory:          int(p.ManageInventory),
		StockQuantity:            p.StockQuantity,
		UseMultipleWarehouses:    p.UseMultipleWarehouses,
		DisplayStockAvailability: p.DisplayStockAvailability,
		DisplayStockQuantity:     p.DisplayStockQuantity,
		Backorder:                int(p.Backorder),
		AvailabilityRangeID:      p.AvailabilityRangeID,
		AllowedQuantities:        allowed,

		IsRental:          p.IsRental,
		RentalPricePeriod: int(p.RentalPricePeriod),
		RentalPriceLength: p.RentalPriceLength,

		BasepriceEnabled: p.BasepriceEnabled,

		TierPrices: tiers,

		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
