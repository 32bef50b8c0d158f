package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

type fakeFinder struct {
	combination *entity.AttributeCombination
}

func (f *fakeFinder) FindCombination(*entity.Product, string) (*entity.AttributeCombination, error) {
	return f.combination, nil
}

type fakeRangeLookup struct {
	ranges map[string]*entity.AvailabilityRange
}

func (f *fakeRangeLookup) AvailabilityRangeByID(id string) (*entity.AvailabilityRange, error) {
	return f.ranges[id], nil
}

func TestGetAvailability_ProductoConStock(t *testing.T) {
	product := &entity.Product{
		ID:                       "p1",
		SKU:                      "CAM-001",
		ManageInventory:          entity.InventoryTrackStock,
		StockQuantity:            12,
		DisplayStockAvailability: true,
		DisplayStockQuantity:     true,
		AllowedQuantities:        "1,5,10",
	}
	uc := appcatalog.NewAvailabilityUseCase(
		&fakeProductRepo{product: product},
		fakeResources{}, &fakeFinder{}, &fakeRangeLookup{},
	)

	out, err := uc.GetAvailability("p1", dto.AvailabilityRequest{})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 12, out.StockQuantity)
	assert.Equal(t, "CAM-001", out.SKU)
	assert.Equal(t, []int{1, 5, 10}, out.AllowedQuantities)
	assert.NotEmpty(t, out.StockMessage)
}

func TestGetAvailability_IdentificadoresDeCombinacion(t *testing.T) {
	product := &entity.Product{
		ID:              "p1",
		SKU:             "CAM-001",
		Gtin:            "7700000000001",
		ManageInventory: entity.InventoryTrackByAttributes,
	}
	combo := &entity.AttributeCombination{
		ID:            "c1",
		ProductID:     "p1",
		SKU:           "CAM-001-M",
		StockQuantity: 4,
	}
	uc := appcatalog.NewAvailabilityUseCase(
		&fakeProductRepo{product: product},
		fakeResources{}, &fakeFinder{combination: combo}, &fakeRangeLookup{},
	)

	out, err := uc.GetAvailability("p1", dto.AvailabilityRequest{
		AttributesXML: `<attributes><attribute id="talla"><value>M</value></attribute></attributes>`,
	})
	require.NoError(t, err)

	assert.Equal(t, "CAM-001-M", out.SKU, "el SKU de la combinación prevalece")
	assert.Equal(t, "7700000000001", out.Gtin, "GTIN vacío en la combinación usa el del producto")
}

func TestGetAvailability_ProductoInexistente(t *testing.T) {
	uc := appcatalog.NewAvailabilityUseCase(
		&fakeProductRepo{},
		fakeResources{}, &fakeFinder{}, &fakeRangeLookup{},
	)

	out, err := uc.GetAvailability("no-existe", dto.AvailabilityRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
