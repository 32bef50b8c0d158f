package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func identifierProduct() *entity.Product {
	return &entity.Product{
		ID:                     "prod-1",
		ManageInventory:        entity.InventoryTrackByAttributes,
		SKU:                    "SKU-BASE",
		ManufacturerPartNumber: "MPN-BASE",
		Gtin:                   "750123456789",
	}
}

func TestResolveIdentifiers_ProductoNil(t *testing.T) {
	_, err := catalog.ResolveIdentifiers(nil, "", noCombination())
	assert.Error(t, err)
}

func TestResolveIdentifiers_SinSeleccionUsaProducto(t *testing.T) {
	p := identifierProduct()

	ids, err := catalog.ResolveIdentifiers(p, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "SKU-BASE", ids.SKU)
	assert.Equal(t, "MPN-BASE", ids.ManufacturerPartNumber)
	assert.Equal(t, "750123456789", ids.Gtin)
}

func TestResolveIdentifiers_ModoSinAtributosIgnoraSeleccion(t *testing.T) {
	p := identifierProduct()
	p.ManageInventory = entity.InventoryTrackStock
	combos := &fakeCombinations{combination: &entity.AttributeCombination{SKU: "SKU-COMBO"}}

	ids, err := catalog.ResolveIdentifiers(p, "<attrs/>", combos)
	require.NoError(t, err)
	assert.Equal(t, "SKU-BASE", ids.SKU,
		"sin stock por atributos la combinación no participa")
	assert.Empty(t, combos.lastXML, "no debe consultarse el buscador")
}

func TestResolveIdentifiers_CombinacionSobrescribeNoVacios(t *testing.T) {
	p := identifierProduct()
	combos := &fakeCombinations{combination: &entity.AttributeCombination{
		SKU:  "SKU-COMBO",
		Gtin: "750999999999",
		// MPN vacío: debe caer al del producto
	}}

	ids, err := catalog.ResolveIdentifiers(p, "<attrs/>", combos)
	require.NoError(t, err)
	assert.Equal(t, "SKU-COMBO", ids.SKU)
	assert.Equal(t, "MPN-BASE", ids.ManufacturerPartNumber,
		"un campo vacío en la combinación nunca borra el del producto")
	assert.Equal(t, "750999999999", ids.Gtin)
}

func TestResolveIdentifiers_SinCombinacionCaeAlProducto(t *testing.T) {
	p := identifierProduct()

	ids, err := catalog.ResolveIdentifiers(p, "<attrs/>", noCombination())
	require.NoError(t, err)
	assert.Equal(t, "SKU-BASE", ids.SKU)
	assert.Equal(t, "MPN-BASE", ids.ManufacturerPartNumber)
	assert.Equal(t, "750123456789", ids.Gtin)
}

func TestFormatSkuMpnGtin_AccesoresIndependientes(t *testing.T) {
	p := identifierProduct()
	combos := &fakeCombinations{combination: &entity.AttributeCombination{SKU: "SKU-COMBO"}}

	sku, err := catalog.FormatSku(p, "<attrs/>", combos)
	require.NoError(t, err)
	assert.Equal(t, "SKU-COMBO", sku)

	mpn, err := catalog.FormatMpn(p, "<attrs/>", combos)
	require.NoError(t, err)
	assert.Equal(t, "MPN-BASE", mpn)

	gtin, err := catalog.FormatGtin(p, "<attrs/>", combos)
	require.NoError(t, err)
	assert.Equal(t, "750123456789", gtin)
}
