package catalog_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

var tierNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func tierProduct(prices ...*entity.TierPrice) *entity.Product {
	return &entity.Product{
		ID:         "prod-1",
		Price:      decimal.NewFromInt(100),
		TierPrices: prices,
	}
}

func tier(quantity int, price int64) *entity.TierPrice {
	return &entity.TierPrice{
		ID:       "tp-" + string(rune('a'+quantity%26)),
		Quantity: quantity,
		Price:    decimal.NewFromInt(price),
	}
}

func TestPreferredTierPrice_SinPrecios(t *testing.T) {
	tp, err := catalog.PreferredTierPrice(tierProduct(), nil, "store-1", 10, tierNow)
	require.NoError(t, err)
	assert.Nil(t, tp, "sin precios por volumen debe devolver nil")
}

func TestPreferredTierPrice_ProductoNil(t *testing.T) {
	_, err := catalog.PreferredTierPrice(nil, nil, "store-1", 10, tierNow)
	assert.Error(t, err, "producto nil debe fallar antes de calcular")
}

func TestPreferredTierPrice_UmbralMasAltoAlcanzado(t *testing.T) {
	p := tierProduct(tier(10, 80), tier(3, 95), tier(5, 90))

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 7, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.Equal(t, 5, tp.Quantity, "debe elegir el mayor umbral <= cantidad pedida")
	assert.True(t, tp.Price.Equal(decimal.NewFromInt(90)))
}

func TestPreferredTierPrice_NingunUmbralAlcanzado(t *testing.T) {
	p := tierProduct(tier(5, 90), tier(10, 80))

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 2, tierNow)
	require.NoError(t, err)
	assert.Nil(t, tp, "cantidad por debajo de todos los umbrales: sin precio por volumen")
}

func TestPreferredTierPrice_UmbralExacto(t *testing.T) {
	p := tierProduct(tier(5, 90))

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 5, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.Equal(t, 5, tp.Quantity, "el umbral igual a la cantidad califica")
}

func TestPreferredTierPrice_FiltraPorTienda(t *testing.T) {
	otra := tier(5, 50)
	otra.StoreID = "store-2"
	global := tier(5, 90)

	p := tierProduct(otra, global)

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 5, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.True(t, tp.Price.Equal(decimal.NewFromInt(90)),
		"el precio de otra tienda no debe aplicar; queda el global")
}

func TestPreferredTierPrice_FiltraPorRolDeCliente(t *testing.T) {
	mayorista := tier(5, 60)
	mayorista.CustomerRoleID = "rol-mayorista"
	abierto := tier(5, 90)

	p := tierProduct(mayorista, abierto)

	// Cliente anónimo: el precio restringido a rol no aplica
	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 5, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.True(t, tp.Price.Equal(decimal.NewFromInt(90)))

	// Cliente con el rol activo: aplica el precio restringido (menor precio gana el duplicado)
	customer := &entity.Customer{
		ID:    "cust-1",
		Roles: []*entity.CustomerRole{{ID: "rol-mayorista", Active: true}},
	}
	tp, err = catalog.PreferredTierPrice(p, customer, "store-1", 5, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.True(t, tp.Price.Equal(decimal.NewFromInt(60)))
}

func TestPreferredTierPrice_RolInactivoNoCalifica(t *testing.T) {
	restringido := tier(5, 60)
	restringido.CustomerRoleID = "rol-vip"

	p := tierProduct(restringido)
	customer := &entity.Customer{
		ID:    "cust-1",
		Roles: []*entity.CustomerRole{{ID: "rol-vip", Active: false}},
	}

	tp, err := catalog.PreferredTierPrice(p, customer, "store-1", 5, tierNow)
	require.NoError(t, err)
	assert.Nil(t, tp, "un rol inactivo no habilita el precio restringido")
}

func TestPreferredTierPrice_VigenciaInclusive(t *testing.T) {
	start := tierNow
	end := tierNow.Add(48 * time.Hour)
	vigente := tier(5, 70)
	vigente.StartDate = &start
	vigente.EndDate = &end

	p := tierProduct(vigente)

	// En el límite inferior exacto el precio está vigente
	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 5, start)
	require.NoError(t, err)
	assert.NotNil(t, tp, "el límite de inicio es inclusivo")

	// En el límite superior exacto también
	tp, err = catalog.PreferredTierPrice(p, nil, "store-1", 5, end)
	require.NoError(t, err)
	assert.NotNil(t, tp, "el límite de fin es inclusivo")

	// Después del fin ya no
	tp, err = catalog.PreferredTierPrice(p, nil, "store-1", 5, end.Add(time.Second))
	require.NoError(t, err)
	assert.Nil(t, tp, "fuera de vigencia el precio no aplica")
}

func TestPreferredTierPrice_VigenciaAbierta(t *testing.T) {
	abierto := tier(5, 70) // sin fechas: vigencia abierta
	p := tierProduct(abierto)

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 5, tierNow.AddDate(10, 0, 0))
	require.NoError(t, err)
	assert.NotNil(t, tp, "sin fechas configuradas el precio siempre está vigente")
}

func TestPreferredTierPrice_DuplicadosConservaMenorPrecio(t *testing.T) {
	caro := tier(5, 95)
	barato := tier(5, 85)

	p := tierProduct(caro, barato)

	tp, err := catalog.PreferredTierPrice(p, nil, "store-1", 8, tierNow)
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.True(t, tp.Price.Equal(decimal.NewFromInt(85)),
		"con umbrales duplicados debe conservarse el de menor precio")
}

// Invariante: el umbral elegido siempre es <= cantidad y ningún otro
// precio calificado tiene un umbral mayor.
func TestPreferredTierPrice_PropiedadUmbralMaximo(t *testing.T) {
	p := tierProduct(tier(1, 99), tier(3, 95), tier(5, 90), tier(10, 80), tier(50, 60))

	for _, qty := range []int{1, 2, 3, 4, 5, 9, 10, 49, 50, 1000} {
		tp, err := catalog.PreferredTierPrice(p, nil, "store-1", qty, tierNow)
		require.NoError(t, err)
		require.NotNil(t, tp, "qty=%d", qty)
		assert.LessOrEqual(t, tp.Quantity, qty)
		for _, other := range p.TierPrices {
			if other.Quantity <= qty {
				assert.GreaterOrEqual(t, tp.Quantity, other.Quantity,
					"ningún otro precio calificado puede tener umbral mayor (qty=%d)", qty)
			}
		}
	}
}
