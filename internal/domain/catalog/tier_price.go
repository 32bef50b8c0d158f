package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// PreferredTierPrice devuelve el precio por volumen aplicable a la cantidad
// pedida: el de mayor umbral que sea <= quantity, tras filtrar por tienda,
// elegibilidad del cliente y vigencia, y eliminar umbrales duplicados.
// Devuelve nil si el producto no tiene precios por volumen o ninguno aplica.
// customer puede ser nil (cliente anónimo: se excluyen los precios
// restringidos a un rol).
func PreferredTierPrice(product *entity.Product, customer *entity.Customer, storeID string, quantity int, now time.Time) (*entity.TierPrice, error) {
	if product == nil {
		return nil, fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if !product.HasTierPrices() {
		return nil, nil
	}

	prices := make([]*entity.TierPrice, 0, len(product.TierPrices))
	prices = append(prices, product.TierPrices...)
	sort.SliceStable(prices, func(i, j int) bool { return prices[i].Quantity < prices[j].Quantity })

	prices = filterByStore(prices, storeID)
	prices = filterForCustomer(prices, customer)
	prices = filterByDate(prices, now)
	prices = removeDuplicatedQuantities(prices)

	// Último umbral alcanzado por la cantidad pedida
	var preferred *entity.TierPrice
	for _, tp := range prices {
		if quantity >= tp.Quantity {
			preferred = tp
		}
	}
	return preferred, nil
}

// filterByStore conserva precios globales (StoreID vacío) o de la tienda dada.
func filterByStore(prices []*entity.TierPrice, storeID string) []*entity.TierPrice {
	out := prices[:0]
	for _, tp := range prices {
		if tp.StoreID == "" || tp.StoreID == storeID {
			out = append(out, tp)
		}
	}
	return out
}

// filterForCustomer conserva precios sin restricción de rol o cuyo rol esté
// activo en el cliente.
func filterForCustomer(prices []*entity.TierPrice, customer *entity.Customer) []*entity.TierPrice {
	roleIDs := customer.ActiveRoleIDs()
	roles := make(map[string]bool, len(roleIDs))
	for _, id := range roleIDs {
		roles[id] = true
	}
	out := prices[:0]
	for _, tp := range prices {
		if tp.CustomerRoleID == "" || roles[tp.CustomerRoleID] {
			out = append(out, tp)
		}
	}
	return out
}

// filterByDate conserva precios vigentes en now. Extremos nil = vigencia
// abierta; los límites son inclusivos.
func filterByDate(prices []*entity.TierPrice, now time.Time) []*entity.TierPrice {
	out := prices[:0]
	for _, tp := range prices {
		if tp.StartDate != nil && now.Before(*tp.StartDate) {
			continue
		}
		if tp.EndDate != nil && now.After(*tp.EndDate) {
			continue
		}
		out = append(out, tp)
	}
	return out
}

// removeDuplicatedQuantities deja un solo precio por umbral de cantidad:
// el de menor precio; a igualdad de precio gana el primero visto.
func removeDuplicatedQuantities(prices []*entity.TierPrice) []*entity.TierPrice {
	best := make(map[int]*entity.TierPrice, len(prices))
	for _, tp := range prices {
		current, ok := best[tp.Quantity]
		if !ok || tp.Price.LessThan(current.Price) {
			best[tp.Quantity] = tp
		}
	}
	out := prices[:0]
	for _, tp := range prices {
		if best[tp.Quantity] == tp {
			out = append(out, tp)
		}
	}
	return out
}
