package catalog

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// messageKind variante cerrada del mensaje de disponibilidad. Cada combinación
// {modo de inventario × presencia de combinación × modo de backorder} mapea a
// exactamente una variante; render es total sobre ellas.
type messageKind int

const (
	msgNone messageKind = iota
	msgInStock
	msgInStockWithQuantity
	msgOutOfStock
	msgAvailabilityRange
	msgBackordering
	msgBackorderingWithDate
)

// stockState resultado de clasificar la disponibilidad, previo al render.
type stockState struct {
	kind      messageKind
	quantity  int
	rangeName string
}

// StockMessage construye el mensaje de disponibilidad de stock para el
// producto y la selección de atributos dada. Las plantillas provienen de
// resources; este paquete nunca contiene texto en un idioma concreto.
//
// Productos sin control de inventario devuelven cadena vacía aunque
// DisplayStockAvailability esté activo: la disponibilidad solo se informa
// cuando el stock se controla.
func StockMessage(
	product *entity.Product,
	attributesXML string,
	resources ResourceLookup,
	combinations CombinationFinder,
	ranges AvailabilityRangeLookup,
) (string, error) {
	if product == nil {
		return "", fmt.Errorf("%w: producto requerido", domain.ErrInvalidInput)
	}
	if resources == nil || combinations == nil || ranges == nil {
		return "", fmt.Errorf("%w: colaboradores de mensaje requeridos", domain.ErrInvalidInput)
	}

	if !product.DisplayStockAvailability {
		return "", nil
	}

	var state stockState
	var err error
	switch product.ManageInventory {
	case entity.InventoryNotManaged:
		state = stockState{kind: msgNone}
	case entity.InventoryTrackStock:
		state, err = classifyTrackedStock(product, ranges)
	case entity.InventoryTrackByAttributes:
		state, err = classifyByAttributes(product, attributesXML, combinations, ranges)
	default:
		state = stockState{kind: msgNone}
	}
	if err != nil {
		return "", err
	}

	return render(state, resources), nil
}

// classifyTrackedStock clasifica productos con stock a nivel de producto.
func classifyTrackedStock(product *entity.Product, ranges AvailabilityRangeLookup) (stockState, error) {
	quantity, err := TotalStockQuantity(product, true, "")
	if err != nil {
		return stockState{}, err
	}

	if quantity > 0 {
		return inStockState(product, quantity), nil
	}

	switch product.Backorder {
	case entity.BackorderAllowQtyBelow0:
		return stockState{kind: msgInStock}, nil
	case entity.BackorderAllowQtyBelow0AndNotify:
		rangeName, err := availabilityRangeName(product, ranges)
		if err != nil {
			return stockState{}, err
		}
		if rangeName == "" {
			return stockState{kind: msgBackordering}, nil
		}
		return stockState{kind: msgBackorderingWithDate, rangeName: rangeName}, nil
	default: // BackorderNone
		return outOfStockState(product, ranges)
	}
}

// classifyByAttributes clasifica productos con stock por combinación de atributos.
func classifyByAttributes(
	product *entity.Product,
	attributesXML string,
	combinations CombinationFinder,
	ranges AvailabilityRangeLookup,
) (stockState, error) {
	combination, err := combinations.FindCombination(product, attributesXML)
	if err != nil {
		return stockState{}, fmt.Errorf("buscar combinación: %w", err)
	}

	if combination == nil {
		// Selección sin combinación registrada: si el producto exige
		// combinaciones existentes se trata como agotado; si no, está disponible.
		if product.AllowOnlyExistingCombinations {
			return outOfStockState(product, ranges)
		}
		return stockState{kind: msgInStock}, nil
	}

	if combination.StockQuantity > 0 {
		return inStockState(product, combination.StockQuantity), nil
	}
	if combination.AllowOutOfStockOrders {
		return stockState{kind: msgInStock}, nil
	}
	return outOfStockState(product, ranges)
}

func inStockState(product *entity.Product, quantity int) stockState {
	if product.DisplayStockQuantity {
		return stockState{kind: msgInStockWithQuantity, quantity: quantity}
	}
	return stockState{kind: msgInStock}
}

// outOfStockState agotado sin backorder: con rango configurado el mensaje
// indica desde cuándo habrá disponibilidad.
func outOfStockState(product *entity.Product, ranges AvailabilityRangeLookup) (stockState, error) {
	rangeName, err := availabilityRangeName(product, ranges)
	if err != nil {
		return stockState{}, err
	}
	if rangeName == "" {
		return stockState{kind: msgOutOfStock}, nil
	}
	return stockState{kind: msgAvailabilityRange, rangeName: rangeName}, nil
}

func availabilityRangeName(product *entity.Product, ranges AvailabilityRangeLookup) (string, error) {
	if product.AvailabilityRangeID == "" {
		return "", nil
	}
	ar, err := ranges.AvailabilityRangeByID(product.AvailabilityRangeID)
	if err != nil {
		return "", fmt.Errorf("buscar rango de disponibilidad: %w", err)
	}
	if ar == nil {
		return "", nil
	}
	return ar.Name, nil
}

// render sustituye los valores en la plantilla de la variante.
func render(state stockState, resources ResourceLookup) string {
	switch state.kind {
	case msgInStock:
		return resources.Resource(ResInStock)
	case msgInStockWithQuantity:
		return fmt.Sprintf(resources.Resource(ResInStockWithQuantity), state.quantity)
	case msgOutOfStock:
		return resources.Resource(ResOutOfStock)
	case msgAvailabilityRange:
		return fmt.Sprintf(resources.Resource(ResAvailabilityRange), state.rangeName)
	case msgBackordering:
		return resources.Resource(ResBackordering)
	case msgBackorderingWithDate:
		return fmt.Sprintf(resources.Resource(ResBackorderingWithDate), state.rangeName)
	default:
		return ""
	}
}
