package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// PricingUseCase cotiza un producto: precio unitario efectivo (con precio por
// volumen), períodos de alquiler, total en la moneda de trabajo y precio base.
type PricingUseCase struct {
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	currencyRepo repository.CurrencyRepository
	resources    domaincatalog.ResourceLookup
	combinations domaincatalog.CombinationFinder
	measures     domaincatalog.MeasureConverter
	currencies   domaincatalog.CurrencyConverter
	formatter    domaincatalog.PriceFormatter
	now          func() time.Time
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	currencyRepo repository.CurrencyRepository,
	resources domaincatalog.ResourceLookup,
	combinations domaincatalog.CombinationFinder,
	measures domaincatalog.MeasureConverter,
	currencies domaincatalog.CurrencyConverter,
	formatter domaincatalog.PriceFormatter,
) *PricingUseCase {
	return &PricingUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		currencyRepo: currencyRepo,
		resources:    resources,
		combinations: combinations,
		measures:     measures,
		currencies:   currencies,
		formatter:    formatter,
		now:          time.Now,
	}
}

// Quote cotiza la cantidad pedida del producto en la tienda indicada.
// Devuelve nil si el producto no existe.
func (uc *PricingUseCase) Quote(productID, storeID string, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if in.Quantity < 1 {
		return nil, fmt.Errorf("%w: la cantidad debe ser >= 1", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("cargar producto: %w", err)
	}
	if product == nil {
		return nil, nil
	}

	customer, err := uc.loadCustomer(in.CustomerID)
	if err != nil {
		return nil, err
	}

	workingCurrency, err := uc.workingCurrency(in.CurrencyCode)
	if err != nil {
		return nil, err
	}

	tier, err := domaincatalog.PreferredTierPrice(product, customer, storeID, in.Quantity, uc.now())
	if err != nil {
		return nil, err
	}
	unitPrice := product.Price
	tierQuantity := 0
	if tier != nil {
		unitPrice = tier.Price
		tierQuantity = tier.Quantity
	}

	periods := 1
	if product.IsRental {
		if in.RentalStart == nil || in.RentalEnd == nil {
			return nil, fmt.Errorf("%w: producto de alquiler requiere fechas de inicio y fin", domain.ErrInvalidInput)
		}
		periods, err = domaincatalog.RentalPeriods(product, *in.RentalStart, *in.RentalEnd)
		if err != nil {
			return nil, err
		}
	}

	// Total en moneda primaria, luego convertido a la moneda de trabajo
	total := unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Mul(decimal.NewFromInt(int64(periods)))
	totalInCurrency := uc.currencies.ConvertFromPrimary(total, workingCurrency)
	totalFormatted := uc.formatter.FormatPrice(totalInCurrency, workingCurrency, true, true)

	basePrice, err := domaincatalog.BasePrice(product, &unitPrice, uc.resources, uc.measures, uc.currencies, workingCurrency, uc.formatter)
	if err != nil {
		return nil, err
	}

	// Identificadores de la combinación seleccionada, si los atributos apuntan a una
	ids, err := domaincatalog.ResolveIdentifiers(product, in.AttributesXML, uc.combinations)
	if err != nil {
		return nil, err
	}

	return &dto.QuoteResponse{
		ProductID:      product.ID,
		SKU:            ids.SKU,
		Quantity:       in.Quantity,
		UnitPrice:      uc.currencies.ConvertFromPrimary(unitPrice, workingCurrency),
		TierQuantity:   tierQuantity,
		RentalPeriods:  periods,
		Total:          totalInCurrency,
		TotalFormatted: totalFormatted,
		BasePrice:      basePrice,
		CurrencyCode:   workingCurrency.CurrencyCode,
	}, nil
}

func (uc *PricingUseCase) loadCustomer(customerID string) (*entity.Customer, error) {
	if customerID == "" {
		return nil, nil
	}
	customer, err := uc.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("cargar cliente: %w", err)
	}
	return customer, nil
}

func (uc *PricingUseCase) workingCurrency(code string) (*entity.Currency, error) {
	if code == "" {
		currency, err := uc.currencyRepo.Primary()
		if err != nil {
			return nil, fmt.Errorf("moneda primaria: %w", err)
		}
		if currency == nil {
			return nil, fmt.Errorf("%w: moneda primaria no configurada", domain.ErrConfiguracion)
		}
		return currency, nil
	}
	currency, err := uc.currencyRepo.GetByCode(code)
	if err != nil {
		return nil, fmt.Errorf("cargar moneda: %w", err)
	}
	if currency == nil {
		return nil, fmt.Errorf("%w: moneda %s no registrada", domain.ErrInvalidInput, code)
	}
	return currency, nil
}
