package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appcatalog "github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

// CatalogHandler expone la resolución de disponibilidad y la cotización de
// precios de un producto.
type CatalogHandler struct {
	availability *appcatalog.AvailabilityUseCase
	pricing      *appcatalog.PricingUseCase
}

// NewCatalogHandler construye el handler del catálogo.
func NewCatalogHandler(availability *appcatalog.AvailabilityUseCase, pricing *appcatalog.PricingUseCase) *CatalogHandler {
	return &CatalogHandler{availability: availability, pricing: pricing}
}

// GetAvailability godoc
// @Summary      Disponibilidad de un producto
// @Description  Mensaje de stock, cantidad total, SKU/MPN/GTIN resueltos y cantidades permitidas para una selección de atributos.
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        id            path   string  true   "ID del producto"
// @Param        attributes    query  string  false  "Selección de atributos en XML"
// @Param        warehouse_id  query  string  false  "Limitar stock a una bodega"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/availability [get]
func (h *CatalogHandler) GetAvailability(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	in := dto.AvailabilityRequest{
		AttributesXML: c.Query("attributes"),
		WarehouseID:   c.Query("warehouse_id"),
	}
	out, err := h.availability.GetAvailability(id, in)
	if err != nil {
		return catalogError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Quote godoc
// @Summary      Cotizar un producto
// @Description  Precio unitario efectivo (precio por volumen aplicado), períodos de alquiler, total en la moneda de trabajo y precio base.
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.QuoteRequest  true  "Cantidad, cliente, moneda y fechas de alquiler"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/quote [post]
func (h *CatalogHandler) Quote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	storeID := GetStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.pricing.Quote(id, storeID, in)
	if err != nil {
		return catalogError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// catalogError mapea errores de dominio del resolver a códigos HTTP.
func catalogError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConfiguracion):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_CONFIG", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
