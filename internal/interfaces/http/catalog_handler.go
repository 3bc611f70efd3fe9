package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/application/inventory"
	"github.com/smartstock/pos-api/internal/domain"
)

// CatalogHandler maneja categorías y proveedores del catálogo.
type CatalogHandler struct {
	uc *inventory.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *inventory.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory da de alta una categoría.
// POST /api/categories
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cat, err := h.uc.CreateCategory(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cat)
}

// ListCategories devuelve todas las categorías.
// GET /api/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.uc.ListCategories()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(cats)
}

// CreateSupplier da de alta un proveedor.
// POST /api/suppliers
func (h *CatalogHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sup, err := h.uc.CreateSupplier(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(sup)
}

// ListSuppliers devuelve todos los proveedores.
// GET /api/suppliers
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	sups, err := h.uc.ListSuppliers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sups)
}
