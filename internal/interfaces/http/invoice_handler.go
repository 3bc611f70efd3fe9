package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/pos-api/internal/application/billing"
	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
)

// InvoiceHandler entrega la factura PDF de una venta, como descarga o para
// imprimir en el navegador.
type InvoiceHandler struct {
	uc *billing.InvoicePDFUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoicePDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Download genera el PDF y lo entrega como attachment.
// GET /api/sales/:id/invoice/download
func (h *InvoiceHandler) Download(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	data, filename, err := h.uc.DownloadInvoice(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Print genera el PDF y lo entrega inline para que el navegador abra el
// diálogo de impresión.
// GET /api/sales/:id/invoice/print
func (h *InvoiceHandler) Print(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	data, err := h.uc.PrintInvoice(c.Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, "inline")
	return c.Send(data)
}

func (h *InvoiceHandler) mapError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_SALE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_GENERATION", Message: "no se pudo generar la factura"})
}
