package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	"github.com/smartstock/pos-api/internal/domain/money"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// ProcessSaleUseCase cierra un carrito del POS en una sola transacción:
// valida stock, lo descuenta, registra un movimiento por línea, asigna el
// número de factura y persiste cabecera y líneas. Cualquier fallo hace
// rollback completo (equivalente al procedimiento process_sale del backend
// original).
type ProcessSaleUseCase struct {
	txRunner     TxRunner
	numberSource InvoiceNumberSource
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(txRunner TxRunner, numberSource InvoiceNumberSource) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner, numberSource: numberSource}
}

// Process procesa el carrito y devuelve la venta creada.
func (uc *ProcessSaleUseCase) Process(ctx context.Context, userID string, in dto.ProcessSaleRequest) (*dto.SaleResponse, error) {
	if in.CustomerName == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.ItemID == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotal = subtotal.Add(item.TotalPrice)
	}

	// Invariante que el generador de facturas asume sin verificar:
	// total == subtotal - descuento + impuesto. Se verifica aquí, en el
	// único punto de escritura.
	wantTotal := money.Round(subtotal.Sub(in.DiscountAmount).Add(in.TaxAmount))
	if !money.Round(in.TotalAmount).Equal(wantTotal) {
		return nil, fmt.Errorf("%w: el total no cuadra con subtotal, descuento e impuesto", domain.ErrInvalidInput)
	}

	settings, err := uc.numberSource.InvoiceSettings()
	if err != nil {
		settings = entity.DefaultInvoiceSettings()
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:              uuid.New().String(),
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		Subtotal:        money.Round(subtotal),
		DiscountAmount:  money.Round(in.DiscountAmount),
		TaxRate:         in.TaxRate,
		TaxAmount:       money.Round(in.TaxAmount),
		TotalAmount:     decimal.NewNullDecimal(wantTotal),
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   in.PaymentStatus,
		Notes:           in.Notes,
		CreatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if sale.PaymentStatus == "" {
		sale.PaymentStatus = entity.PaymentStatusPaid
	}

	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Consecutivo de factura dentro de la tx. El lock serializa la
		// numeración: sin él, dos checkouts concurrentes leen el mismo
		// Count y uno muere contra el índice único de invoice_number.
		if err := saleRepo.LockNumbering(); err != nil {
			return err
		}
		count, err := saleRepo.Count()
		if err != nil {
			return fmt.Errorf("contar ventas: %w", err)
		}
		sale.InvoiceNumber = fmt.Sprintf("%s-%d", settings.Prefix, settings.StartNumber+count)

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, line := range in.Items {
			item, err := itemRepo.GetByID(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			if item.Quantity < line.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty := item.Quantity - line.Quantity
			if err := itemRepo.SetQuantity(item.ID, newQty); err != nil {
				return err
			}
			if err := txnRepo.Create(&entity.InventoryTransaction{
				ID:               uuid.New().String(),
				ItemID:           item.ID,
				TransactionType:  entity.TransactionSale,
				Quantity:         -line.Quantity,
				PreviousQuantity: item.Quantity,
				NewQuantity:      newQty,
				UnitCost:         item.Cost,
				TotalCost:        item.Cost.Mul(decimal.NewFromInt(line.Quantity)),
				ReferenceNumber:  sale.InvoiceNumber,
				CreatedBy:        userID,
				CreatedAt:        now,
			}); err != nil {
				return err
			}
			if err := saleRepo.CreateItem(&entity.SaleItem{
				ID:         uuid.New().String(),
				SaleID:     sale.ID,
				ItemID:     item.ID,
				ItemName:   item.Name,
				ItemSKU:    item.SKU,
				Quantity:   line.Quantity,
				UnitPrice:  money.Round(line.UnitPrice),
				TotalPrice: money.Round(line.TotalPrice),
				CreatedAt:  now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, nil), nil
}
