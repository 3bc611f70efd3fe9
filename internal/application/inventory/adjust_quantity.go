package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartstock/pos-api/internal/application/dto"
	"github.com/smartstock/pos-api/internal/domain"
	"github.com/smartstock/pos-api/internal/domain/entity"
	invdomain "github.com/smartstock/pos-api/internal/domain/inventory"
	"github.com/smartstock/pos-api/internal/domain/money"
	"github.com/smartstock/pos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye el repo
// de artículos y el log de movimientos. Si fn retorna error, se hace rollback:
// el ajuste de stock y su registro son atómicos (equivalente al procedimiento
// update_inventory_quantity del backend original).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}

// tipos de transacción permitidos para ajustes manuales; "sale" queda
// reservado al checkout.
var manualTransactionTypes = map[string]bool{
	entity.TransactionStockIn:    true,
	entity.TransactionStockOut:   true,
	entity.TransactionAdjustment: true,
	entity.TransactionTransfer:   true,
}

// AdjustQuantity aplica un cambio de stock con signo y registra el movimiento
// en la misma transacción. El stock resultante nunca puede quedar negativo.
func (uc *UseCase) AdjustQuantity(ctx context.Context, userID string, in dto.AdjustQuantityRequest) (*dto.TransactionResponse, error) {
	if in.ItemID == "" {
		return nil, fmt.Errorf("%w: item_id es obligatorio", domain.ErrInvalidInput)
	}
	if in.QuantityChange == 0 {
		return nil, fmt.Errorf("%w: el cambio de cantidad no puede ser cero", domain.ErrInvalidInput)
	}
	if !manualTransactionTypes[in.TransactionType] {
		return nil, fmt.Errorf("%w: tipo de transacción inválido %q", domain.ErrInvalidInput, in.TransactionType)
	}

	var result *entity.InventoryTransaction
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		txnRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		prevQty := item.Quantity
		newQty := prevQty + in.QuantityChange
		if newQty < 0 {
			return fmt.Errorf("%w: el ajuste dejaría el stock en %d", domain.ErrInsufficientStock, newQty)
		}
		if err := itemRepo.SetQuantity(item.ID, newQty); err != nil {
			return err
		}

		unitCost := in.UnitCost
		if unitCost.IsZero() {
			unitCost = item.Cost
		}

		// Una entrada con costo explícito recalcula el costo promedio
		// ponderado del artículo.
		if in.TransactionType == entity.TransactionStockIn && in.QuantityChange > 0 && !in.UnitCost.IsZero() {
			item.Cost = money.Round(invdomain.AverageCost(prevQty, item.Cost, in.QuantityChange, in.UnitCost))
			item.UpdatedAt = time.Now()
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}

		txn := &entity.InventoryTransaction{
			ID:               uuid.New().String(),
			ItemID:           item.ID,
			TransactionType:  in.TransactionType,
			Quantity:         in.QuantityChange,
			PreviousQuantity: prevQty,
			NewQuantity:      newQty,
			UnitCost:         unitCost,
			TotalCost:        unitCost.Mul(decimal.NewFromInt(abs(in.QuantityChange))),
			ReferenceNumber:  in.ReferenceNumber,
			Notes:            in.Notes,
			CreatedBy:        userID,
			CreatedAt:        time.Now(),
		}
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		result = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(result), nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
