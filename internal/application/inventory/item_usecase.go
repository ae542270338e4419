package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/textutil"
)

// ItemUseCase casos de uso del catálogo de inventario. El alta escribe el
// artículo y su entrada inicial del historial en una sola transacción; la
// edición manual aplica semántica merge y convierte el cambio de cantidad en
// un ajuste de delta único, de modo que el invariante del historial
// (Σ quantity_change == quantity) se conserva en todo momento.
type ItemUseCase struct {
	tx       TxRunner
	itemRepo repository.ItemRepository // lecturas fuera de transacción
	histRepo repository.HistoryRepository
	exec     *retry.Executor
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	tx TxRunner,
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
	exec *retry.Executor,
) *ItemUseCase {
	return &ItemUseCase{tx: tx, itemRepo: itemRepo, histRepo: histRepo, exec: exec}
}

// Create registra un artículo nuevo con su entrada initial_stock.
// El ID puede ser un SKU/código de barras del caller o se genera un UUID.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Name == "" || in.Quantity < 0 {
		return nil, fmt.Errorf("nombre vacío o cantidad negativa: %w", domain.ErrInvalidInput)
	}
	if in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}
	if in.MinStockAlert != nil && *in.MinStockAlert < 0 {
		return nil, fmt.Errorf("umbral de alerta negativo: %w", domain.ErrInvalidInput)
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}

	existing, err := retry.DoValue(ctx, uc.exec, "consultar artículo", func(ctx context.Context) (*entity.Item, error) {
		return uc.itemRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("el ID %q ya existe: %w", id, domain.ErrDuplicate)
	}

	details := in.Details
	if details == "" {
		details = "Artículo creado en el sistema."
	}

	now := time.Now().UTC()
	item := &entity.Item{
		ID:            id,
		Name:          in.Name,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		MinStockAlert: in.MinStockAlert,
		SupplierID:    in.SupplierID,
		SupplierName:  in.SupplierName,
		UpdatedAt:     now,
	}

	err = uc.exec.Do(ctx, "crear artículo", func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, histRepo repository.HistoryRepository) error {
			if err := itemRepo.Create(ctx, item); err != nil {
				return err
			}
			return histRepo.Append(ctx, &entity.HistoryEntry{
				ID:             uuid.New().String(),
				ItemID:         item.ID,
				Timestamp:      now,
				Type:           entity.HistoryTypeInitialStock,
				QuantityChange: item.Quantity,
				Details:        details,
			})
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// Update edición manual con semántica merge: los campos ausentes del request
// se conservan tal cual. Un cambio de cantidad se registra como un ajuste
// manual de delta único sobre la fila bloqueada.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("cantidad negativa: %w", domain.ErrInvalidInput)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("nombre vacío: %w", domain.ErrInvalidInput)
	}
	if (in.PurchasePrice != nil && in.PurchasePrice.IsNegative()) ||
		(in.SalePrice != nil && in.SalePrice.IsNegative()) {
		return nil, fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}
	if in.MinStockAlert != nil && *in.MinStockAlert < 0 {
		return nil, fmt.Errorf("umbral de alerta negativo: %w", domain.ErrInvalidInput)
	}

	var updated *entity.Item
	err := uc.exec.Do(ctx, "actualizar artículo", func(ctx context.Context) error {
		return uc.tx.Run(ctx, func(itemRepo repository.ItemRepository, histRepo repository.HistoryRepository) error {
			item, err := itemRepo.GetForUpdate(ctx, id)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}

			applyMerge(item, in)

			now := time.Now().UTC()
			var delta int64
			if in.Quantity != nil {
				delta = *in.Quantity - item.Quantity
				item.Quantity = *in.Quantity
			}
			item.UpdatedAt = now
			if err := itemRepo.Update(ctx, item); err != nil {
				return err
			}

			if delta != 0 {
				details := in.Details
				if details == "" {
					details = "Artículo actualizado manualmente."
				}
				if err := histRepo.Append(ctx, &entity.HistoryEntry{
					ID:             uuid.New().String(),
					ItemID:         item.ID,
					Timestamp:      now,
					Type:           entity.HistoryTypeManualAdjustment,
					QuantityChange: delta,
					Details:        details,
				}); err != nil {
					return err
				}
			}
			updated = item
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// applyMerge sobrescribe solo los campos presentes (excepto Quantity, que se
// maneja como delta en Update).
func applyMerge(item *entity.Item, in dto.UpdateItemRequest) {
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.PurchasePrice != nil {
		item.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		item.SalePrice = *in.SalePrice
	}
	if in.MinStockAlert != nil {
		item.MinStockAlert = in.MinStockAlert
	}
	if in.SupplierID != nil {
		item.SupplierID = in.SupplierID
	}
	if in.SupplierName != nil {
		item.SupplierName = in.SupplierName
	}
}

// Get obtiene un artículo por ID (SKU o código de barras).
func (uc *ItemUseCase) Get(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := retry.DoValue(ctx, uc.exec, "consultar artículo", func(ctx context.Context) (*entity.Item, error) {
		return uc.itemRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// List devuelve los artículos ordenados por nombre. Con search no vacío
// filtra por nombre o ID ignorando mayúsculas y acentos.
func (uc *ItemUseCase) List(ctx context.Context, search string) ([]dto.ItemResponse, error) {
	items, err := retry.DoValue(ctx, uc.exec, "listar inventario", func(ctx context.Context) ([]*entity.Item, error) {
		return uc.itemRepo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		if search != "" && !textutil.ContainsFold(item.Name, search) && !textutil.ContainsFold(item.ID, search) {
			continue
		}
		out = append(out, *toItemResponse(item))
	}
	return out, nil
}

// History devuelve el historial completo de un artículo, ascendente por fecha.
func (uc *ItemUseCase) History(ctx context.Context, id string) ([]dto.HistoryEntryResponse, error) {
	item, err := retry.DoValue(ctx, uc.exec, "consultar artículo", func(ctx context.Context) (*entity.Item, error) {
		return uc.itemRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	entries, err := retry.DoValue(ctx, uc.exec, "consultar historial", func(ctx context.Context) ([]*entity.HistoryEntry, error) {
		return uc.histRepo.ListByItem(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HistoryEntryResponse{
			ID:             e.ID,
			Timestamp:      e.Timestamp,
			Type:           e.Type,
			QuantityChange: e.QuantityChange,
			Details:        e.Details,
		})
	}
	return out, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Quantity:      item.Quantity,
		PurchasePrice: item.PurchasePrice,
		SalePrice:     item.SalePrice,
		MinStockAlert: item.MinStockAlert,
		SupplierID:    item.SupplierID,
		SupplierName:  item.SupplierName,
		UpdatedAt:     item.UpdatedAt,
	}
}
