// Package orders implementa el ciclo de vida de pedidos: creación con precio
// congelado, completado atómico (estado + descuento de stock en una sola
// transacción), cancelación y ventas directas sin pedido previo.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/ports"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// maxConflictRetries reintentos ante conflictos de concurrencia al completar.
const maxConflictRetries = 3

// TxRunner ejecuta una función dentro de una transacción que abarca pedidos,
// artículos e historial. Completar un pedido necesita las tres tablas bajo la
// misma tx.
type TxRunner interface {
	RunOrder(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		histRepo repository.HistoryRepository,
		orderRepo repository.OrderRepository,
	) error) error
}

// Lifecycle casos de uso de pedidos y ventas directas.
type Lifecycle struct {
	tx        TxRunner
	orderRepo repository.OrderRepository // lecturas fuera de transacción
	itemRepo  repository.ItemRepository
	engine    *inventory.Engine
	notifier  ports.Notifier
	exec      *retry.Executor
	log       *logger.Logger
}

// NewLifecycle construye el caso de uso.
func NewLifecycle(
	tx TxRunner,
	orderRepo repository.OrderRepository,
	itemRepo repository.ItemRepository,
	engine *inventory.Engine,
	notifier ports.Notifier,
	exec *retry.Executor,
	log *logger.Logger,
) *Lifecycle {
	return &Lifecycle{
		tx:        tx,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		engine:    engine,
		notifier:  notifier,
		exec:      exec,
		log:       log,
	}
}

// Create registra un pedido en estado processing. El stock NO se toca aquí:
// solo se descuenta al completar. El precio se congela a la suma de
// sale_price × cantidad de cada línea al momento de crear.
func (uc *Lifecycle) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("pedido sin líneas: %w", domain.ErrInvalidInput)
	}
	for _, l := range in.Lines {
		if l.ItemID == "" || l.Quantity <= 0 {
			return nil, fmt.Errorf("línea con artículo vacío o cantidad no positiva: %w", domain.ErrInvalidInput)
		}
	}

	// Resolver nombre y precio vigente de cada línea.
	total := decimal.Zero
	lines := make([]entity.OrderLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		item, err := retry.DoValue(ctx, uc.exec, "consultar artículo", func(ctx context.Context) (*entity.Item, error) {
			return uc.itemRepo.GetByID(ctx, l.ItemID)
		})
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("artículo %q: %w", l.ItemID, domain.ErrNotFound)
		}
		total = total.Add(item.SalePrice.Mul(decimal.NewFromInt(l.Quantity)))
		lines = append(lines, entity.OrderLine{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: l.Quantity,
		})
	}

	order := &entity.Order{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Price:       total,
		Ingredients: lines,
		Status:      entity.OrderStatusProcessing,
		Timestamp:   time.Now().UTC(),
	}
	// El consecutivo del título por defecto se resuelve dentro de la misma
	// transacción del insert, para que dos creaciones simultáneas no acuñen
	// el mismo "Pedido #N".
	if err := uc.exec.Do(ctx, "crear pedido", func(ctx context.Context) error {
		return uc.tx.RunOrder(ctx, func(
			_ repository.ItemRepository,
			_ repository.HistoryRepository,
			orderRepo repository.OrderRepository,
		) error {
			if in.Title == "" {
				n, err := orderRepo.Count(ctx)
				if err != nil {
					return err
				}
				order.Title = fmt.Sprintf("Pedido #%d", n+1)
			}
			return orderRepo.Create(ctx, order)
		})
	}); err != nil {
		return nil, err
	}

	uc.notify(ctx, fmt.Sprintf("🧾 Nuevo Pedido: %s por $%s", order.Title, order.Price.StringFixed(2)))
	return toOrderResponse(order), nil
}

// Complete transiciona un pedido processing → completed y descuenta el stock
// de todas sus líneas en la misma transacción. Si alguna línea dejaría stock
// negativo, nada cambia: ni el estado ni las cantidades.
func (uc *Lifecycle) Complete(ctx context.Context, orderID string) (*dto.CompleteOrderResponse, error) {
	var (
		completed *entity.Order
		result    *inventory.AdjustmentResult
	)
	for attempt := 1; ; attempt++ {
		err := uc.exec.Do(ctx, "completar pedido", func(ctx context.Context) error {
			return uc.tx.RunOrder(ctx, func(
				itemRepo repository.ItemRepository,
				histRepo repository.HistoryRepository,
				orderRepo repository.OrderRepository,
			) error {
				order, err := orderRepo.GetForUpdate(ctx, orderID)
				if err != nil {
					return err
				}
				if order == nil {
					return domain.ErrNotFound
				}
				if order.Status != entity.OrderStatusProcessing {
					return fmt.Errorf("el pedido %q está %s: %w", order.Title, order.Status, domain.ErrInvalidState)
				}

				deltas := make([]inventory.LineDelta, 0, len(order.Ingredients))
				for _, l := range order.Ingredients {
					deltas = append(deltas, inventory.LineDelta{ItemID: l.ID, Delta: -l.Quantity})
				}
				r, err := uc.engine.ApplyAdjustmentInTx(
					ctx, itemRepo, histRepo,
					order.ID, entity.HistoryTypeOrderCompletion,
					fmt.Sprintf("Pedido completado: %s", order.Title),
					deltas,
				)
				if err != nil {
					return err
				}
				if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCompleted); err != nil {
					return err
				}
				order.Status = entity.OrderStatusCompleted
				completed = order
				result = r
				return nil
			})
		})
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrConcurrentModification) && attempt < maxConflictRetries {
			uc.log.Warn().
				Str("pedido", orderID).
				Int("intento", attempt).
				Msg("conflicto de concurrencia al completar pedido, reintentando")
			continue
		}
		return nil, err
	}

	uc.notify(ctx, fmt.Sprintf("✅ Pedido Completado: %s por $%s", completed.Title, completed.Price.StringFixed(2)))
	for _, alert := range result.Alerts {
		uc.log.Warn().Str("pedido", completed.ID).Msg("stock bajo: " + alert)
		uc.notify(ctx, "⚠️ Alerta de Stock Bajo - "+alert)
	}

	return &dto.CompleteOrderResponse{
		Order:  *toOrderResponse(completed),
		Alerts: result.Alerts,
	}, nil
}

// Cancel transiciona processing → cancelled. No hay stock que revertir porque
// el stock solo se descuenta al completar.
func (uc *Lifecycle) Cancel(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	var cancelled *entity.Order
	err := uc.exec.Do(ctx, "cancelar pedido", func(ctx context.Context) error {
		return uc.tx.RunOrder(ctx, func(
			_ repository.ItemRepository,
			_ repository.HistoryRepository,
			orderRepo repository.OrderRepository,
		) error {
			order, err := orderRepo.GetForUpdate(ctx, orderID)
			if err != nil {
				return err
			}
			if order == nil {
				return domain.ErrNotFound
			}
			if order.Status != entity.OrderStatusProcessing {
				return fmt.Errorf("el pedido %q está %s: %w", order.Title, order.Status, domain.ErrInvalidState)
			}
			if err := orderRepo.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled); err != nil {
				return err
			}
			order.Status = entity.OrderStatusCancelled
			cancelled = order
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	uc.notify(ctx, fmt.Sprintf("❌ Pedido Cancelado: %s", cancelled.Title))
	return toOrderResponse(cancelled), nil
}

// List devuelve pedidos filtrados por estado (vacío = todos), más recientes
// primero.
func (uc *Lifecycle) List(ctx context.Context, status string) ([]dto.OrderResponse, error) {
	switch status {
	case "", entity.OrderStatusProcessing, entity.OrderStatusCompleted, entity.OrderStatusCancelled:
	default:
		return nil, fmt.Errorf("estado %q desconocido: %w", status, domain.ErrInvalidInput)
	}
	list, err := retry.DoValue(ctx, uc.exec, "listar pedidos", func(ctx context.Context) ([]*entity.Order, error) {
		return uc.orderRepo.ListByStatus(ctx, status)
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out, nil
}

// Get obtiene un pedido por ID.
func (uc *Lifecycle) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := retry.DoValue(ctx, uc.exec, "consultar pedido", func(ctx context.Context) (*entity.Order, error) {
		return uc.orderRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// ProcessDirectSale descuenta stock de inmediato sin pedido previo (salida
// rápida por escáner de barras). Un solo ajuste atómico multi-línea con tipo
// direct_sale.
func (uc *Lifecycle) ProcessDirectSale(ctx context.Context, in dto.DirectSaleRequest) (*dto.DirectSaleResponse, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("venta sin líneas: %w", domain.ErrInvalidInput)
	}
	deltas := make([]inventory.LineDelta, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.ItemID == "" || l.Quantity <= 0 {
			return nil, fmt.Errorf("línea con artículo vacío o cantidad no positiva: %w", domain.ErrInvalidInput)
		}
		deltas = append(deltas, inventory.LineDelta{ItemID: l.ItemID, Delta: -l.Quantity})
	}

	saleID := "VentaDirecta-" + time.Now().UTC().Format("20060102-150405")
	result, err := uc.engine.ApplyAdjustment(
		ctx, saleID, entity.HistoryTypeDirectSale,
		fmt.Sprintf("Venta directa %s", saleID),
		deltas,
	)
	if err != nil {
		return nil, err
	}

	// Total con los precios de venta vigentes de los artículos descontados.
	byID := make(map[string]*entity.Item, len(result.Items))
	for _, item := range result.Items {
		byID[item.ID] = item
	}
	total := decimal.Zero
	for _, l := range in.Lines {
		if item, ok := byID[l.ItemID]; ok {
			total = total.Add(item.SalePrice.Mul(decimal.NewFromInt(l.Quantity)))
		}
	}

	uc.notify(ctx, fmt.Sprintf("🛒 Venta Directa registrada por $%s", total.StringFixed(2)))
	for _, alert := range result.Alerts {
		uc.log.Warn().Str("venta", saleID).Msg("stock bajo: " + alert)
		uc.notify(ctx, "⚠️ Alerta de Stock Bajo - "+alert)
	}

	return &dto.DirectSaleResponse{
		SaleID: saleID,
		Total:  total,
		Alerts: result.Alerts,
	}, nil
}

// notify envía la alerta y descarta el error: el canal de notificaciones nunca
// bloquea ni revierte una operación de negocio.
func (uc *Lifecycle) notify(ctx context.Context, message string) {
	if uc.notifier == nil || !uc.notifier.Enabled() {
		return
	}
	if err := uc.notifier.Send(ctx, message); err != nil {
		uc.log.Warn().Err(err).Msg("no se pudo enviar la notificación")
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(o.Ingredients))
	for _, l := range o.Ingredients {
		lines = append(lines, dto.OrderLineResponse{
			ItemID:   l.ID,
			Name:     l.Name,
			Quantity: l.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		Title:     o.Title,
		Price:     o.Price,
		Lines:     lines,
		Status:    o.Status,
		Timestamp: o.Timestamp,
	}
}
