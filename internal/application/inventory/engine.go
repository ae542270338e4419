package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	domaininv "github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// maxConflictRetries reintentos internos ante conflictos de concurrencia
// (serialización/deadlock). Independiente de la política de reintentos de red.
const maxConflictRetries = 3

// LineDelta es un cambio de cantidad con signo solicitado para un artículo
// dentro de un mismo evento de negocio.
type LineDelta struct {
	ItemID string
	Delta  int64
}

// AdjustmentResult artículos actualizados y alertas de stock bajo del evento.
type AdjustmentResult struct {
	Items  []*entity.Item
	Alerts []string
}

// Engine aplica ajustes multi-línea de stock como unidades atómicas: o todas
// las líneas se aplican, o ninguna. Ninguna cantidad queda negativa y cada
// línea aplicada deja exactamente una entrada en el historial del artículo.
type Engine struct {
	tx   TxRunner
	exec *retry.Executor
	log  *logger.Logger
}

// NewEngine construye el motor.
func NewEngine(tx TxRunner, exec *retry.Executor, log *logger.Logger) *Engine {
	return &Engine{tx: tx, exec: exec, log: log}
}

// ApplyAdjustment ejecuta el ajuste en su propia transacción. Un fallo
// transitorio del almacén pasa por el ejecutor de reintentos con backoff: la
// transacción revertida se puede volver a ejecutar sin efectos duplicados.
// Ante un conflicto de concurrencia reintenta el evento completo hasta
// maxConflictRetries veces; los rechazos de negocio (stock insuficiente)
// nunca se reintentan.
func (e *Engine) ApplyAdjustment(
	ctx context.Context,
	eventID, entryType, details string,
	deltas []LineDelta,
) (*AdjustmentResult, error) {
	if err := validateDeltas(deltas); err != nil {
		return nil, err
	}

	var result *AdjustmentResult
	for attempt := 1; ; attempt++ {
		err := e.exec.Do(ctx, "ajuste de stock", func(ctx context.Context) error {
			return e.tx.Run(ctx, func(
				itemRepo repository.ItemRepository,
				histRepo repository.HistoryRepository,
			) error {
				r, err := e.ApplyAdjustmentInTx(ctx, itemRepo, histRepo, eventID, entryType, details, deltas)
				if err != nil {
					return err
				}
				result = r
				return nil
			})
		})
		if err == nil {
			return result, nil
		}
		if errors.Is(err, domain.ErrConcurrentModification) && attempt < maxConflictRetries {
			e.log.Warn().
				Str("evento", eventID).
				Int("intento", attempt).
				Msg("conflicto de concurrencia en ajuste de stock, reintentando")
			continue
		}
		return nil, err
	}
}

// ApplyAdjustmentInTx ejecuta el ajuste usando repositorios ya atados a la
// transacción del caller (para que completar un pedido cambie estado y stock
// en una sola tx). El caller es responsable del Commit/Rollback y de los
// reintentos por conflicto.
func (e *Engine) ApplyAdjustmentInTx(
	ctx context.Context,
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
	eventID, entryType, details string,
	deltas []LineDelta,
) (*AdjustmentResult, error) {
	if err := validateDeltas(deltas); err != nil {
		return nil, err
	}

	// Agregar líneas duplicadas por artículo y ordenar por ID: bloquear las
	// filas siempre en el mismo orden evita deadlocks entre eventos que
	// comparten artículos, y eventos con conjuntos disjuntos no se bloquean.
	merged := make(map[string]int64, len(deltas))
	ids := make([]string, 0, len(deltas))
	for _, d := range deltas {
		if _, seen := merged[d.ItemID]; !seen {
			ids = append(ids, d.ItemID)
		}
		merged[d.ItemID] += d.Delta
	}
	sort.Strings(ids)

	// 1. Leer y bloquear el estado actual de cada artículo referenciado.
	items := make(map[string]*entity.Item, len(ids))
	for _, id := range ids {
		item, err := itemRepo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("artículo %q: %w", id, domain.ErrNotFound)
		}
		items[id] = item
	}

	// 2. Verificar no-negatividad en TODAS las líneas antes de escribir nada.
	var shortages []domain.StockShortage
	for _, id := range ids {
		delta := merged[id]
		item := items[id]
		if delta < 0 && item.Quantity+delta < 0 {
			shortages = append(shortages, domain.StockShortage{
				ItemID:    item.ID,
				Name:      item.Name,
				Available: item.Quantity,
				Requested: -delta,
			})
		}
	}
	if len(shortages) > 0 {
		return nil, &domain.InsufficientStockError{Shortages: shortages}
	}

	// 3. Aplicar las nuevas cantidades y registrar una entrada de historial
	//    por línea, todo dentro de la misma transacción.
	now := time.Now().UTC()
	updated := make([]*entity.Item, 0, len(ids))
	for _, id := range ids {
		item := items[id]
		item.Quantity += merged[id]
		item.UpdatedAt = now
		if err := itemRepo.UpdateQuantity(ctx, item.ID, item.Quantity, now); err != nil {
			return nil, err
		}
		entry := &entity.HistoryEntry{
			ID:             uuid.New().String(),
			ItemID:         item.ID,
			Timestamp:      now,
			Type:           entryType,
			QuantityChange: merged[id],
			Details:        details,
		}
		if err := histRepo.Append(ctx, entry); err != nil {
			return nil, err
		}
		updated = append(updated, item)
	}

	e.log.Info().
		Str("evento", eventID).
		Str("tipo", entryType).
		Int("lineas", len(ids)).
		Msg("ajuste de stock aplicado")

	// 4. Detectar stock bajo sobre el estado post-ajuste (función pura).
	return &AdjustmentResult{
		Items:  updated,
		Alerts: domaininv.DetectLowStock(updated),
	}, nil
}

func validateDeltas(deltas []LineDelta) error {
	if len(deltas) == 0 {
		return fmt.Errorf("ajuste sin líneas: %w", domain.ErrInvalidInput)
	}
	for _, d := range deltas {
		if d.ItemID == "" || d.Delta == 0 {
			return fmt.Errorf("línea con artículo vacío o delta cero: %w", domain.ErrInvalidInput)
		}
	}
	return nil
}
