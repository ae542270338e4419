package inventory_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional para los tests
// ──────────────────────────────────────────────────────────────────────────────

// memStore guarda artículos e historial. El TxRunner de test trabaja sobre una
// copia y solo la publica si el callback termina sin error, reproduciendo el
// commit/rollback real.
type memStore struct {
	mu      sync.Mutex
	items   map[string]*entity.Item
	history []*entity.HistoryEntry
}

func newMemStore(items ...*entity.Item) *memStore {
	s := &memStore{items: make(map[string]*entity.Item)}
	for _, it := range items {
		copied := *it
		s.items[it.ID] = &copied
	}
	return s
}

func (s *memStore) snapshot() *memStore {
	clone := &memStore{items: make(map[string]*entity.Item, len(s.items))}
	for id, it := range s.items {
		copied := *it
		clone.items[id] = &copied
	}
	clone.history = append(clone.history, s.history...)
	return clone
}

func (s *memStore) item(id string) *entity.Item {
	return s.items[id]
}

func (s *memStore) historyFor(itemID string) []*entity.HistoryEntry {
	var out []*entity.HistoryEntry
	for _, e := range s.history {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out
}

// sumChanges devuelve Σ quantity_change del historial de un artículo.
func (s *memStore) sumChanges(itemID string) int64 {
	var sum int64
	for _, e := range s.historyFor(itemID) {
		sum += e.QuantityChange
	}
	return sum
}

// ── Repositorios fake ─────────────────────────────────────────────────────────

type memItemRepo struct{ s *memStore }

var _ repository.ItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	copied := *item
	r.s.items[item.ID] = &copied
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	it, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	copied := *it
	return &copied, nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		copied := *it
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	copied := *item
	r.s.items[item.ID] = &copied
	return nil
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64, updatedAt time.Time) error {
	it := r.s.items[id]
	it.Quantity = quantity
	it.UpdatedAt = updatedAt
	return nil
}

type memHistRepo struct{ s *memStore }

var _ repository.HistoryRepository = (*memHistRepo)(nil)

func (r *memHistRepo) Append(_ context.Context, entry *entity.HistoryEntry) error {
	copied := *entry
	r.s.history = append(r.s.history, &copied)
	return nil
}

func (r *memHistRepo) ListByItem(_ context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	return r.s.historyFor(itemID), nil
}

// ── TxRunner fake ─────────────────────────────────────────────────────────────

// memTxRunner ejecuta el callback sobre una copia del almacén y solo publica
// los cambios si no hubo error. failBefore inyecta errores en los primeros N
// intentos para probar los reintentos por conflicto.
type memTxRunner struct {
	s          *memStore
	failBefore int
	failWith   error
	attempts   int
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.attempts++
	if r.attempts <= r.failBefore {
		return r.failWith
	}
	working := r.s.snapshot()
	if err := fn(&memItemRepo{s: working}, &memHistRepo{s: working}); err != nil {
		return err
	}
	r.s.items = working.items
	r.s.history = working.history
	return nil
}

// ── Helpers comunes ───────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// fastExecutor ejecutor sin esperas apreciables para tests unitarios.
func fastExecutor() *retry.Executor {
	return retry.New(retry.Policy{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		Multiplier:   2,
	}, nil)
}

func ptrInt64(v int64) *int64 { return &v }
