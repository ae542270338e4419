package orders_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/orders"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con commit/rollback para pedidos, artículos e historial
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu      sync.Mutex
	items   map[string]*entity.Item
	history []*entity.HistoryEntry
	orders  map[string]*entity.Order
}

func newMemStore() *memStore {
	return &memStore{
		items:  make(map[string]*entity.Item),
		orders: make(map[string]*entity.Order),
	}
}

func (s *memStore) addItem(id, name string, quantity int64, salePrice int64, minAlert *int64) {
	s.items[id] = &entity.Item{
		ID: id, Name: name, Quantity: quantity,
		PurchasePrice: decimal.NewFromInt(salePrice / 2),
		SalePrice:     decimal.NewFromInt(salePrice),
		MinStockAlert: minAlert,
	}
}

func (s *memStore) snapshot() *memStore {
	clone := newMemStore()
	for id, it := range s.items {
		copied := *it
		clone.items[id] = &copied
	}
	clone.history = append(clone.history, s.history...)
	for id, o := range s.orders {
		copied := *o
		clone.orders[id] = &copied
	}
	return clone
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *item
	r.s.items[item.ID] = &copied
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
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
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		copied := *it
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *item
	r.s.items[item.ID] = &copied
	return nil
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it := r.s.items[id]
	it.Quantity = quantity
	it.UpdatedAt = updatedAt
	return nil
}

type memHistRepo struct{ s *memStore }

func (r *memHistRepo) Append(_ context.Context, entry *entity.HistoryEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *entry
	r.s.history = append(r.s.history, &copied)
	return nil
}

func (r *memHistRepo) ListByItem(_ context.Context, itemID string) ([]*entity.HistoryEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.HistoryEntry
	for _, e := range r.s.history {
		if e.ItemID == itemID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	copied := *order
	r.s.orders[order.ID] = &copied
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	copied := *o
	return &copied, nil
}

func (r *memOrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memOrderRepo) ListByStatus(_ context.Context, status string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if status == "" || o.Status == status {
			copied := *o
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *memOrderRepo) ListCompletedInRange(_ context.Context, from, to time.Time) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		if o.Status == entity.OrderStatusCompleted && !o.Timestamp.Before(from) && o.Timestamp.Before(to) {
			copied := *o
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	return nil
}

func (r *memOrderRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.orders), nil
}

// memTxRunner publica los cambios del callback solo si termina sin error.
// failBefore inyecta fallos en los primeros N intentos para probar los
// reintentos transitorios. Las transacciones se serializan con el mutex del
// almacén, igual que harían los locks de fila en la base real.
type memTxRunner struct {
	s          *memStore
	failBefore int
	failWith   error
	attempts   int
}

func (r *memTxRunner) begin() error {
	r.attempts++
	if r.attempts <= r.failBefore {
		return r.failWith
	}
	return nil
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.begin(); err != nil {
		return err
	}
	working := r.s.snapshot()
	if err := fn(&memItemRepo{s: working}, &memHistRepo{s: working}); err != nil {
		return err
	}
	r.s.items = working.items
	r.s.history = working.history
	r.s.orders = working.orders
	return nil
}

func (r *memTxRunner) RunOrder(_ context.Context, fn func(
	itemRepo repository.ItemRepository,
	histRepo repository.HistoryRepository,
	orderRepo repository.OrderRepository,
) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.begin(); err != nil {
		return err
	}
	working := r.s.snapshot()
	if err := fn(&memItemRepo{s: working}, &memHistRepo{s: working}, &memOrderRepo{s: working}); err != nil {
		return err
	}
	r.s.items = working.items
	r.s.history = working.history
	r.s.orders = working.orders
	return nil
}

// fakeNotifier registra los mensajes enviados.
type fakeNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *fakeNotifier) Send(_ context.Context, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *fakeNotifier) Enabled() bool { return true }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newLifecycle(store *memStore) (*orders.Lifecycle, *fakeNotifier) {
	uc, notifier, _ := newLifecycleWithRunner(store)
	return uc, notifier
}

func newLifecycleWithRunner(store *memStore) (*orders.Lifecycle, *fakeNotifier, *memTxRunner) {
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	exec := retry.New(retry.Policy{MaxAttempts: 3, InitialDelay: time.Millisecond, Multiplier: 2}, nil)
	runner := &memTxRunner{s: store}
	engine := inventory.NewEngine(runner, exec, log)
	notifier := &fakeNotifier{}
	uc := orders.NewLifecycle(runner, &memOrderRepo{s: store}, &memItemRepo{s: store}, engine, notifier, exec, log)
	return uc, notifier, runner
}

func ptrInt64(v int64) *int64 { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Creación de pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Caso: crear un pedido congela el precio a la suma de subtotales y NO toca
// el stock.
func TestLifecycle_Create_CongelaPrecioSinTocarStock(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	store.addItem("limon", "Limón", 50, 2, nil)
	uc, notifier := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Title: "Mesa 4",
		Lines: []dto.CreateOrderLine{
			{ItemID: "ron", Quantity: 2},
			{ItemID: "limon", Quantity: 6},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
	assert.True(t, decimal.NewFromInt(192).Equal(order.Price), "2×90 + 6×2 = 192, obtuvo %s", order.Price)
	assert.EqualValues(t, 10, store.items["ron"].Quantity, "crear no descuenta stock")
	assert.Empty(t, store.history)
	require.Len(t, notifier.messages, 1)
	assert.Contains(t, notifier.messages[0], "Nuevo Pedido: Mesa 4")
}

// Caso: sin título se genera "Pedido #N" con el consecutivo.
func TestLifecycle_Create_TituloPorDefecto(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	first, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedido #1", first.Title)

	second, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pedido #2", second.Title)
}

// Caso: dos creaciones simultáneas sin título reciben consecutivos distintos,
// porque el conteo ocurre dentro de la transacción del insert.
func TestLifecycle_Create_Concurrente_TitulosDistintos(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	var wg sync.WaitGroup
	titles := make([]string, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
				Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
			})
			errs[i] = err
			if err == nil {
				titles[i] = order.Title
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.NotEqual(t, titles[0], titles[1], "cada pedido acuña su propio consecutivo")
	assert.ElementsMatch(t, []string{"Pedido #1", "Pedido #2"}, titles)
}

// Casos inválidos: sin líneas, cantidad no positiva, artículo inexistente.
func TestLifecycle_Create_EntradasInvalidas(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "fantasma", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Completar pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Caso: completar descuenta el stock de todas las líneas, cambia el estado y
// deja una entrada order_completion por línea, todo en la misma transacción.
func TestLifecycle_Complete_DescuentaStockYCambiaEstado(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	store.addItem("limon", "Limón", 50, 2, nil)
	uc, notifier := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Title: "Mesa 4",
		Lines: []dto.CreateOrderLine{
			{ItemID: "ron", Quantity: 2},
			{ItemID: "limon", Quantity: 6},
		},
	})
	require.NoError(t, err)

	resp, err := uc.Complete(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, resp.Order.Status)
	assert.EqualValues(t, 8, store.items["ron"].Quantity)
	assert.EqualValues(t, 44, store.items["limon"].Quantity)

	require.Len(t, store.history, 2, "una entrada de historial por línea")
	for _, e := range store.history {
		assert.Equal(t, entity.HistoryTypeOrderCompletion, e.Type)
		assert.Equal(t, "Pedido completado: Mesa 4", e.Details)
	}
	assert.Contains(t, notifier.messages[len(notifier.messages)-1], "Pedido Completado: Mesa 4")
}

// Caso: stock insuficiente en una línea → ni el estado ni las cantidades
// cambian, y el pedido sigue processing para reintentarlo después.
func TestLifecycle_Complete_StockInsuficiente_NadaCambia(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 1, 90, nil)
	uc, _ := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Title: "Mesa 7",
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 3}},
	})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), order.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, entity.OrderStatusProcessing, store.orders[order.ID].Status,
		"el pedido sigue en processing tras el rechazo")
	assert.EqualValues(t, 1, store.items["ron"].Quantity)
	assert.Empty(t, store.history)
}

// Caso: completar dos veces → la segunda es ErrInvalidState (sin doble descuento).
func TestLifecycle_Complete_DosVeces_RechazaSegunda(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.EqualValues(t, 8, store.items["ron"].Quantity, "sin doble descuento")
}

// Caso: completar un pedido cancelado → ErrInvalidState.
func TestLifecycle_Complete_PedidoCancelado(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// Caso: una caída transitoria del almacén al completar se reintenta con
// backoff y el pedido termina completado con un solo descuento.
func TestLifecycle_Complete_FalloTransitorio_Reintenta(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _, runner := newLifecycleWithRunner(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Title: "Mesa 8",
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 2}},
	})
	require.NoError(t, err)

	// Las dos próximas transacciones fallan como caída de conexión.
	runner.failBefore = runner.attempts + 2
	runner.failWith = retry.Transient(errors.New("conexión caída"))

	resp, err := uc.Complete(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCompleted, resp.Order.Status)
	assert.EqualValues(t, 8, store.items["ron"].Quantity, "un solo descuento pese a los reintentos")
	assert.Len(t, store.history, 1)
}

// Caso: completar emite alertas de stock bajo sobre el estado post-descuento.
func TestLifecycle_Complete_AlertaStockBajo(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 6, 90, ptrInt64(5))
	uc, notifier := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 2}},
	})
	require.NoError(t, err)

	resp, err := uc.Complete(context.Background(), order.ID)
	require.NoError(t, err)

	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "Ron Añejo: 4 unidades restantes (Umbral: 5)", resp.Alerts[0])

	var alertSent bool
	for _, m := range notifier.messages {
		if m == "⚠️ Alerta de Stock Bajo - Ron Añejo: 4 unidades restantes (Umbral: 5)" {
			alertSent = true
		}
	}
	assert.True(t, alertSent, "la alerta debe salir por el canal de notificaciones")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancelar pedidos
// ──────────────────────────────────────────────────────────────────────────────

// Caso: cancelar un pedido processing no toca stock ni historial.
func TestLifecycle_Cancel_NoTocaStock(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 2}},
	})
	require.NoError(t, err)

	cancelled, err := uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusCancelled, cancelled.Status)
	assert.EqualValues(t, 10, store.items["ron"].Quantity)
	assert.Empty(t, store.history)
}

// Caso: cancelar un pedido ya completado → ErrInvalidState.
func TestLifecycle_Cancel_PedidoCompletado(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	order, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = uc.Cancel(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas directas
// ──────────────────────────────────────────────────────────────────────────────

// Caso: la venta directa descuenta stock de inmediato con entradas direct_sale
// y total con los precios vigentes.
func TestLifecycle_DirectSale_DescuentaInmediato(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	store.addItem("limon", "Limón", 50, 2, nil)
	uc, _ := newLifecycle(store)

	resp, err := uc.ProcessDirectSale(context.Background(), dto.DirectSaleRequest{
		Lines: []dto.DirectSaleLine{
			{ItemID: "ron", Quantity: 1},
			{ItemID: "limon", Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Contains(t, resp.SaleID, "VentaDirecta-")
	assert.True(t, decimal.NewFromInt(96).Equal(resp.Total), "1×90 + 3×2 = 96, obtuvo %s", resp.Total)
	assert.EqualValues(t, 9, store.items["ron"].Quantity)
	assert.EqualValues(t, 47, store.items["limon"].Quantity)

	require.Len(t, store.history, 2)
	for _, e := range store.history {
		assert.Equal(t, entity.HistoryTypeDirectSale, e.Type)
	}
}

// Caso: venta directa con stock insuficiente → rechazo sin cambios.
func TestLifecycle_DirectSale_StockInsuficiente(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 2, 90, nil)
	uc, _ := newLifecycle(store)

	_, err := uc.ProcessDirectSale(context.Background(), dto.DirectSaleRequest{
		Lines: []dto.DirectSaleLine{{ItemID: "ron", Quantity: 5}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 2, store.items["ron"].Quantity)
	assert.Empty(t, store.history)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

// Caso: List filtra por estado y rechaza estados desconocidos.
func TestLifecycle_List_FiltraPorEstado(t *testing.T) {
	store := newMemStore()
	store.addItem("ron", "Ron Añejo", 10, 90, nil)
	uc, _ := newLifecycle(store)

	first, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateOrderRequest{
		Lines: []dto.CreateOrderLine{{ItemID: "ron", Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = uc.Complete(context.Background(), first.ID)
	require.NoError(t, err)

	processing, err := uc.List(context.Background(), entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Len(t, processing, 1)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = uc.List(context.Background(), "pendiente")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
