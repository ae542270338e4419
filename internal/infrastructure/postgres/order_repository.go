package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas del pedido se guardan como JSONB: son un snapshot inmutable al
// momento de crear y nunca se consultan por separado.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste un pedido nuevo.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	lines, err := json.Marshal(order.Ingredients)
	if err != nil {
		return fmt.Errorf("marshal order lines: %w", err)
	}
	query := `
		INSERT INTO orders (id, title, price, ingredients, status, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.q.Exec(ctx, query,
		order.ID, order.Title, order.Price, lines, order.Status, order.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID. Devuelve nil sin error si no existe.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT id, title, price, ingredients, status, ts FROM orders WHERE id = $1`, id)
}

// GetForUpdate obtiene y bloquea la fila del pedido (SELECT FOR UPDATE).
func (r *OrderRepo) GetForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return r.get(ctx, `SELECT id, title, price, ingredients, status, ts FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *OrderRepo) get(ctx context.Context, query, id string) (*entity.Order, error) {
	var (
		o     entity.Order
		lines []byte
	)
	err := r.q.QueryRow(ctx, query, id).Scan(&o.ID, &o.Title, &o.Price, &lines, &o.Status, &o.Timestamp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := json.Unmarshal(lines, &o.Ingredients); err != nil {
		return nil, fmt.Errorf("unmarshal order lines: %w", err)
	}
	return &o, nil
}

// ListByStatus filtra por estado (vacío = todos), más recientes primero.
func (r *OrderRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Order, error) {
	query := `SELECT id, title, price, ingredients, status, ts FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY ts DESC`
	return r.list(ctx, query, args...)
}

// ListCompletedInRange devuelve los pedidos completados con ts en [from, to).
func (r *OrderRepo) ListCompletedInRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error) {
	query := `
		SELECT id, title, price, ingredients, status, ts
		FROM orders WHERE status = $1 AND ts >= $2 AND ts < $3 ORDER BY ts`
	return r.list(ctx, query, entity.OrderStatusCompleted, from, to)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var (
			o     entity.Order
			lines []byte
		)
		if err := rows.Scan(&o.ID, &o.Title, &o.Price, &lines, &o.Status, &o.Timestamp); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(lines, &o.Ingredients); err != nil {
			return nil, fmt.Errorf("unmarshal order lines: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado del pedido.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count devuelve el total de pedidos registrados (para el título por defecto).
func (r *OrderRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT count(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}
