package repository

import (
	"context"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Order, error)
	// ListByStatus filtra por estado; status vacío devuelve todos.
	// Orden descendente por timestamp de creación.
	ListByStatus(ctx context.Context, status string) ([]*entity.Order, error)
	// ListCompletedInRange devuelve los pedidos completados en [from, to).
	ListCompletedInRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int, error)
}
