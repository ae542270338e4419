package repository

import (
	"context"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para artículos de inventario.
// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usarlo solo dentro de una
// transacción del TxRunner.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Item, error)
	// List devuelve todos los artículos ordenados por nombre sin distinguir mayúsculas.
	List(ctx context.Context) ([]*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	UpdateQuantity(ctx context.Context, id string, quantity int64, updatedAt time.Time) error
}
