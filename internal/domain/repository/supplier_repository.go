package repository

import (
	"context"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	// List devuelve todos los proveedores ordenados por nombre sin distinguir mayúsculas.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
