package inventory

import (
	"context"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// transacciones de stock.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		histRepo repository.HistoryRepository,
	) error) error
}
