package inventory

import (
	"fmt"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
)

// DetectLowStock revisa el estado post-ajuste de los artículos y devuelve un
// mensaje de alerta por cada uno cuyo umbral esté configurado y alcanzado
// (quantity <= min_stock_alert). Función pura: sin I/O ni efectos; llamarla
// dos veces sobre el mismo snapshot produce el mismo resultado.
func DetectLowStock(items []*entity.Item) []string {
	var alerts []string
	for _, item := range items {
		if item == nil || item.MinStockAlert == nil {
			continue
		}
		if item.Quantity <= *item.MinStockAlert {
			alerts = append(alerts, fmt.Sprintf("%s: %d unidades restantes (Umbral: %d)",
				item.Name, item.Quantity, *item.MinStockAlert))
		}
	}
	return alerts
}
