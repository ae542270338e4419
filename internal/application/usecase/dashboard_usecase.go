package usecase

import (
	"context"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// DashboardUseCase métricas de la pantalla de inicio: totales agregados y las
// alertas de stock bajo vigentes.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	itemRepo  repository.ItemRepository
	exec      *retry.Executor
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, itemRepo repository.ItemRepository, exec *retry.Executor) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, itemRepo: itemRepo, exec: exec}
}

// Summary devuelve los agregados del dashboard junto con las alertas de stock
// bajo calculadas sobre el inventario completo.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	summary, err := retry.DoValue(ctx, uc.exec, "consultar resumen", func(ctx context.Context) (*repository.DashboardSummary, error) {
		return uc.analytics.GetDashboardSummary(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, err := retry.DoValue(ctx, uc.exec, "listar inventario", func(ctx context.Context) ([]*entity.Item, error) {
		return uc.itemRepo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return &dto.DashboardSummaryResponse{
		TotalItems:       summary.TotalItems,
		InventoryValue:   summary.InventoryValue,
		ProcessingOrders: summary.ProcessingOrders,
		TotalSuppliers:   summary.TotalSuppliers,
		LowStockAlerts:   inventory.DetectLowStock(items),
	}, nil
}
