package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/ports"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

// reportTimeout tope para la llamada al generador externo.
const reportTimeout = 20 * time.Second

// reportAuthor firma fija de los reportes de gerencia.
var reportAuthor = dto.ReportAuthor{
	Nombre: "Joseph Javier Sánchez Acuña",
	Cargo:  "CEO - SAVA SOFTWARE FOR ENGINEERING",
}

// ReportUseCase agrega las ventas del día y delega la redacción del reporte
// gerencial al servicio de IA.
type ReportUseCase struct {
	orderRepo repository.OrderRepository
	reporter  ports.ReportService
	exec      *retry.Executor
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(orderRepo repository.OrderRepository, reporter ports.ReportService, exec *retry.Executor) *ReportUseCase {
	return &ReportUseCase{orderRepo: orderRepo, reporter: reporter, exec: exec}
}

// GenerateDaily produce el reporte del día UTC indicado. Un día sin ventas
// devuelve un reporte estático sin llamar a la IA.
func (uc *ReportUseCase) GenerateDaily(ctx context.Context, day time.Time) (*dto.DailyReportDTO, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	orders, err := retry.DoValue(ctx, uc.exec, "consultar ventas del día", func(ctx context.Context) ([]*entity.Order, error) {
		return uc.orderRepo.ListCompletedInRange(ctx, from, to)
	})
	if err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return &dto.DailyReportDTO{
			ResumenEjecutivo:            "No se registraron ventas en la fecha seleccionada.",
			ObservacionesClave:          []string{"Sin actividad comercial en el período."},
			RecomendacionesEstrategicas: []string{"Verificar si el local operó con normalidad en la fecha consultada."},
			ElaboradoPor:                reportAuthor,
		}, nil
	}

	revenue := decimal.Zero
	counts := make(map[string]int64)
	for _, o := range orders {
		revenue = revenue.Add(o.Price)
		for _, l := range o.Ingredients {
			counts[l.Name] += l.Quantity
		}
	}
	sales := make([]dto.ItemSaleCount, 0, len(counts))
	for name, qty := range counts {
		sales = append(sales, dto.ItemSaleCount{Name: name, Quantity: qty})
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Quantity != sales[j].Quantity {
			return sales[i].Quantity > sales[j].Quantity
		}
		return sales[i].Name < sales[j].Name
	})

	input := dto.DailyReportInput{
		Date:         from,
		TotalRevenue: revenue,
		TotalOrders:  len(orders),
		ItemSales:    sales,
	}

	reportCtx, cancel := context.WithTimeout(ctx, reportTimeout)
	defer cancel()
	report, err := uc.reporter.GenerateDailyReport(reportCtx, input)
	if err != nil {
		return nil, err
	}
	report.ElaboradoPor = reportAuthor
	return report, nil
}
