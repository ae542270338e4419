// Package forecast pronostica la demanda diaria de un artículo con suavizado
// exponencial doble (Holt lineal) sobre su historial de salidas.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/dto"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/entity"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/domain/repository"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

const (
	// historyWindowDays ventana de historial consultada para ajustar el modelo.
	historyWindowDays = 90
	// minObservations días con ventas necesarios para un pronóstico útil.
	minObservations = 5
	// alpha y beta factores de suavizado de nivel y tendencia.
	alpha = 0.4
	beta  = 0.1
	// maxHorizonDays tope del horizonte de pronóstico.
	maxHorizonDays = 30
)

// UseCase genera pronósticos de demanda por artículo.
type UseCase struct {
	analytics repository.AnalyticsRepository
	itemRepo  repository.ItemRepository
	exec      *retry.Executor
}

// NewUseCase construye el caso de uso.
func NewUseCase(analytics repository.AnalyticsRepository, itemRepo repository.ItemRepository, exec *retry.Executor) *UseCase {
	return &UseCase{analytics: analytics, itemRepo: itemRepo, exec: exec}
}

// Forecast pronostica la demanda diaria del artículo para los próximos
// horizon días. Los días sin ventas dentro de la ventana cuentan como cero.
func (uc *UseCase) Forecast(ctx context.Context, itemID string, horizon int) (*dto.ForecastResponse, error) {
	if horizon <= 0 || horizon > maxHorizonDays {
		return nil, fmt.Errorf("horizonte %d fuera de rango [1, %d]: %w", horizon, maxHorizonDays, domain.ErrInvalidInput)
	}

	item, err := retry.DoValue(ctx, uc.exec, "consultar artículo", func(ctx context.Context) (*entity.Item, error) {
		return uc.itemRepo.GetByID(ctx, itemID)
	})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	from := to.AddDate(0, 0, -historyWindowDays)

	daily, err := retry.DoValue(ctx, uc.exec, "consultar consumo diario", func(ctx context.Context) ([]repository.DailyQuantity, error) {
		return uc.analytics.GetDailyConsumption(ctx, itemID, from, to)
	})
	if err != nil {
		return nil, err
	}
	if len(daily) < minObservations {
		return nil, fmt.Errorf("se requieren al menos %d días con ventas y hay %d: %w",
			minObservations, len(daily), domain.ErrInvalidInput)
	}

	series := fillSeries(daily, from, to)
	forecast := holtForecast(series, horizon)

	points := make([]dto.ForecastPoint, horizon)
	for i, q := range forecast {
		points[i] = dto.ForecastPoint{
			Date:     to.AddDate(0, 0, i),
			Quantity: q,
		}
	}
	return &dto.ForecastResponse{
		ItemID:   itemID,
		Horizon:  horizon,
		Forecast: points,
	}, nil
}

// fillSeries expande el agregado a una serie diaria continua desde el primer
// día con ventas hasta to (exclusivo), con ceros en los días sin actividad.
func fillSeries(daily []repository.DailyQuantity, from, to time.Time) []float64 {
	byDay := make(map[string]int64, len(daily))
	first := to
	for _, d := range daily {
		day := time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day.Format("2006-01-02")] = d.Quantity
		if day.Before(first) {
			first = day
		}
	}
	if first.Before(from) {
		first = from
	}
	var series []float64
	for day := first; day.Before(to); day = day.AddDate(0, 0, 1) {
		series = append(series, float64(byDay[day.Format("2006-01-02")]))
	}
	return series
}

// holtForecast ajusta nivel y tendencia sobre la serie y extrapola horizon
// pasos. La demanda pronosticada nunca es negativa.
func holtForecast(series []float64, horizon int) []float64 {
	level := series[0]
	trend := series[1] - series[0]
	for _, y := range series[1:] {
		prevLevel := level
		level = alpha*y + (1-alpha)*(level+trend)
		trend = beta*(level-prevLevel) + (1-beta)*trend
	}
	out := make([]float64, horizon)
	for h := 1; h <= horizon; h++ {
		v := level + float64(h)*trend
		if v < 0 {
			v = 0
		}
		out[h-1] = v
	}
	return out
}
