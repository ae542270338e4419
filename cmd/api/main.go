package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/auth"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/forecast"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/inventory"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/orders"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/application/usecase"
	infraai "github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/infrastructure/ai"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/infrastructure/notify"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/infrastructure/postgres"
	httpRouter "github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/internal/interfaces/http"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/config"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/logger"
	"github.com/GIUSEPPESAN21/Chingon-Cocteles-Software-Inventario/pkg/retry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Ejecutor de reintentos para llamadas al almacén: reconoce errores
	// transitorios del driver además de los timeouts genéricos.
	exec := retry.New(retry.Policy{
		MaxAttempts:    cfg.Retry.MaxAttempts,
		InitialDelay:   cfg.Retry.InitialDelay(),
		Multiplier:     cfg.Retry.Multiplier,
		AttemptTimeout: cfg.Retry.AttemptTimeout(),
	}, log, retry.WithClassifier(func(err error) bool {
		return postgres.IsRetryable(err) || retry.IsTransient(err)
	}))

	itemRepo := postgres.NewItemRepository(pool)
	histRepo := postgres.NewHistoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewTwilioService(cfg.Twilio)
	if !notifier.Enabled() {
		log.Warn().Msg("canal de WhatsApp desactivado: faltan credenciales de Twilio")
	}
	geminiSvc := infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)

	engine := inventory.NewEngine(txRunner, exec, log)
	itemUC := inventory.NewItemUseCase(txRunner, itemRepo, histRepo, exec)
	orderUC := orders.NewLifecycle(txRunner, orderRepo, itemRepo, engine, notifier, exec, log)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, exec)
	reportUC := usecase.NewReportUseCase(orderRepo, geminiSvc, exec)
	forecastUC := forecast.NewUseCase(analyticsRepo, itemRepo, exec)
	dashboardUC := usecase.NewDashboardUseCase(analyticsRepo, itemRepo, exec)
	authUC := auth.NewUseCase(cfg.Auth, cfg.JWT)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ItemUC:      itemUC,
		OrderUC:     orderUC,
		SupplierUC:  supplierUC,
		ReportUC:    reportUC,
		ForecastUC:  forecastUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
