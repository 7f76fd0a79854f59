package main

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "abohawa-api/configs"
	"abohawa-api/internal/application/controller"
	"abohawa-api/internal/application/middleware"
	"abohawa-api/internal/application/notifier"
	"abohawa-api/internal/application/schedule"
	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/api"
	"abohawa-api/internal/domain/gateway/db"
	"abohawa-api/internal/domain/usecase/favorites"
	"abohawa-api/internal/domain/usecase/forecast"
	"abohawa-api/internal/domain/usecase/health"
	"abohawa-api/internal/domain/usecase/history"
	"abohawa-api/internal/domain/usecase/search"
	"abohawa-api/internal/infra/aws"
	gormdb "abohawa-api/internal/infra/database/gorm"
	"abohawa-api/internal/observability"
	"abohawa-api/pkg/bus"
	pkghttp "abohawa-api/pkg/http"
	"abohawa-api/pkg/log"
	"abohawa-api/pkg/msg"
	"abohawa-api/pkg/redis"
	"abohawa-api/pkg/resource"
)

func main() {
	log.Info(msg.GetMessage("app.start"))
	msg.SetLocale(resource.GetString("app.locale"))

	ctx := context.Background()
	clock := clockwork.NewRealClock()
	metrics := observability.NewMetrics()
	alertBus := bus.New[entity.AlertEvent]()

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	redisClient := redis.NewClient(redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")))

	sqsClient := aws.NewSqsClient()
	queueSender := aws.NewSQSSenderAdapter(sqsClient)

	// Init Gateways
	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		resource.GetString("app.weather.api-key"),
		resource.GetString("app.weather.lang"),
		pkghttp.ClientOptions{
			ReadTimeout: resource.GetDuration("app.weather.timeout"),
			Logger:      pkghttp.ZapHTTPLogger{},
		})
	geoGateway := api.NewGeoGateway(
		resource.GetString("app.geo.base-url"),
		pkghttp.ClientOptions{
			ReadTimeout: resource.GetDuration("app.geo.timeout"),
			Logger:      pkghttp.ZapHTTPLogger{},
		})
	favoritesGateway := db.NewRedisFavoritesGateway(redisClient, resource.GetString("app.favorites.storage-key"))
	historyGateway := db.NewGormHistoryGateway(gormdb.Db)
	dbHealthGateway := db.NewGormHealthDBGateway(gormdb.Db)
	cacheHealthGateway := db.NewRedisHealthGateway(redisClient)

	// Init UseCases
	forecastUseCase := forecast.NewForecastUseCase(weatherGateway, geoGateway, historyGateway, alertBus, metrics, clock)
	favoritesUseCase := favorites.NewFavoritesUseCase(ctx, favoritesGateway)
	searchUseCase := search.NewSearchUseCase(weatherGateway, clock,
		resource.GetDuration("app.search.debounce"),
		resource.GetInt("app.search.min-query"))
	historyUseCase := history.NewHistoryUseCase(historyGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway)

	// Init Controllers and Routes
	controller.NewHealthController(apiGroup, healthUseCase).InitHealthRoutes()
	controller.NewWeatherController(apiGroup, forecastUseCase).InitWeatherRoutes()
	controller.NewFavoritesController(apiGroup, favoritesUseCase, metrics).InitFavoritesRoutes()
	controller.NewSearchController(apiGroup, searchUseCase, metrics).InitSearchRoutes()
	controller.NewHistoryController(apiGroup, historyUseCase).InitHistoryRoutes()
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Init alert forwarding
	queueNotifier := notifier.NewQueueNotifier(resource.GetString("app.alerts.queue-name"), queueSender, metrics)
	queueNotifier.Attach(alertBus)

	// Init Schedule
	refreshScheduler := schedule.NewRefreshScheduler(
		forecastUseCase, redisClient,
		resource.GetString("app.refresh.cron"),
		resource.GetDuration("app.refresh.lock-ttl"),
		resource.GetDuration("app.refresh.lock-refresh-interval"))
	refreshScheduler.InitRefreshScheduleTasks(ctx)

	// Start Server
	log.Info(msg.GetMessage("app.started"))
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
}
