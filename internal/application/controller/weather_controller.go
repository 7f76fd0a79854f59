package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/gateway/api"
	"abohawa-api/internal/domain/model"
	"abohawa-api/internal/domain/usecase/forecast"
	"abohawa-api/pkg/msg"
	"abohawa-api/pkg/util/numberutils"
)

type WeatherController struct {
	api     *echo.Group
	useCase forecast.ForecastUseCase
}

func NewWeatherController(api *echo.Group, useCase forecast.ForecastUseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.RefreshWeather)
	controller.api.POST("/weather/geolocate", controller.RefreshByGeolocation)
	controller.api.GET("/weather/current", controller.CurrentSnapshot)
}

// RefreshWeather runs a full fetch cycle for the requested coordinates and
// returns the committed snapshot.
func (controller *WeatherController) RefreshWeather(c echo.Context) error {
	lat, latErr := numberutils.ToFloat64WithError(c.QueryParam("lat"))
	lon, lonErr := numberutils.ToFloat64WithError(c.QueryParam("lon"))
	if latErr != nil || lonErr != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "lat and lon are required numeric parameters"})
	}

	location := entity.NewLocation(
		c.QueryParam("name"), lat, lon,
		c.QueryParam("country"), c.QueryParam("state"))

	snapshot, err := controller.useCase.Refresh(c.Request().Context(), location)
	if err != nil {
		return refreshErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewSnapshotResponse(snapshot))
}

// RefreshByGeolocation resolves the caller's coordinates and refreshes them.
func (controller *WeatherController) RefreshByGeolocation(c echo.Context) error {
	snapshot, err := controller.useCase.RefreshByGeolocation(c.Request().Context())
	if err != nil {
		return refreshErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.NewSnapshotResponse(snapshot))
}

// CurrentSnapshot serves the last committed snapshot without refetching.
func (controller *WeatherController) CurrentSnapshot(c echo.Context) error {
	snapshot := controller.useCase.Snapshot()
	if snapshot == nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error":  msg.GetLocalized("weather.error.no-snapshot"),
			"status": string(controller.useCase.Status()),
		})
	}
	return c.JSON(http.StatusOK, model.NewSnapshotResponse(snapshot))
}

// refreshErrorResponse maps orchestration errors onto HTTP statuses.
func refreshErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, forecast.ErrSuperseded):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, forecast.ErrRefreshFailed):
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error":   err.Error(),
			"message": msg.GetLocalized("weather.error.refresh-failed"),
		})
	case errors.Is(err, api.ErrGeolocationDenied):
		return c.JSON(http.StatusForbidden, map[string]string{
			"error":   err.Error(),
			"message": msg.GetLocalized("geolocation.error.denied"),
		})
	case errors.Is(err, api.ErrGeolocationUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error":   err.Error(),
			"message": msg.GetLocalized("geolocation.error.unresolved"),
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
