package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"abohawa-api/internal/domain/entity"
	"abohawa-api/internal/domain/model"
	"abohawa-api/internal/domain/usecase/favorites"
	"abohawa-api/internal/observability"
)

type FavoritesController struct {
	api     *echo.Group
	useCase favorites.UseCase
	metrics *observability.Metrics
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase, metrics *observability.Metrics) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase, metrics: metrics}
}

// InitFavoritesRoutes initializes favorites routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/favorites", controller.ListFavorites)
	controller.api.POST("/favorites", controller.AddFavorite)
	controller.api.DELETE("/favorites/:id", controller.RemoveFavorite)
	controller.api.PATCH("/favorites/reorder", controller.ReorderFavorites)
}

func (controller *FavoritesController) ListFavorites(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.List())
}

func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	var dto model.AddFavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if dto.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name is required"})
	}

	location := entity.NewLocation(dto.Name, dto.Lat, dto.Lon, dto.Country, dto.State)
	if err := controller.useCase.Add(c.Request().Context(), location); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	controller.metrics.FavoriteMutations.WithLabelValues("add").Inc()
	return c.JSON(http.StatusCreated, controller.useCase.List())
}

func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	id := c.Param("id")
	if err := controller.useCase.Remove(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	controller.metrics.FavoriteMutations.WithLabelValues("remove").Inc()
	return c.NoContent(http.StatusNoContent)
}

func (controller *FavoritesController) ReorderFavorites(c echo.Context) error {
	var dto model.ReorderFavoritesDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.useCase.Reorder(c.Request().Context(), dto.From, dto.To); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	controller.metrics.FavoriteMutations.WithLabelValues("reorder").Inc()
	return c.JSON(http.StatusOK, controller.useCase.List())
}
