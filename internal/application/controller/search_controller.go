package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"abohawa-api/internal/domain/usecase/search"
	"abohawa-api/internal/observability"
)

type SearchController struct {
	api     *echo.Group
	useCase search.SearchUseCase
	metrics *observability.Metrics
}

func NewSearchController(api *echo.Group, useCase search.SearchUseCase, metrics *observability.Metrics) *SearchController {
	return &SearchController{api: api, useCase: useCase, metrics: metrics}
}

// InitSearchRoutes initializes location search routes
func (controller *SearchController) InitSearchRoutes() {
	controller.api.GET("/locations/suggest", controller.SuggestLocations)
}

// SuggestLocations serves debounced name suggestions. Lookup failures and
// superseded keystrokes both surface as an empty candidate list.
func (controller *SearchController) SuggestLocations(c echo.Context) error {
	controller.metrics.SuggestionLookups.Inc()

	locations, err := controller.useCase.Suggest(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		// Only context cancellation reaches here; the client is gone.
		return err
	}
	return c.JSON(http.StatusOK, locations)
}
