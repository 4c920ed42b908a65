package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avolkov/tour-catalog/internal/repository"
)

// indexPageLimit caps how many tours the storefront index shows at once.
const indexPageLimit = 40

// PageHandler serves the server-rendered storefront. It only reads from the
// store; all mutations go through the JSON API.
type PageHandler struct {
	Store repository.TourStore
}

// NewPageHandler constructs a PageHandler and panics if the store is nil.
func NewPageHandler(store repository.TourStore) *PageHandler {
	if store == nil {
		panic("nil store passed to NewPageHandler")
	}
	return &PageHandler{Store: store}
}

// Index renders the listing page. It answers both GET / and the search form
// POST /; the form field q narrows the listing to matching tours.
func (h *PageHandler) Index(c echo.Context) error {
	q := c.FormValue("q")
	products, err := h.Store.List(c.Request().Context(), indexPageLimit, q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load tours")
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{
		"PageTitle": "All tours",
		"Products":  products,
		"Query":     q,
	})
}

// Detail renders the product page for one tour. A missing or malformed id
// renders the storefront's own 404 page instead of the framework error body.
func (h *PageHandler) Detail(c echo.Context) error {
	id, err := parseTourID(c)
	if err != nil {
		return h.notFoundPage(c)
	}
	product, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrTourNotFound) {
			return h.notFoundPage(c)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "could not load tour")
	}
	return c.Render(http.StatusOK, "details.html", map[string]any{
		"PageTitle": "Product " + product.Title,
		"Product":   product,
	})
}

// notFoundPage renders the storefront 404 page with the matching status.
func (h *PageHandler) notFoundPage(c echo.Context) error {
	return c.Render(http.StatusNotFound, "404.html", map[string]any{
		"PageTitle": "Tour not found",
	})
}

// Navigation renders the static "how to get to us" page.
func (h *PageHandler) Navigation(c echo.Context) error {
	return c.Render(http.StatusOK, "navigation.html", map[string]any{
		"PageTitle": "How to get to us",
	})
}
