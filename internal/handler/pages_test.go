package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkov/tour-catalog/internal/database"
	"github.com/avolkov/tour-catalog/internal/model"
	"github.com/avolkov/tour-catalog/internal/repository"
	"github.com/avolkov/tour-catalog/internal/view"
)

func newPageTest(t *testing.T) (*echo.Echo, *PageHandler, repository.TourStore) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	store := repository.NewTourRepo(db)
	return e, NewPageHandler(store), store
}

func seedTour(t *testing.T, store repository.TourStore, title, description string) *model.SavedTour {
	t.Helper()
	saved, err := store.Create(context.Background(), model.NewTour{
		TourPrice:   model.TourPrice{Price: 99.5},
		Title:       title,
		Description: description,
		Cover:       "https://example.com/cover.jpg",
	})
	require.NoError(t, err)
	return saved
}

func TestIndexPage(t *testing.T) {
	e, h, store := newPageTest(t)
	seedTour(t, store, "Paris Trip", "A week in Paris")
	seedTour(t, store, "Rome Weekend", "Two days among ruins")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Index(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "All tours")
	assert.Contains(t, body, "Paris Trip")
	assert.Contains(t, body, "Rome Weekend")
}

func TestIndexPageSearchForm(t *testing.T) {
	e, h, store := newPageTest(t)
	seedTour(t, store, "Paris Trip", "A week in Paris")
	seedTour(t, store, "Rome Weekend", "Two days among ruins")

	form := url.Values{"q": {"ruins"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Index(e.NewContext(req, rec)))

	body := rec.Body.String()
	assert.Contains(t, body, "Rome Weekend")
	assert.NotContains(t, body, "Paris Trip")
}

func TestDetailPage(t *testing.T) {
	e, h, store := newPageTest(t)
	saved := seedTour(t, store, "Paris Trip", "A week in Paris")

	req := httptest.NewRequest(http.MethodGet, "/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Detail(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), saved.Title)
	assert.Contains(t, rec.Body.String(), saved.Description)
}

func TestDetailPageNotFound(t *testing.T) {
	e, h, _ := newPageTest(t)

	req := httptest.NewRequest(http.MethodGet, "/404", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	// The storefront renders its own 404 page, not the framework error body.
	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tour not found")
	assert.Contains(t, rec.Body.String(), "Back to all tours")
}

func TestDetailPageInvalidID(t *testing.T) {
	e, h, _ := newPageTest(t)

	req := httptest.NewRequest(http.MethodGet, "/definitely-not-a-tour", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("definitely-not-a-tour")

	require.NoError(t, h.Detail(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tour not found")
}

func TestNavigationPage(t *testing.T) {
	e, h, _ := newPageTest(t)

	req := httptest.NewRequest(http.MethodGet, "/navigation/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Navigation(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "How to get to us")
}
