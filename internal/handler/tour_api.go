package handler // handler contains the JSON API handlers for the tour catalog

import (
	"context"  // context backs the fire-and-forget event publishing
	"errors"   // errors matches repository sentinel values
	"fmt"      // fmt formats the not-found message
	"log"      // log reports best-effort cache eviction failures
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types
	"time"     // time stamps outgoing catalog events

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/avolkov/tour-catalog/internal/model"
	"github.com/avolkov/tour-catalog/internal/queue"
	"github.com/avolkov/tour-catalog/internal/repository"
)

// Publisher sends a catalog change event. It is a function field so tests
// can stub it out; the production wiring uses queue.PublishTourEvent.
type Publisher func(ctx context.Context, event queue.TourEvent) error

// CacheInvalidator drops the cached read responses. Every mutation calls it
// so cached listings and detail lookups never outlive the row they describe.
type CacheInvalidator func(ctx context.Context) error

// TourHandler bundles the tour store and event publisher behind the
// /api/product endpoints.
type TourHandler struct {
	Store        repository.TourStore // Store is the sole gateway to the tours table
	Publish      Publisher            // Publish emits catalog events, may be nil
	Invalidate   CacheInvalidator     // Invalidate evicts cached reads, may be nil
	DefaultLimit int                  // DefaultLimit applies when ?limit is absent
}

// NewTourHandler constructs a TourHandler and panics if the store is nil.
func NewTourHandler(store repository.TourStore, publish Publisher, invalidate CacheInvalidator, defaultLimit int) *TourHandler {
	if store == nil {
		panic("nil store passed to NewTourHandler")
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &TourHandler{Store: store, Publish: publish, Invalidate: invalidate, DefaultLimit: defaultLimit}
}

// CreateTour handles POST /api/product/ and inserts a new tour.
func (h *TourHandler) CreateTour(c echo.Context) error {
	var body model.NewTour
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return validationResponse(c, err)
	}
	saved, err := h.Store.Create(c.Request().Context(), body)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create tour"})
	}
	h.evictCachedReads(c)
	h.emit(queue.TourEvent{Action: queue.ActionCreated, TourID: saved.ID, Title: saved.Title, Price: saved.Price})
	return c.JSON(http.StatusCreated, saved)
}

// ListTours handles GET /api/product/ with optional limit and q parameters.
// The limit defaults to DefaultLimit (10 unless configured otherwise) and
// must be a positive integer; q defaults to the empty string, which matches
// every tour.
func (h *TourHandler) ListTours(c echo.Context) error {
	limit := h.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
		}
		limit = n
	}
	items, err := h.Store.List(c.Request().Context(), limit, c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	if items == nil {
		items = []*model.SavedTour{} // serialize as [] instead of null
	}
	return c.JSON(http.StatusOK, items)
}

// GetTour handles GET /api/product/:id.
func (h *TourHandler) GetTour(c echo.Context) error {
	id, err := parseTourID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	saved, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		return tourStoreError(c, id, err)
	}
	return c.JSON(http.StatusOK, saved)
}

// UpdateTourPrice handles PATCH /api/product/:id. Only the price changes;
// the full updated record is returned.
func (h *TourHandler) UpdateTourPrice(c echo.Context) error {
	id, err := parseTourID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var body model.TourPrice
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return validationResponse(c, err)
	}
	saved, err := h.Store.UpdatePrice(c.Request().Context(), id, body.Price)
	if err != nil {
		return tourStoreError(c, id, err)
	}
	h.evictCachedReads(c)
	h.emit(queue.TourEvent{Action: queue.ActionPriceChanged, TourID: saved.ID, Title: saved.Title, Price: saved.Price})
	return c.JSON(http.StatusOK, saved)
}

// DeleteTour handles DELETE /api/product/:id and physically removes the row.
func (h *TourHandler) DeleteTour(c echo.Context) error {
	id, err := parseTourID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		return tourStoreError(c, id, err)
	}
	h.evictCachedReads(c)
	h.emit(queue.TourEvent{Action: queue.ActionDeleted, TourID: id})
	return c.JSON(http.StatusOK, model.NewDeletedTour(id))
}

// evictCachedReads drops cached GET responses after a successful mutation.
// It runs synchronously so the next read observes the new state. The row is
// already persisted at this point, so a failed eviction only shortens
// freshness and is logged rather than failing the request.
func (h *TourHandler) evictCachedReads(c echo.Context) {
	if h.Invalidate == nil {
		return
	}
	if err := h.Invalidate(c.Request().Context()); err != nil {
		log.Printf("cache: invalidate failed: %v", err)
	}
}

// emit publishes a catalog event without blocking the request. Publishing is
// best effort; failures are logged inside the publisher and otherwise ignored.
func (h *TourHandler) emit(event queue.TourEvent) {
	if h.Publish == nil {
		return
	}
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	go func() { _ = h.Publish(context.Background(), event) }()
}

// parseTourID extracts the :id path parameter. Ids are integers >= 1.
func parseTourID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// tourStoreError maps store failures onto API responses: a missing row is a
// 404 naming the id, anything else a generic 500. Storage failures are never
// retried.
func tourStoreError(c echo.Context, id int64, err error) error {
	if errors.Is(err, repository.ErrTourNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("check your entity id, tour with id=%d not found", id),
		})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
}

// validationResponse renders a ValidationError with per-field detail.
func validationResponse(c echo.Context, err error) error {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
}
