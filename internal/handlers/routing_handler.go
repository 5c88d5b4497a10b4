package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"neo4j_routing/internal/astar"
	"neo4j_routing/internal/models"
	"neo4j_routing/internal/repositories"
	"neo4j_routing/internal/services"
)

// RouteQuerier is the part of services.RouteService the handlers use.
type RouteQuerier interface {
	NearestVertex(ctx context.Context, lat, lon float64) (models.Vertex, error)
	ShortestPath(ctx context.Context, startID, endID int64, opts services.PathOptions) (models.Route, error)
	Reachable(ctx context.Context, startID int64, opts services.PathOptions) (models.Reachability, error)
	ListBusRoutes(ctx context.Context) ([]models.BusRoute, error)
}

type nearestQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

type pathQuery struct {
	Start int64
	End   int64
	Mode  string `validate:"omitempty,oneof=all vehicle"`
}

type RoutingHandler struct {
	service  RouteQuerier
	validate *validator.Validate
	timeout  time.Duration
}

// NewRoutingHandler creates the handler. A positive timeout bounds every
// store read made on behalf of a request.
func NewRoutingHandler(service RouteQuerier, timeout time.Duration) *RoutingHandler {
	return &RoutingHandler{
		service:  service,
		validate: validator.New(),
		timeout:  timeout,
	}
}

func (h *RoutingHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Root).Methods(http.MethodGet)
	router.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	router.HandleFunc("/nearest", h.Nearest).Methods(http.MethodGet)
	router.HandleFunc("/shortest-path", h.ShortestPath).Methods(http.MethodGet)
	router.HandleFunc("/shortest-path-pruning", h.ShortestPath).Methods(http.MethodGet)
	router.HandleFunc("/reachable", h.Reachable).Methods(http.MethodGet)
	router.HandleFunc("/get-all-bus-routes", h.BusRoutes).Methods(http.MethodGet)
}

func (h *RoutingHandler) context(r *http.Request) (context.Context, context.CancelFunc) {
	if h.timeout > 0 {
		return context.WithTimeout(r.Context(), h.timeout)
	}
	return context.WithCancel(r.Context())
}

func (h *RoutingHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello World!"))
}

func (h *RoutingHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *RoutingHandler) Nearest(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parseNearest(r)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid lat/lon"})
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	vertex, err := h.service.NearestVertex(ctx, q.Lat, q.Lon)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, vertex)
}

func (h *RoutingHandler) ShortestPath(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePath(r, true)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid start/end node IDs"})
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	route, err := h.service.ShortestPath(ctx, q.Start, q.End, pathOptions(q))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, route)
}

func (h *RoutingHandler) Reachable(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePath(r, false)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid start node ID"})
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	result, err := h.service.Reachable(ctx, q.Start, pathOptions(q))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *RoutingHandler) BusRoutes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	routes, err := h.service.ListBusRoutes(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"routes": routes})
}

func (h *RoutingHandler) parseNearest(r *http.Request) (nearestQuery, bool) {
	var q nearestQuery
	var err error
	if q.Lat, err = strconv.ParseFloat(r.URL.Query().Get("lat"), 64); err != nil {
		return q, false
	}
	if q.Lon, err = strconv.ParseFloat(r.URL.Query().Get("lon"), 64); err != nil {
		return q, false
	}
	return q, h.validate.Struct(q) == nil
}

func (h *RoutingHandler) parsePath(r *http.Request, needEnd bool) (pathQuery, bool) {
	values := r.URL.Query()
	q := pathQuery{Mode: values.Get("mode")}
	var err error
	if q.Start, err = strconv.ParseInt(values.Get("start"), 10, 64); err != nil {
		return q, false
	}
	if needEnd {
		if q.End, err = strconv.ParseInt(values.Get("end"), 10, 64); err != nil {
			return q, false
		}
	}
	return q, h.validate.Struct(q) == nil
}

func pathOptions(q pathQuery) services.PathOptions {
	return services.PathOptions{VehicleOnly: q.Mode == "vehicle"}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// writeError maps service errors to HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, astar.ErrVertexNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Vertex not found"})
	case errors.Is(err, astar.ErrEmptyGraph):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "No nearest vertex found"})
	case errors.Is(err, repositories.ErrStoreUnavailable):
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Graph store unavailable"})
	default:
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}
}
