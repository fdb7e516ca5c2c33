// Package httpapi exposes a pkg/pointset.PointSet over HTTP: JSON
// endpoints for membership, range, and nearest-neighbor queries, plus a
// point-insertion endpoint serialized behind a mutex since Put is not
// safe to call concurrently with anything else.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-sod/pointset/internal/logging"
	"github.com/go-sod/pointset/internal/metric"
	"github.com/go-sod/pointset/internal/querycache"
	"github.com/go-sod/pointset/internal/render"
	"github.com/go-sod/pointset/pkg/geom"
	"github.com/go-sod/pointset/pkg/pointset"
)

// Handler serves a single point set's query and insertion endpoints.
type Handler struct {
	mtx     sync.Mutex
	set     pointset.PointSet
	backend string
	cache   *querycache.Cache
}

// New returns a Handler over set. backend names the implementation
// (e.g. "kdtree", "bruteforce") attached to exported metrics.
func New(set pointset.PointSet, backend string, cache *querycache.Cache) *Handler {
	return &Handler{set: set, backend: backend, cache: cache}
}

// Mux returns the handler's routes, ready to be mounted alongside a
// /metrics handler and /health check in cmd/pointsetd.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/contains", h.handleContains)
	mux.HandleFunc("/v1/range", h.handleRange)
	mux.HandleFunc("/v1/nearest", h.handleNearest)
	mux.HandleFunc("/v1/points", h.handlePoints)
	mux.HandleFunc("/v1/dump", h.handleDump)
	return mux
}

type containsResponse struct {
	Contains bool `json:"contains"`
}

type pointsResponse struct {
	Points [][2]float64 `json:"points"`
}

type putRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (h *Handler) handleContains(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r)
	p, err := pointFromQuery(r, "x", "y")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	contains := h.set.Contains(p)
	metric.Record(r.Context(), h.backend, "contains", msSince(start))

	logger.Debugf("contains %v -> %v", p, contains)
	writeJSON(w, http.StatusOK, containsResponse{Contains: contains})
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r)
	min, err := pointFromQuery(r, "xmin", "ymin")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	max, err := pointFromQuery(r, "xmax", "ymax")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rect := geom.NewRect(min, max)

	key := querycache.RangeKey(rect)
	if points, ok := h.cache.Get(r.Context(), key); ok {
		writeJSON(w, http.StatusOK, pointsResponse{Points: toPairs(points)})
		return
	}

	start := time.Now()
	points := drain(h.set.Range(rect))
	metric.Record(r.Context(), h.backend, "range", msSince(start))

	if err := h.cache.Set(r.Context(), key, points); err != nil {
		logger.Debugf("caching range result: %v", err)
	}
	writeJSON(w, http.StatusOK, pointsResponse{Points: toPairs(points)})
}

func (h *Handler) handleNearest(w http.ResponseWriter, r *http.Request) {
	logger := requestLogger(r)
	p, err := pointFromQuery(r, "x", "y")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	k := 1
	if raw := r.URL.Query().Get("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil || k < 0 {
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	key := querycache.NearestKey(p, k)
	if points, ok := h.cache.Get(r.Context(), key); ok {
		writeJSON(w, http.StatusOK, pointsResponse{Points: toPairs(points)})
		return
	}

	start := time.Now()
	points := drain(h.set.NearestK(p, k))
	metric.Record(r.Context(), h.backend, "nearest", msSince(start))

	if err := h.cache.Set(r.Context(), key, points); err != nil {
		logger.Debugf("caching nearest result: %v", err)
	}
	writeJSON(w, http.StatusOK, pointsResponse{Points: toPairs(points)})
}

func (h *Handler) handlePoints(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, nil)
		return
	}

	var req putRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	h.mtx.Lock()
	h.set.Put(geom.New(req.X, req.Y))
	h.mtx.Unlock()
	metric.Record(r.Context(), h.backend, "put", msSince(start))

	w.WriteHeader(http.StatusCreated)
}

// handleDump writes the whole set out in its "{ ... }" textual form,
// the way the teacher's own debug/dump-style routes expose internal
// state directly rather than through the JSON response shapes the other
// routes use.
func (h *Handler) handleDump(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := render.Set(w, h.set); err != nil {
		logging.FromContext(r.Context()).Errorf("writing dump response: %v", err)
	}
}

func requestLogger(r *http.Request) interface {
	Debugf(string, ...interface{})
} {
	return logging.FromContext(r.Context()).With("request_id", uuid.New().String())
}

func pointFromQuery(r *http.Request, xKey, yKey string) (geom.Point, error) {
	x, err := strconv.ParseFloat(r.URL.Query().Get(xKey), 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(r.URL.Query().Get(yKey), 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.New(x, y), nil
}

func toPairs(points []geom.Point) [][2]float64 {
	out := make([][2]float64, len(points))
	for i, p := range points {
		out[i] = [2]float64{p.X, p.Y}
	}
	return out
}

func drain(it pointset.Iterator) []geom.Point {
	var out []geom.Point
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, map[string]string{"error": msg})
}
