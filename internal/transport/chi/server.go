// Package chi wires the HTTP API onto the use case layer.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tradepost-io/tradepost/internal/domain"
	domlst "github.com/tradepost-io/tradepost/internal/domain/listing"
	"github.com/tradepost-io/tradepost/internal/domain/search/query"
	"github.com/tradepost-io/tradepost/internal/domain/taxonomy"
	healthuc "github.com/tradepost-io/tradepost/internal/usecase/health"
	listinguc "github.com/tradepost-io/tradepost/internal/usecase/listing"
	searchuc "github.com/tradepost-io/tradepost/internal/usecase/search"
)

// DefaultSearchLimit caps how many listings a single search may return.
const DefaultSearchLimit = 60

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the listing and search use cases over HTTP.
type Server struct {
	listings      *listinguc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	searchLimit   int
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	listings *listinguc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		listings:    listings,
		search:      search,
		health:      health,
		logger:      logger,
		searchLimit: DefaultSearchLimit,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrListingNotFound, http.StatusNotFound, codeListingNotFound),
		sentinelHandler(domain.ErrInvalidListing, http.StatusBadRequest, codeValidationFailed),
		sentinelHandler(domain.ErrInvalidArgument, http.StatusBadRequest, codeValidationFailed),
	}
	return s
}

// WithSearchLimit overrides the search result cap.
func (s *Server) WithSearchLimit(n int) *Server {
	if n > 0 {
		s.searchLimit = n
	}
	return s
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.SearchListings)
		r.Get("/categories", s.ListCategories)
		r.Get("/categories/resolve", s.ResolveCategory)
		r.Get("/listings/recent", s.RecentListings)

		r.Route("/listings/{id}", func(r chi.Router) {
			r.Put("/", s.UpsertListing)
			r.Get("/", s.GetListing)
			r.Patch("/status", s.SetListingStatus)
			r.Delete("/", s.DeleteListing)
		})
	})
}

// SearchListings handles GET /api/v1/search.
func (s *Server) SearchListings(w http.ResponseWriter, r *http.Request) {
	q, err := s.queryFromParams(r)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := s.search.Search(r.Context(), &q)
	writeJSON(w, http.StatusOK, listingsToResponse(results))
}

// ListCategories handles GET /api/v1/categories.
func (s *Server) ListCategories(w http.ResponseWriter, r *http.Request) {
	counts, err := s.listings.CategoryCounts(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	cats := taxonomy.Categories()
	items := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		subs := taxonomy.SubcategoriesOf(c.Slug)
		subItems := make([]subcategoryResponse, 0, len(subs))
		for _, sub := range subs {
			subItems = append(subItems, subcategoryResponse{Name: sub.Display, Slug: sub.Slug})
		}
		items = append(items, categoryResponse{
			Name:          c.Display,
			Slug:          c.Slug,
			ActiveCount:   counts[c.Slug],
			Subcategories: subItems,
		})
	}

	writeJSON(w, http.StatusOK, categoryListResponse{Items: items})
}

// ResolveCategory handles GET /api/v1/categories/resolve. The "type" query
// parameter selects subcategory resolution; the default is category.
func (s *Server) ResolveCategory(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("q")
	if strings.TrimSpace(input) == "" {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "query parameter q is required")
		return
	}

	var (
		resolved taxonomy.Resolved
		ok       bool
	)
	switch r.URL.Query().Get("type") {
	case "", "category":
		resolved, ok = taxonomy.ResolveCategory(input)
	case "subcategory":
		resolved, ok = taxonomy.ResolveSubcategory(input)
	default:
		writeError(w, http.StatusBadRequest, codeValidationFailed, "type must be category or subcategory")
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		Input:    input,
		Resolved: ok,
		Name:     resolved.Display,
		Slug:     resolved.Slug,
	})
}

// RecentListings handles GET /api/v1/listings/recent.
func (s *Server) RecentListings(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be an integer")
			return
		}
		limit = n
	}

	results, err := s.listings.Recent(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingsToResponse(results))
}

// UpsertListing handles PUT /api/v1/listings/{id}.
func (s *Server) UpsertListing(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req upsertListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdAt := time.Now().UnixMilli()
	if req.CreatedAt != nil {
		createdAt = req.CreatedAt.UnixMilli()
	}

	l, err := domlst.New(
		id, req.Title, req.Description, req.Tags,
		req.Category, req.Subcategory,
		req.Price, domlst.Condition(req.Condition),
		req.City, req.Province, req.Location,
		createdAt,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	stored, err := s.listings.Upsert(r.Context(), l)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToResponse(&stored))
}

// GetListing handles GET /api/v1/listings/{id}.
func (s *Server) GetListing(w http.ResponseWriter, r *http.Request) {
	l, err := s.listings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToResponse(&l))
}

// SetListingStatus handles PATCH /api/v1/listings/{id}/status.
func (s *Server) SetListingStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	l, err := s.listings.SetStatus(r.Context(), chi.URLParam(r, "id"), domlst.Status(req.Status))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToResponse(&l))
}

// DeleteListing handles DELETE /api/v1/listings/{id}.
func (s *Server) DeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := s.listings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToResponse(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// queryFromParams builds a search query from URL parameters.
func (s *Server) queryFromParams(r *http.Request) (query.Query, error) {
	params := r.URL.Query()

	minPrice, err := parsePriceParam(params.Get("min_price"))
	if err != nil {
		return query.Query{}, err
	}
	maxPrice, err := parsePriceParam(params.Get("max_price"))
	if err != nil {
		return query.Query{}, err
	}

	limit := s.searchLimit
	if raw := params.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return query.Query{}, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidArgument)
		}
		if n > 0 && n < limit {
			limit = n
		}
	}

	return query.New(
		params.Get("q"),
		params.Get("category"),
		params.Get("subcategory"),
		params.Get("location"),
		minPrice, maxPrice,
		domlst.Condition(params.Get("condition")),
		query.Sort(params.Get("sort")),
		limit,
	)
}

func parsePriceParam(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: price bound %q is not a number", domain.ErrInvalidArgument, raw)
	}
	return &v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrListingNotFound,
		domain.ErrInvalidListing,
		domain.ErrInvalidArgument,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
