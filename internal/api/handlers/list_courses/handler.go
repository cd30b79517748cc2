package list_courses

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/teemx/GolfTee-BookingService/internal/api/handlers"
	"github.com/teemx/GolfTee-BookingService/internal/service/catalog"
	"github.com/teemx/GolfTee-BookingService/internal/service/catalog/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses?city=...&state=...&holes=18&minPrice=100&maxPrice=300
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /courses - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /courses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /courses - Failed to list courses: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courses - Courses retrieved: count=%d", len(result.Courses))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter извлекает фильтры каталога из query-параметров
func parseFilter(r *http.Request) (*models.ListCoursesRequest, error) {
	query := r.URL.Query()
	req := &models.ListCoursesRequest{}

	if city := query.Get("city"); city != "" {
		req.City = &city
	}
	if state := query.Get("state"); state != "" {
		req.State = &state
	}
	if holesStr := query.Get("holes"); holesStr != "" {
		holes, err := strconv.Atoi(holesStr)
		if err != nil {
			return nil, err
		}
		req.Holes = &holes
	}
	if minStr := query.Get("minPrice"); minStr != "" {
		minPrice, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return nil, err
		}
		req.MinPrice = &minPrice
	}
	if maxStr := query.Get("maxPrice"); maxStr != "" {
		maxPrice, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &maxPrice
	}

	return req, nil
}
