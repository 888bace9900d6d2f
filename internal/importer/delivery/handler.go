package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"planner-backend/internal/importer/usecase"
	"planner-backend/pkg/nager"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var holidayImports = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "holiday_imports_total",
		Help: "Total holiday import requests by result",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(holidayImports)
}

const (
	minYear = 1900
	maxYear = 2100
)

// ImporterHandler handles holiday import requests
type ImporterHandler struct {
	importerUsecase usecase.ImporterUsecase
}

// NewImporterHandler creates a new ImporterHandler
func NewImporterHandler(importerUsecase usecase.ImporterUsecase) *ImporterHandler {
	return &ImporterHandler{importerUsecase: importerUsecase}
}

// ImportNager imports public holidays as tasks for the authenticated user
// POST /import/nager?country=US&year=2024
func (h *ImporterHandler) ImportNager(c *gin.Context) {
	userID := c.GetString("userID")

	country := c.Query("country")
	if !validCountryCode(country) {
		holidayImports.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "country must be a two-letter ISO code", "kind": "validation_error"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < minYear || year > maxYear {
		holidayImports.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number between 1900 and 2100", "kind": "validation_error"})
		return
	}

	result, err := h.importerUsecase.ImportHolidays(c.Request.Context(), userID, country, year)
	if err != nil {
		switch {
		case errors.Is(err, nager.ErrCountryNotFound):
			holidayImports.WithLabelValues("not_found").Inc()
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown country code", "kind": "not_found"})
		case errors.Is(err, nager.ErrUnavailable):
			holidayImports.WithLabelValues("upstream_error").Inc()
			c.JSON(http.StatusBadGateway, gin.H{"error": "Holiday provider unavailable", "kind": "upstream_error"})
		default:
			holidayImports.WithLabelValues("error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": "internal"})
		}
		return
	}

	holidayImports.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, result)
}

func validCountryCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
