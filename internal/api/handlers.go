package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Sgowda7697/Dream2Reality/internal/app"
	"github.com/Sgowda7697/Dream2Reality/internal/catalog"
	"github.com/Sgowda7697/Dream2Reality/internal/domain"
	"github.com/Sgowda7697/Dream2Reality/internal/export"
	"github.com/gin-gonic/gin"
)

// Handlers serves the trip-planning endpoints.
type Handlers struct {
	Plans         app.PlanUseCase
	Flights       app.FlightSearchUseCase
	LLMConfigured bool
}

type planRequest struct {
	Prompt string `json:"prompt"`
}

type flightsRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Preference  string `json:"preference"`
}

type flightsResponse struct {
	*app.FlightSearchResult
	Source string `json:"source"`
}

type exportRequest struct {
	Plan        *domain.Plan    `json:"plan"`
	Origin      string          `json:"origin"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Flights     []domain.Flight `json:"flights"`
	IsEstimated bool            `json:"isEstimated"`
}

// Plan generates a trip plan from a free-text prompt.
func (h *Handlers) Plan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing prompt"})
		return
	}

	plan, err := h.Plans.GeneratePlan(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// SearchFlights runs a round-trip search. Provider failures are reported
// through isFallback and source, never as an error status.
func (h *Handlers) SearchFlights(c *gin.Context) {
	var req flightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Origin and destination are required"})
		return
	}

	pref, ok := domain.ParseFlightPreference(req.Preference)
	if !ok {
		pref = domain.PreferenceGoodTiming
	}
	result := h.Flights.SearchFlights(c.Request.Context(), app.FlightSearchRequest{
		OriginCity:      req.Origin,
		DestinationCity: req.Destination,
		StartDate:       strings.TrimSpace(req.StartDate),
		EndDate:         strings.TrimSpace(req.EndDate),
		Preference:      pref,
	})
	c.JSON(http.StatusOK, flightsResponse{FlightSearchResult: result, Source: result.Source()})
}

// Catalog returns the static flights and hotels for a destination. Unknown
// destinations yield empty lists.
func (h *Handlers) Catalog(c *gin.Context) {
	dest := c.Param("destination")
	entry := catalog.Lookup(dest)
	c.JSON(http.StatusOK, gin.H{
		"destination": dest,
		"flights":     entry.Flights,
		"hotels":      entry.Hotels,
	})
}

// Health reports liveness and whether plan generation uses the backend.
func (h *Handlers) Health(c *gin.Context) {
	backend := "mock"
	if h.LLMConfigured {
		backend = "llm"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"service":      "Dream2Reality API",
		"planBackend":  backend,
		"destinations": catalog.Destinations(),
	})
}

// Export renders a plan as a PDF attachment.
func (h *Handlers) Export(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	data, err := export.PDF(export.Document{
		Plan:        req.Plan,
		Origin:      req.Origin,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Flights:     req.Flights,
		IsEstimated: req.IsEstimated,
	})
	if errors.Is(err, export.ErrNoPlan) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing plan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+export.FileName(req.Plan))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
