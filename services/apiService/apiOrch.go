package apiService

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"footballTipsBot/models"
	"footballTipsBot/services/common"
	"footballTipsBot/services/extService"
	"footballTipsBot/services/predictionService"
	"footballTipsBot/services/settlementService"
)

// Handler carries the dependencies of the admin HTTP surface. Rng is optional;
// when nil each sync request gets a time-seeded source, tests inject a fixed
// one.
type Handler struct {
	DB       *gorm.DB
	Feed     extService.FixtureFeed
	Notifier predictionService.Notifier
	Matcher  settlementService.FixtureMatcher
	Log      *zap.Logger
	Rng      *rand.Rand
}

// NewRouter wires the two pipeline operations plus health and metrics. Both
// operations sit behind the admin token; permission failures stop at this
// boundary and are never retried.
func NewRouter(h *Handler, adminToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", h.HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/admin", func(r chi.Router) {
		r.Use(requireAdmin(adminToken))
		r.Post("/predictions/sync", h.SyncPredictions)
		r.Post("/predictions/update-scores", h.UpdateScores)
	})

	return r
}

func requireAdmin(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" || r.Header.Get("X-Admin-Token") != token {
				respondError(w, http.StatusForbidden, common.ErrUnauthorized.Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unhealthy")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

type syncRequest struct {
	Date                string   `json:"date"`
	PlanType            string   `json:"planType"`
	ConfidenceThreshold int      `json:"confidenceThreshold"`
	MinOdds             *float64 `json:"minOdds,omitempty"`
	MaxOdds             *float64 `json:"maxOdds,omitempty"`
	Preview             bool     `json:"preview,omitempty"`
}

type syncResponse struct {
	Written            int                 `json:"written"`
	Filtered           int                 `json:"filtered"`
	EffectiveThreshold int                 `json:"effectiveThreshold"`
	EffectiveMinOdds   *float64            `json:"effectiveMinOdds,omitempty"`
	EffectiveMaxOdds   *float64            `json:"effectiveMaxOdds,omitempty"`
	Candidates         []models.Prediction `json:"candidates,omitempty"`
}

func (h *Handler) SyncPredictions(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rng := h.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	summary, err := predictionService.SyncPredictions(h.DB, h.Feed, h.Notifier, h.Log, rng, predictionService.SyncParams{
		Date:                req.Date,
		Plan:                models.PlanType(req.PlanType),
		ConfidenceThreshold: req.ConfidenceThreshold,
		MinOdds:             req.MinOdds,
		MaxOdds:             req.MaxOdds,
		Preview:             req.Preview,
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("prediction sync failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "prediction sync failed")
		return
	}

	respondJSON(w, http.StatusOK, syncResponse{
		Written:            summary.Written,
		Filtered:           summary.Filtered,
		EffectiveThreshold: summary.EffectiveThreshold,
		EffectiveMinOdds:   summary.EffectiveMinOdds,
		EffectiveMaxOdds:   summary.EffectiveMaxOdds,
		Candidates:         summary.Candidates,
	})
}

type updateScoresRequest struct {
	Date string `json:"date"`
}

func (h *Handler) UpdateScores(w http.ResponseWriter, r *http.Request) {
	var req updateScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	updated, err := settlementService.UpdateScores(h.DB, h.Feed, h.Matcher, h.Log, req.Date)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Log.Error("score update failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "score update failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int{"updatedCount": updated})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
