package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"woodo-statistic/internal/domain"
	"woodo-statistic/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Handler serves the REST surface used by the web front end.
type Handler struct {
	scout   Scouter
	players PlayerStatsGetter
	connect http.Handler
	cors    *cors.Cors
	logger  zerolog.Logger
}

func NewHandler(scout Scouter, players PlayerStatsGetter, connectServer *ScoutServer, origins []string, logger zerolog.Logger) *Handler {
	_, connectHandler := NewScoutServiceHandler(connectServer)
	return &Handler{
		scout:   scout,
		players: players,
		connect: connectHandler,
		cors: cors.New(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		}),
		logger: logger,
	}
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID(h.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(h.cors.Handler)

	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", h.Root)
		r.Post("/check-match", h.CheckMatch)
		r.Get("/demo-match", h.DemoMatch)
		r.Get("/player-stats/{battleTag}", h.PlayerStats)
	})

	r.Mount(ScoutServicePath, h.connect)

	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "W3Champions Match Scout API"})
}

func (h *Handler) CheckMatch(w http.ResponseWriter, r *http.Request) {
	var req CheckMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "request body must be JSON with battle_tag"})
		return
	}

	result, err := h.scout.Scout(r.Context(), req.BattleTag)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) DemoMatch(w http.ResponseWriter, r *http.Request) {
	result, err := h.scout.Demo(r.Context())
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// PlayerStats takes the battle tag from the path; '#' arrives escaped as %23.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	battleTag, err := url.PathUnescape(chi.URLParam(r, "battleTag"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: "malformed battle tag"})
		return
	}

	stats, err := h.players.GetPlayerStats(r.Context(), battleTag)
	if err != nil {
		h.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(ctx).Error().Err(err).Int("status", status).Msg("request failed")
	}
	writeJSON(w, status, errorResponse{Detail: err.Error()})
}

func statusFor(err error) int {
	switch {
	case domain.IsClientError(err):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
