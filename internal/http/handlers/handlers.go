package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-shotchart-service/internal/app/scouting"
	"github.com/preston-bernstein/nba-shotchart-service/internal/court"
	"github.com/preston-bernstein/nba-shotchart-service/internal/warmer"
)

// PlayerParam is the route parameter holding a player id or full name.
const PlayerParam = "player"

// Handler wires HTTP routes to the scouting service.
type Handler struct {
	svc      *scouting.Service
	seasons  []string
	logger   *slog.Logger
	statusFn func() warmer.Status
}

// NewHandler constructs a Handler. seasons is the closed set of selectable seasons, newest first;
// statusFn may be nil when no warmer runs.
func NewHandler(svc *scouting.Service, seasons []string, logger *slog.Logger, statusFn func() warmer.Status) *Handler {
	return &Handler{
		svc:      svc,
		seasons:  append([]string(nil), seasons...),
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic; without a warmer the service is always ready.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Seasons lists the selectable seasons, newest first.
func (h *Handler) Seasons(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"seasons": h.seasons,
		"default": h.defaultSeason(),
	}, h.logger)
}

// Court returns the half-court geometry used to draw shot charts.
func (h *Handler) Court(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, court.Standard(), h.logger)
}

// Players lists players sorted by name; active players only unless active=false.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	activeOnly := true
	if raw := strings.TrimSpace(r.URL.Query().Get("active")); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid active flag", h.logger)
			return
		}
		activeOnly = parsed
	}
	list, err := h.svc.Players(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"players": list,
		"count":   len(list),
	}, h.logger)
}

// Player returns the resolved player profile.
func (h *Handler) Player(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, ok := h.playerRef(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Player(r.Context(), ref)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, p, h.logger)
}

// Shots returns the season shot chart.
func (h *Handler) Shots(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, season, ok := h.playerSeason(w, r)
	if !ok {
		return
	}
	chart, err := h.svc.ShotChart(r.Context(), ref, season)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, chart, h.logger)
}

// Zones returns per-zone shooting efficiency.
func (h *Handler) Zones(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, season, ok := h.playerSeason(w, r)
	if !ok {
		return
	}
	report, err := h.svc.ZoneEfficiency(r.Context(), ref, season)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

// Scouting returns the composite scouting report. Insufficient sections are part of a 200 response.
func (h *Handler) Scouting(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, season, ok := h.playerSeason(w, r)
	if !ok {
		return
	}
	report, err := h.svc.ScoutingReport(r.Context(), ref, season)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, report, h.logger)
}

// GameLog returns the season game log, newest game first.
func (h *Handler) GameLog(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, season, ok := h.playerSeason(w, r)
	if !ok {
		return
	}
	log, err := h.svc.GameLog(r.Context(), ref, season)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, log, h.logger)
}

// Career returns per-season averages, newest season first.
func (h *Handler) Career(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref, ok := h.playerRef(w, r)
	if !ok {
		return
	}
	career, err := h.svc.Career(r.Context(), ref)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, career, h.logger)
}

// NotFound is the router fallback for unknown paths.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed is the router fallback for known paths with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) playerRef(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	ref, err := url.PathUnescape(chi.URLParam(r, PlayerParam))
	ref = strings.TrimSpace(ref)
	if err != nil || ref == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player", h.logger)
		return "", false
	}
	return ref, true
}

func (h *Handler) playerSeason(w nethttp.ResponseWriter, r *nethttp.Request) (string, string, bool) {
	ref, ok := h.playerRef(w, r)
	if !ok {
		return "", "", false
	}
	season, ok := h.season(r)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "unsupported season", h.logger)
		return "", "", false
	}
	return ref, season, true
}

// season reads ?season=, defaulting to the newest configured season.
func (h *Handler) season(r *nethttp.Request) (string, bool) {
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if season == "" {
		season = h.defaultSeason()
		return season, season != ""
	}
	return season, slices.Contains(h.seasons, season)
}

func (h *Handler) defaultSeason() string {
	if len(h.seasons) == 0 {
		return ""
	}
	return h.seasons[0]
}
