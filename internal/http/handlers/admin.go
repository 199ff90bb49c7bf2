package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/preston-bernstein/nba-shotchart-service/internal/app/scouting"
	"github.com/preston-bernstein/nba-shotchart-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-shotchart-service/internal/logging"
	"github.com/preston-bernstein/nba-shotchart-service/internal/providers"
)

// AdminHandler exposes admin-only endpoints (cache purge).
type AdminHandler struct {
	svc     *scouting.Service
	seasons []string
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(svc *scouting.Service, seasons []string, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		seasons: append([]string(nil), seasons...),
		token:   token,
		logger:  logger,
	}
}

// PurgeCache drops cached provider data. Without ?player= everything goes; with ?season= only
// that season's shots and game log for the player.
func (h *AdminHandler) PurgeCache(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	player := strings.TrimSpace(r.URL.Query().Get("player"))
	season := strings.TrimSpace(r.URL.Query().Get("season"))
	if season != "" && player == "" {
		writeError(w, r, http.StatusBadRequest, "season requires player", logger)
		return
	}
	if season != "" && !slices.Contains(h.seasons, season) {
		writeError(w, r, http.StatusBadRequest, "unsupported season", logger)
		return
	}

	removed, err := h.svc.Purge(r.Context(), player, season)
	if err != nil {
		if errors.Is(err, providers.ErrPlayerNotFound) || errors.Is(err, scouting.ErrDataUnavailable) {
			writeServiceError(w, r, err, logger)
			return
		}
		logging.Error(logger, "admin cache purge failed", err,
			slog.String(logging.FieldPlayer, player),
			slog.String(logging.FieldSeason, season),
		)
		writeError(w, r, http.StatusInternalServerError, "cache purge failed", logger)
		return
	}

	logging.Info(logger, "admin cache purged",
		slog.String(logging.FieldPlayer, player),
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, removed),
	)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"purged": removed,
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := requestutil.BearerToken(r)
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
