package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"catchup-service/internal/assembler"
	"catchup-service/internal/domain/catchup"
	"catchup-service/internal/logging"
	"catchup-service/internal/providers"
	"catchup-service/internal/socialdir"
	"catchup-service/internal/spoiler"
)

// Handler wires HTTP routes to the catchup assembler and the supporting
// directory/spoiler services.
type Handler struct {
	asm    *assembler.Assembler
	social *socialdir.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(asm *assembler.Assembler, social *socialdir.Service, logger *slog.Logger) *Handler {
	return &Handler{
		asm:    asm,
		social: social,
		logger: logger,
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

// Ready reports readiness for traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.asm == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "assembler not configured", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// catchupGroupedResponse extends the catchup document with a period-grouped
// view of the timeline for clients that render period dividers.
type catchupGroupedResponse struct {
	*catchup.Response
	GroupedTimeline []catchup.PeriodGroup `json:"groupedTimeline"`
}

// GameCatchup serves the assembled spoiler-safe catchup document.
func (h *Handler) GameCatchup(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID := strings.TrimSpace(chi.URLParam(r, "id"))
	if gameID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing game id", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	resp, err := h.asm.AssembleCatchup(r.Context(), gameID)
	if err != nil {
		if _, ok := providers.AsConnectionError(err); ok {
			logging.Warn(logger, "sports data source unreachable", logging.FieldGameID, gameID, "err", err)
			writeError(w, r, nethttp.StatusBadGateway, "sports data source unreachable", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to assemble catchup", h.logger)
		return
	}
	if resp == nil {
		writeError(w, r, nethttp.StatusNotFound, "game data not available", h.logger)
		return
	}

	if r.URL.Query().Get("grouped") == "1" {
		writeJSON(w, nethttp.StatusOK, catchupGroupedResponse{
			Response:        resp,
			GroupedTimeline: catchup.GroupByPeriod(resp.Timeline),
		}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// GameDetail serves the spoiler-bearing game view for the explicit reveal surface.
func (h *Handler) GameDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	gameID := strings.TrimSpace(chi.URLParam(r, "id"))
	if gameID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing game id", h.logger)
		return
	}

	detail, err := h.asm.GameDetail(r.Context(), gameID)
	if err != nil {
		if _, ok := providers.AsConnectionError(err); ok {
			writeError(w, r, nethttp.StatusBadGateway, "sports data source unreachable", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusInternalServerError, "failed to load game", h.logger)
		return
	}
	if detail == nil {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

// TeamsSocial lists all known team social accounts.
func (h *Handler) TeamsSocial(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.social == nil {
		writeJSON(w, nethttp.StatusOK, []socialdir.TeamSocialAccount{}, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, h.social.Accounts(), h.logger)
}

// TeamSocialByAbbreviation looks up one team's social account.
func (h *Handler) TeamSocialByAbbreviation(w nethttp.ResponseWriter, r *nethttp.Request) {
	abbrev := chi.URLParam(r, "abbrev")
	if h.social == nil || abbrev == "" {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	account, ok := h.social.AccountByAbbreviation(abbrev)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, account, h.logger)
}

type spoilerCheckRequest struct {
	Text string `json:"text"`
}

// SpoilerCheck scans submitted text for outcome-revealing content.
func (h *Handler) SpoilerCheck(w nethttp.ResponseWriter, r *nethttp.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "unreadable body", h.logger)
		return
	}

	var req spoilerCheckRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid json", h.logger)
		return
	}

	writeJSON(w, nethttp.StatusOK, spoiler.Check(req.Text), h.logger)
}
