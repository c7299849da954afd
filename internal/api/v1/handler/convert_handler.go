package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/config"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/rs/zerolog"
)

type ConvertHandler struct {
	convertService service.ConvertService
	charLimit      int
	dailyLimit     int
	logger         zerolog.Logger
}

func NewConvertHandler(convertService service.ConvertService, cfg *config.Config, logger zerolog.Logger) *ConvertHandler {
	return &ConvertHandler{
		convertService: convertService,
		charLimit:      cfg.FreeCharLimit,
		dailyLimit:     cfg.FreeDailyLimit,
		logger:         logger,
	}
}

// RegisterRoutes mounts the conversion endpoint.
func (h *ConvertHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/convert", authMw(http.HandlerFunc(h.convert)))
}

func (h *ConvertHandler) convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := r.Context().Value(middleware.UserContextKey).(string)
	if !ok || userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req dto.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid text payload", http.StatusBadRequest)
		return
	}

	res, err := h.convertService.Convert(r.Context(), userID, req.Text, req.UseGreekOX)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCharLimitExceeded):
			h.writeDenial(w, dto.ConvertDeniedResponse{
				Error: fmt.Sprintf("Free tier allows at most %d characters per conversion.", h.charLimit),
				Kind:  dto.DenialLengthExceeded,
			})
		case errors.Is(err, service.ErrDailyLimitReached):
			h.writeDenial(w, dto.ConvertDeniedResponse{
				Error: fmt.Sprintf("You have used your %d free conversions for today.", h.dailyLimit),
				Kind:  dto.DenialDailyLimitReached,
			})
		case errors.Is(err, service.ErrUserNotFound):
			http.Error(w, "User not found", http.StatusUnauthorized)
		default:
			h.logger.Error().Err(err).Str("user_id", userID).Msg("Conversion failed")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	resp := dto.ConvertResponse{
		Result:    res.Result,
		Remaining: res.Remaining,
		Premium:   res.Premium,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *ConvertHandler) writeDenial(w http.ResponseWriter, body dto.ConvertDeniedResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(body)
}
