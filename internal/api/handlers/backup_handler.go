package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	backuperrors "github.com/central-university-dev/guild-backup/internal/domain/errors"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
)

type BackupService interface {
	HandleGuildLeave(ctx context.Context, guildID string)
	BackupNow(ctx context.Context, guildID string) *models.BackupResult
	History(ctx context.Context, guildID string) ([]*models.BackupRecord, error)
}

type guildLeaveEvent struct {
	GuildID string `json:"guildId"`
}

type backupResponse struct {
	GuildID     string `json:"guildId"`
	Status      string `json:"status"`
	InviteCount int    `json:"inviteCount"`
}

type errorResponse struct {
	Description string `json:"description"`
}

type BackupHandler struct {
	backupService BackupService
	logger        *slog.Logger
}

func NewBackupHandler(backupService BackupService, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// BackupPost запускает резервное копирование приглашений сообщества вручную.
func (h *BackupHandler) BackupPost(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("guildID")
	if guildID == "" {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Description: "не указан идентификатор сообщества"})
		return
	}

	result := h.backupService.BackupNow(r.Context(), guildID)

	resp := &backupResponse{
		GuildID:     guildID,
		Status:      string(result.Status),
		InviteCount: result.InviteCount,
	}

	writeJSON(w, statusCodeFor(result.Status), resp)
}

// GuildLeavePost принимает событие выхода из сообщества и запускает
// автоматическое копирование в фоне.
func (h *BackupHandler) GuildLeavePost(w http.ResponseWriter, r *http.Request) {
	var event guildLeaveEvent

	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.logger.Error("Ошибка при разборе события выхода",
			"error", err,
		)
		writeJSON(w, http.StatusBadRequest, &errorResponse{Description: "некорректное тело события"})

		return
	}

	if event.GuildID == "" {
		newErr := &backuperrors.ErrMissingGuildIDInEvent{}
		writeJSON(w, http.StatusBadRequest, &errorResponse{Description: newErr.Error()})

		return
	}

	go h.backupService.HandleGuildLeave(context.WithoutCancel(r.Context()), event.GuildID)

	w.WriteHeader(http.StatusAccepted)
}

// HistoryGet возвращает сохранённые записи резервных копий сообщества.
func (h *BackupHandler) HistoryGet(w http.ResponseWriter, r *http.Request) {
	guildID := r.PathValue("guildID")
	if guildID == "" {
		writeJSON(w, http.StatusBadRequest, &errorResponse{Description: "не указан идентификатор сообщества"})
		return
	}

	records, err := h.backupService.History(r.Context(), guildID)
	if err != nil {
		h.logger.Error("Ошибка при получении истории резервных копий",
			"guildID", guildID,
			"error", err,
		)
		writeJSON(w, http.StatusInternalServerError, &errorResponse{Description: "ошибка при получении истории резервных копий"})

		return
	}

	if records == nil {
		records = []*models.BackupRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func statusCodeFor(status models.BackupStatus) int {
	switch status {
	case models.BackupStatusSuccess, models.BackupStatusNothingFound:
		return http.StatusOK
	case models.BackupStatusGuildNotFound:
		return http.StatusNotFound
	case models.BackupStatusAlreadyRunning:
		return http.StatusConflict
	case models.BackupStatusFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(payload)
}
