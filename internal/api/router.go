package api

import (
	"net/http"

	"github.com/central-university-dev/guild-backup/internal/api/handlers"
)

// NewRouter собирает маршруты HTTP API сервиса резервного копирования.
func NewRouter(backupHandler *handlers.BackupHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /guilds/{guildID}/backup", backupHandler.BackupPost)
	mux.HandleFunc("GET /guilds/{guildID}/backups", backupHandler.HistoryGet)
	mux.HandleFunc("POST /events/guild-leave", backupHandler.GuildLeavePost)

	return mux
}
