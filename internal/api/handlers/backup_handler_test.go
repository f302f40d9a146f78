package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/central-university-dev/guild-backup/internal/api"
	"github.com/central-university-dev/guild-backup/internal/api/handlers"
	"github.com/central-university-dev/guild-backup/internal/api/handlers/mocks"
	"github.com/central-university-dev/guild-backup/internal/domain/models"
	"github.com/central-university-dev/guild-backup/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(service *mocks.BackupService) http.Handler {
	handler := handlers.NewBackupHandler(service, pkg.NewLogger(io.Discard))
	return api.NewRouter(handler)
}

func TestBackupPost_Success(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	mockService.On("BackupNow", mock.Anything, "g1").
		Return(&models.BackupResult{Status: models.BackupStatusSuccess, InviteCount: 3})

	req := httptest.NewRequest(http.MethodPost, "/guilds/g1/backup", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(3), resp["inviteCount"])
	assert.Equal(t, "g1", resp["guildId"])
}

func TestBackupPost_StatusMapping(t *testing.T) {
	testCases := []struct {
		name         string
		status       models.BackupStatus
		expectedCode int
	}{
		{name: "nothing found", status: models.BackupStatusNothingFound, expectedCode: http.StatusOK},
		{name: "guild not found", status: models.BackupStatusGuildNotFound, expectedCode: http.StatusNotFound},
		{name: "already running", status: models.BackupStatusAlreadyRunning, expectedCode: http.StatusConflict},
		{name: "failed", status: models.BackupStatusFailed, expectedCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := new(mocks.BackupService)
			router := newTestRouter(mockService)

			mockService.On("BackupNow", mock.Anything, "g1").
				Return(&models.BackupResult{Status: tc.status})

			req := httptest.NewRequest(http.MethodPost, "/guilds/g1/backup", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}

func TestGuildLeavePost_Accepted(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	done := make(chan struct{})

	mockService.On("HandleGuildLeave", mock.Anything, "g1").
		Run(func(mock.Arguments) { close(done) }).
		Return()

	body := bytes.NewBufferString(`{"guildId": "g1"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/guild-leave", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("обработчик события выхода не был вызван")
	}
}

func TestGuildLeavePost_MissingGuildID(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	body := bytes.NewBufferString(`{"reason": "kicked"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/guild-leave", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "HandleGuildLeave", mock.Anything, mock.Anything)
}

func TestGuildLeavePost_MalformedBody(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	body := bytes.NewBufferString(`не json`)
	req := httptest.NewRequest(http.MethodPost, "/events/guild-leave", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHistoryGet_ReturnsRecords(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	records := []*models.BackupRecord{
		{ID: 1, GuildID: "g1", GuildName: "Test", InviteCodes: []string{"abc123"}},
	}

	mockService.On("History", mock.Anything, "g1").Return(records, nil)

	req := httptest.NewRequest(http.MethodGet, "/guilds/g1/backups", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []*models.BackupRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "g1", got[0].GuildID)
}

func TestHistoryGet_EmptyHistory(t *testing.T) {
	mockService := new(mocks.BackupService)
	router := newTestRouter(mockService)

	mockService.On("History", mock.Anything, "g1").Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/guilds/g1/backups", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}
