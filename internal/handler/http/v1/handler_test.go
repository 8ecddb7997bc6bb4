package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/live_location_system/internal/config"
	"github.com/shenikar/live_location_system/internal/feed"
	"github.com/shenikar/live_location_system/internal/identity"
	"github.com/shenikar/live_location_system/internal/models"
	"github.com/shenikar/live_location_system/internal/sampler"
	"github.com/shenikar/live_location_system/internal/service"
	"github.com/shenikar/live_location_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testIdentity = identity.Identity{ID: "user-1", Email: "owner@example.com"}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockLocationService, *mocks.MockShareService, *gin.Engine, *identity.Manager) {
	ctrl := gomock.NewController(t)
	locationMock := mocks.NewMockLocationService(ctrl)
	shareMock := mocks.NewMockShareService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}
	manager := identity.NewManager("test-secret", "test-issuer", time.Hour)

	handler := NewHandler(locationMock, shareMock, nil, manager, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return locationMock, shareMock, router, manager
}

// bearer выпускает валидный токен для тестовой личности
func bearer(t *testing.T, manager *identity.Manager) map[string]string {
	t.Helper()
	token, _, err := manager.Issue(testIdentity.ID, testIdentity.Email)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestReportLocation_Success(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	reqBody := ReportLocationRequest{
		Latitude:       55.7558,
		Longitude:      37.6173,
		AccuracyMeters: 5,
	}

	locationMock.EXPECT().
		ReportSample(gomock.Any(), testIdentity, gomock.Any()).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestReportLocation_InvalidJSON(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)

	locationMock.EXPECT().ReportSample(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBufferString(`{"latitude": 55.75`), bearer(t, manager))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestReportLocation_ValidationError(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	reqBody := ReportLocationRequest{ // Отсутствует Latitude
		Longitude: 37.6173,
	}

	locationMock.EXPECT().ReportSample(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'required' tag")
}

func TestReportLocation_StreamFailed(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	reqBody := ReportLocationRequest{
		Latitude:  55.7558,
		Longitude: 37.6173,
	}

	locationMock.EXPECT().
		ReportSample(gomock.Any(), testIdentity, gomock.Any()).
		Return(fmt.Errorf("service: location stream is not accepting samples: %w", sampler.ErrStreamFailed)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "location stream failed, retry required")
}

func TestReportLocation_Unauthorized(t *testing.T) {
	locationMock, _, router, _ := newTestHandler(t)

	locationMock.EXPECT().ReportSample(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := ReportLocationRequest{Latitude: 55.7558, Longitude: 37.6173}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBuffer(bodyBytes)) // Без токена

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "authorization token required")
}

func TestReportLocation_InvalidToken(t *testing.T) {
	locationMock, _, router, _ := newTestHandler(t)

	locationMock.EXPECT().ReportSample(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	reqBody := ReportLocationRequest{Latitude: 55.7558, Longitude: 37.6173}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/report", bytes.NewBuffer(bodyBytes), map[string]string{"Authorization": "Bearer not-a-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestReportFailure_Success(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	reqBody := ReportFailureRequest{Code: "permission_denied"}

	locationMock.EXPECT().
		ReportFailure(gomock.Any(), testIdentity, "permission_denied").
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/failure", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReportFailure_UnknownCode(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	reqBody := ReportFailureRequest{Code: "battery_low"}

	locationMock.EXPECT().ReportFailure(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/failure", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Code' failed on the 'oneof' tag")
}

func TestRetryLocation_Success(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)

	locationMock.EXPECT().RetryStream(gomock.Any(), testIdentity).Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/retry", nil, bearer(t, manager))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDisconnect_Success(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)

	locationMock.EXPECT().Disconnect(gomock.Any(), testIdentity).Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/disconnect", nil, bearer(t, manager))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGetPresence_Success(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	expected := &models.Presence{
		UserID:    "user-2",
		Email:     "friend@example.com",
		Latitude:  55.7558,
		Longitude: 37.6173,
		Online:    true,
		UpdatedAt: time.Now(),
	}

	locationMock.EXPECT().GetPresence(gomock.Any(), "user-2").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/presence/user-2", nil, bearer(t, manager))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp PresenceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expected.UserID, resp.UserID)
	assert.True(t, resp.Online)
}

func TestGetPresence_NotFound(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)

	locationMock.EXPECT().GetPresence(gomock.Any(), "ghost").Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/presence/ghost", nil, bearer(t, manager))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "presence record not found")
}

func TestGetPresence_ServiceError(t *testing.T) {
	locationMock, _, router, manager := newTestHandler(t)
	serviceError := errors.New("redis connection lost")

	locationMock.EXPECT().GetPresence(gomock.Any(), "user-2").Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/presence/user-2", nil, bearer(t, manager))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCreateShare_Success(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	shareID := uuid.New()
	reqBody := CreateShareRequest{ViewerEmail: "viewer@example.com"}

	expectedShare := &models.LocationShare{
		ID:          shareID,
		OwnerEmail:  testIdentity.Email,
		OwnerID:     testIdentity.ID,
		ViewerEmail: reqBody.ViewerEmail,
		Latitude:    55.7558,
		Longitude:   37.6173,
		Active:      true,
		CreatedAt:   time.Now(),
		LastUpdate:  time.Now(),
	}

	shareMock.EXPECT().
		CreateShare(gomock.Any(), testIdentity, reqBody.ViewerEmail).
		Return(expectedShare, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shares", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ShareResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, shareID, resp.ID)
	assert.Equal(t, reqBody.ViewerEmail, resp.ViewerEmail)
	assert.True(t, resp.Active)
}

func TestCreateShare_NoKnownPosition(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	reqBody := CreateShareRequest{ViewerEmail: "viewer@example.com"}

	shareMock.EXPECT().
		CreateShare(gomock.Any(), testIdentity, reqBody.ViewerEmail).
		Return(nil, service.ErrNoKnownPosition).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shares", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no known position to share yet")
}

func TestCreateShare_InvalidEmail(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	reqBody := CreateShareRequest{ViewerEmail: "не email"}

	shareMock.EXPECT().CreateShare(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/shares", bytes.NewBuffer(bodyBytes), bearer(t, manager))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ViewerEmail' failed on the 'email' tag")
}

func TestListShares_Success(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	expectedShares := []*models.LocationShare{
		{ID: uuid.New(), OwnerEmail: testIdentity.Email, ViewerEmail: "a@example.com", Active: true},
		{ID: uuid.New(), OwnerEmail: testIdentity.Email, ViewerEmail: "b@example.com", Active: true},
	}

	shareMock.EXPECT().ListOwned(gomock.Any(), testIdentity.Email).Return(expectedShares, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shares", nil, bearer(t, manager))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ShareResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "a@example.com", resp[0].ViewerEmail)
}

func TestRevokeShare_Success(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)

	shareMock.EXPECT().
		RevokeAccess(gomock.Any(), testIdentity, "viewer@example.com").
		Return(nil).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/shares/viewer@example.com", nil, bearer(t, manager))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRevokeShare_ServiceError(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	serviceError := errors.New("database unavailable")

	shareMock.EXPECT().
		RevokeAccess(gomock.Any(), testIdentity, "viewer@example.com").
		Return(serviceError).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/shares/viewer@example.com", nil, bearer(t, manager))

	// Отзыв не подтвержден, клиент может безопасно повторить запрос
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to revoke access")
}

func TestListVisible_Success(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	entries := []feed.Entry{
		{OwnerEmail: "friend@example.com", Latitude: 55.7558, Longitude: 37.6173, LastUpdate: time.Now(), IsOnline: true},
	}

	shareMock.EXPECT().ListVisible(gomock.Any(), testIdentity.Email).Return(entries, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shares/visible", nil, bearer(t, manager))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FeedEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "friend@example.com", resp[0].OwnerEmail)
	assert.True(t, resp[0].IsOnline)
}

func TestListVisible_ServiceError(t *testing.T) {
	_, shareMock, router, manager := newTestHandler(t)
	serviceError := errors.New("database unavailable")

	shareMock.EXPECT().ListVisible(gomock.Any(), testIdentity.Email).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/shares/visible", nil, bearer(t, manager))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router, _ := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
