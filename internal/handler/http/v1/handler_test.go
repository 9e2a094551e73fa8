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
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/handler/http/v1/mocks"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
	"github.com/sirenwatch/sirenwatch/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-sync-token"

// newTestHandler builds a handler with a mocked service and a test router.
func newTestHandler(t *testing.T) (*mocks.MockSyncService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSyncService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{SyncToken: testToken}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockService, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck_Open(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingToken(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/sync/run", nil, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	_, router := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sync/run", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRunSync_Success(t *testing.T) {
	mockService, router := newTestHandler(t)

	report := &service.SyncReport{
		StartedAt: time.Now().UTC(),
		Tenants:   []service.TenantResult{{TenantID: uuid.New(), IncidentsCreated: 3}},
	}
	mockService.EXPECT().SyncAll(gomock.Any()).Return(report, nil).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sync/run", nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var got service.SyncReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Tenants, 1)
	assert.Equal(t, 3, got.Tenants[0].IncidentsCreated)
}

func TestRunSync_ServiceError(t *testing.T) {
	mockService, router := newTestHandler(t)

	mockService.EXPECT().SyncAll(gomock.Any()).Return(nil, errors.New("db down")).Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sync/run", nil, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRunTenantSync_InvalidID(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/sync/run/not-a-uuid", nil, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunTenantSync_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	tenantID := uuid.New()

	mockService.EXPECT().
		SyncTenant(gomock.Any(), tenantID).
		Return(&service.TenantResult{TenantID: tenantID}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/sync/run/"+tenantID.String(), nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	tenantID := uuid.New()

	ci := &reconcile.ConsolidatedIncident{
		Incident: models.Incident{
			ID:         uuid.New(),
			ExternalID: "ext-1",
			CallType:   "SF",
			Category:   models.CategoryFire,
			Units:      []string{"E1"},
			Status:     models.IncidentActive,
		},
		MemberIDs: []uuid.UUID{uuid.New()},
	}
	mockService.EXPECT().ConsolidatedIncidents(gomock.Any(), tenantID).Return([]*reconcile.ConsolidatedIncident{ci}, nil).Times(1)

	url := fmt.Sprintf("/api/v1/tenants/%s/incidents", tenantID)
	w := makeRequest(router, http.MethodGet, url, nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var got []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ext-1", got[0].ExternalID)
	assert.Equal(t, "fire", got[0].Category)
}

func TestListAlerts_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	tenantID := uuid.New()

	alert := &models.WeatherAlert{
		ID:         uuid.New(),
		ExternalID: "X2",
		Lineage:    []string{"X1"},
		Event:      "Tornado Warning",
		Severity:   models.SeverityExtreme,
		Status:     models.AlertActive,
	}
	mockService.EXPECT().ActiveAlerts(gomock.Any(), tenantID).Return([]*models.WeatherAlert{alert}, nil).Times(1)

	url := fmt.Sprintf("/api/v1/tenants/%s/alerts", tenantID)
	w := makeRequest(router, http.MethodGet, url, nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var got []AlertResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "X2", got[0].ExternalID)
	assert.Equal(t, []string{"X1"}, got[0].Lineage)
}

func TestGetPostingView_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	tenantID := uuid.New()

	view := posting.View{
		Pending: []posting.Item{{Kind: posting.KindIncident, RecordID: uuid.New(), State: posting.StatePending}},
	}
	mockService.EXPECT().PostingView(gomock.Any(), tenantID).Return(view, nil).Times(1)

	url := fmt.Sprintf("/api/v1/tenants/%s/posting", tenantID)
	w := makeRequest(router, http.MethodGet, url, nil, true)
	require.Equal(t, http.StatusOK, w.Code)

	var got PostingViewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Pending, 1)
}

func TestRetryPosting_Success(t *testing.T) {
	mockService, router := newTestHandler(t)
	tenantID := uuid.New()
	recordID := uuid.New()

	mockService.EXPECT().
		RetryItem(gomock.Any(), tenantID, posting.KindIncident, recordID).
		Return(nil).
		Times(1)

	body, _ := json.Marshal(RetryRequest{Kind: "incident", RecordID: recordID.String()})
	url := fmt.Sprintf("/api/v1/tenants/%s/posting/retry", tenantID)
	w := makeRequest(router, http.MethodPost, url, bytes.NewReader(body), true)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRetryPosting_InvalidKind(t *testing.T) {
	_, router := newTestHandler(t)
	tenantID := uuid.New()

	body, _ := json.Marshal(RetryRequest{Kind: "bogus", RecordID: uuid.NewString()})
	url := fmt.Sprintf("/api/v1/tenants/%s/posting/retry", tenantID)
	w := makeRequest(router, http.MethodPost, url, bytes.NewReader(body), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetryPosting_MalformedBody(t *testing.T) {
	_, router := newTestHandler(t)
	tenantID := uuid.New()

	url := fmt.Sprintf("/api/v1/tenants/%s/posting/retry", tenantID)
	w := makeRequest(router, http.MethodPost, url, bytes.NewReader([]byte("{not json")), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
