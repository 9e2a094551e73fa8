package service

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/feed"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	posting_mocks "github.com/sirenwatch/sirenwatch/internal/posting/mocks"
	"github.com/sirenwatch/sirenwatch/internal/service/mocks"
	"github.com/sirenwatch/sirenwatch/internal/weather"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSyncService builds a service instance with all collaborators mocked.
func newTestSyncService(t *testing.T) (*syncService, *mocks.MockSyncRepository, *mocks.MockFeedClient, *mocks.MockSyncLease, *posting_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSyncRepository(ctrl)
	feedMock := mocks.NewMockFeedClient(ctrl)
	leaseMock := mocks.NewMockSyncLease(ctrl)
	publisherMock := posting_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{SyncLeaseTTL: 2 * time.Minute}

	svc := NewSyncService(repoMock, feedMock, leaseMock, publisherMock, logger, cfg)
	return svc.(*syncService), repoMock, feedMock, leaseMock, publisherMock
}

// sealEnvelope encrypts a payload the way the upstream feed does, so the
// decryption path runs for real inside the service.
func sealEnvelope(t *testing.T, payload *feed.Payload, secret string) *feed.Envelope {
	t.Helper()

	inner, err := json.Marshal(payload)
	require.NoError(t, err)
	plain, err := json.Marshal(string(inner))
	require.NoError(t, err)

	salt := []byte("salty!!!")
	var material, prev []byte
	for len(material) < 48 {
		h := md5.New()
		h.Write(prev)
		h.Write([]byte(secret))
		h.Write(salt)
		prev = h.Sum(nil)
		material = append(material, prev...)
	}
	key := material[:32]
	iv := []byte("0123456789abcdef")

	pad := aes.BlockSize - len(plain)%aes.BlockSize
	for i := 0; i < pad; i++ {
		plain = append(plain, byte(pad))
	}
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	ct := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ct, plain)

	return &feed.Envelope{
		CT:   base64.StdEncoding.EncodeToString(ct),
		IV:   hex.EncodeToString(iv),
		Salt: hex.EncodeToString(salt),
	}
}

func syncableTenant() *models.Tenant {
	return &models.Tenant{
		ID:         uuid.New(),
		Name:       "Springfield FD",
		AgencyID:   "agency-1",
		FeedSecret: "s3cret",
		Active:     true,
	}
}

func TestSyncTenant_TenantNotFound(t *testing.T) {
	svc, repoMock, _, _, _ := newTestSyncService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	repoMock.EXPECT().
		GetTenant(ctx, tenantID).
		Return(nil, errors.New("not found")).
		Times(1)

	_, err := svc.SyncTenant(ctx, tenantID)
	require.Error(t, err)
}

func TestSyncTenant_MissingCredentialsSkips(t *testing.T) {
	svc, repoMock, _, _, _ := newTestSyncService(t)
	ctx := context.Background()

	tenant := syncableTenant()
	tenant.FeedSecret = ""

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "missing feed credentials", result.Skipped)
	assert.Empty(t, result.Error)
}

func TestSyncTenant_LeaseHeldSkips(t *testing.T) {
	svc, repoMock, _, leaseMock, _ := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("", false, nil).Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, "sync already in progress", result.Skipped)
}

func TestSyncTenant_CreatesIncidentsFromFeed(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, _ := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()

	payload := &feed.Payload{
		Incidents: feed.IncidentLists{
			Active: []feed.RawIncident{
				{ID: "ext-1", CallType: "SF", Address: "12 Main St", CallReceived: time.Now().UTC()},
			},
		},
	}
	envelope := sealEnvelope(t, payload, tenant.FeedSecret)

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)

	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(envelope, nil).Times(1)
	repoMock.EXPECT().ListSyncIncidents(ctx, tenant.ID, gomock.Any()).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		CreateIncident(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, "ext-1", inc.ExternalID)
			assert.Equal(t, tenant.ID, inc.TenantID)
			return nil
		}).
		Times(1)

	// No zones configured, so the alert leg is skipped entirely. The tenant
	// has no social page, so nothing is queued either.
	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Error)
	assert.Equal(t, 1, result.IncidentsCreated)
}

func TestSyncTenant_WrongSecretRecordsError(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, _ := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()

	envelope := sealEnvelope(t, &feed.Payload{}, "a-different-secret")

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)
	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(envelope, nil).Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Error)
}

func TestSyncTenant_FetchFailureReleasesLease(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, _ := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)
	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(nil, errors.New("upstream 503")).Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Contains(t, result.Error, "upstream 503")
}

func TestSyncTenant_SyncsAlertsForZonedTenant(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, _ := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()
	tenant.Zones = []string{"Z001"}

	envelope := sealEnvelope(t, &feed.Payload{}, tenant.FeedSecret)
	msgs := []weather.Message{
		{ID: "X1", Type: weather.MessageAlert, Event: "Tornado Warning", Severity: models.SeverityExtreme, Zones: tenant.Zones},
	}

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)

	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(envelope, nil).Times(1)
	repoMock.EXPECT().ListSyncIncidents(ctx, tenant.ID, gomock.Any()).Return(nil, nil).Times(1)

	feedMock.EXPECT().FetchAlerts(ctx, tenant.Zones).Return(msgs, nil).Times(1)
	repoMock.EXPECT().ListActiveAlerts(ctx, tenant.ID).Return(nil, nil).Times(1)
	repoMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.WeatherAlert) error {
			assert.Equal(t, "X1", a.ExternalID)
			return nil
		}).
		Times(1)
	repoMock.EXPECT().ExpireAlerts(ctx, tenant.ID, gomock.Any()).Return(int64(2), nil).Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.AlertsCreated)
	assert.Equal(t, int64(2), result.AlertsExpired)
}

func TestSyncTenant_QueuesPendingPosts(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()
	tenant.SocialPageID = "page-1"
	tenant.SocialPageToken = "token-1"
	tenant.PostIncidents = true

	pending := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		ExternalID:   "ext-1",
		CallType:     "SF",
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Status:       models.IncidentActive,
		CallReceived: time.Now().UTC(),
	}

	envelope := sealEnvelope(t, &feed.Payload{
		Incidents: feed.IncidentLists{
			Active: []feed.RawIncident{
				{ID: "ext-1", CallType: "SF", Address: "12 Main St", CallReceived: pending.CallReceived},
			},
		},
	}, tenant.FeedSecret)

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)

	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(envelope, nil).Times(1)
	repoMock.EXPECT().ListSyncIncidents(ctx, tenant.ID, gomock.Any()).Return([]*models.Incident{pending}, nil).Times(1)

	// Posting view reads a fresh snapshot after reconciliation.
	repoMock.EXPECT().ListActiveIncidents(ctx, tenant.ID).Return([]*models.Incident{pending}, nil).Times(1)
	repoMock.EXPECT().ListActiveAlerts(ctx, tenant.ID).Return(nil, nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, posting.PostJob{TenantID: tenant.ID, Kind: posting.KindIncident, RecordID: pending.ID}).
		Return(nil).
		Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.PostsQueued)
}

func TestSyncTenant_PublishFailureStillCountsQueued(t *testing.T) {
	svc, repoMock, feedMock, leaseMock, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	tenant := syncableTenant()
	tenant.SocialPageID = "page-1"
	tenant.SocialPageToken = "token-1"
	tenant.PostIncidents = true

	base := time.Now().UTC()
	p1 := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		ExternalID:   "ext-1",
		CallType:     "SF",
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Status:       models.IncidentActive,
		CallReceived: base,
	}
	p2 := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		ExternalID:   "ext-2",
		CallType:     "SF",
		Category:     models.CategoryFire,
		Address:      "99 Oak Ave",
		Status:       models.IncidentActive,
		CallReceived: base.Add(time.Minute),
	}

	envelope := sealEnvelope(t, &feed.Payload{
		Incidents: feed.IncidentLists{
			Active: []feed.RawIncident{
				{ID: "ext-1", CallType: "SF", Address: "12 Main St", CallReceived: p1.CallReceived},
				{ID: "ext-2", CallType: "SF", Address: "99 Oak Ave", CallReceived: p2.CallReceived},
			},
		},
	}, tenant.FeedSecret)

	repoMock.EXPECT().GetTenant(ctx, tenant.ID).Return(tenant, nil).Times(1)
	leaseMock.EXPECT().Acquire(ctx, tenant.ID).Return("lease-token", true, nil).Times(1)
	leaseMock.EXPECT().Release(gomock.Any(), tenant.ID, "lease-token").Return(nil).Times(1)

	feedMock.EXPECT().FetchEnvelope(ctx, tenant.AgencyID).Return(envelope, nil).Times(1)
	repoMock.EXPECT().ListSyncIncidents(ctx, tenant.ID, gomock.Any()).Return([]*models.Incident{p1, p2}, nil).Times(1)

	repoMock.EXPECT().ListActiveIncidents(ctx, tenant.ID).Return([]*models.Incident{p1, p2}, nil).Times(1)
	repoMock.EXPECT().ListActiveAlerts(ctx, tenant.ID).Return(nil, nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, posting.PostJob{TenantID: tenant.ID, Kind: posting.KindIncident, RecordID: p1.ID}).
		Return(errors.New("queue unavailable")).
		Times(1)
	publisherMock.EXPECT().
		Publish(ctx, posting.PostJob{TenantID: tenant.ID, Kind: posting.KindIncident, RecordID: p2.ID}).
		Return(nil).
		Times(1)

	result, err := svc.SyncTenant(ctx, tenant.ID)
	require.NoError(t, err)
	// The job that did enqueue is still counted.
	assert.Equal(t, 1, result.PostsQueued)
	assert.Empty(t, result.Error)
}

func TestSyncAll_FansOutOverTenants(t *testing.T) {
	svc, repoMock, _, _, _ := newTestSyncService(t)
	ctx := context.Background()

	t1 := syncableTenant()
	t1.FeedSecret = ""
	t2 := syncableTenant()
	t2.AgencyID = ""

	repoMock.EXPECT().
		ListActiveTenants(ctx).
		Return([]*models.Tenant{t1, t2}, nil).
		Times(1)

	report, err := svc.SyncAll(ctx)
	require.NoError(t, err)
	require.Len(t, report.Tenants, 2)
	assert.Equal(t, t1.ID, report.Tenants[0].TenantID)
	assert.Equal(t, t2.ID, report.Tenants[1].TenantID)
	assert.NotEmpty(t, report.Tenants[0].Skipped)
	assert.NotEmpty(t, report.Tenants[1].Skipped)
}

func TestSyncAll_ListFailure(t *testing.T) {
	svc, repoMock, _, _, _ := newTestSyncService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		ListActiveTenants(ctx).
		Return(nil, errors.New("db down")).
		Times(1)

	_, err := svc.SyncAll(ctx)
	require.Error(t, err)
}

func TestRetryItem_Incident(t *testing.T) {
	svc, repoMock, _, _, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	recordID := uuid.New()

	repoMock.EXPECT().ClearIncidentError(ctx, tenantID, recordID).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, posting.PostJob{TenantID: tenantID, Kind: posting.KindIncident, RecordID: recordID}).
		Return(nil).
		Times(1)

	err := svc.RetryItem(ctx, tenantID, posting.KindIncident, recordID)
	require.NoError(t, err)
}

func TestRetryItem_Alert(t *testing.T) {
	svc, repoMock, _, _, publisherMock := newTestSyncService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	recordID := uuid.New()

	repoMock.EXPECT().ClearAlertError(ctx, tenantID, recordID).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	err := svc.RetryItem(ctx, tenantID, posting.KindAlert, recordID)
	require.NoError(t, err)
}

func TestRetryItem_UnknownKind(t *testing.T) {
	svc, _, _, _, _ := newTestSyncService(t)

	err := svc.RetryItem(context.Background(), uuid.New(), posting.ItemKind("bogus"), uuid.New())
	require.Error(t, err)
}

func TestConsolidatedIncidents_GroupsSnapshot(t *testing.T) {
	svc, repoMock, _, _, _ := newTestSyncService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	groupID := "G"

	a := &models.Incident{ID: uuid.New(), GroupID: &groupID, Units: []string{"E1"}, CallReceived: time.Now().UTC()}
	b := &models.Incident{ID: uuid.New(), GroupID: &groupID, Units: []string{"E2"}, CallReceived: time.Now().UTC().Add(time.Minute)}

	repoMock.EXPECT().ListActiveIncidents(ctx, tenantID).Return([]*models.Incident{a, b}, nil).Times(1)

	out, err := svc.ConsolidatedIncidents(ctx, tenantID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"E1", "E2"}, out[0].Units)
}
