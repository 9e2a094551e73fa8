package posting

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records status writes and applies them to the stored records
// so a rebuilt view reflects them.
type fakeStore struct {
	tenant   *models.Tenant
	incident *models.Incident
	group    []*models.Incident
	alert    *models.WeatherAlert

	postedID     uuid.UUID
	postedRef    string
	postedIDs    []uuid.UUID
	failedID     uuid.UUID
	failedReason string
	failedIDs    []uuid.UUID
}

func (s *fakeStore) findIncident(id uuid.UUID) *models.Incident {
	for _, m := range s.group {
		if m.ID == id {
			return m
		}
	}
	if s.incident != nil && s.incident.ID == id {
		return s.incident
	}
	return nil
}

func (s *fakeStore) GetTenant(_ context.Context, _ uuid.UUID) (*models.Tenant, error) {
	return s.tenant, nil
}

func (s *fakeStore) GetIncident(_ context.Context, _, _ uuid.UUID) (*models.Incident, error) {
	return s.incident, nil
}

func (s *fakeStore) GetIncidentGroup(_ context.Context, _ uuid.UUID, _ string) ([]*models.Incident, error) {
	return s.group, nil
}

func (s *fakeStore) GetAlert(_ context.Context, _, _ uuid.UUID) (*models.WeatherAlert, error) {
	return s.alert, nil
}

func (s *fakeStore) MarkIncidentPosted(_ context.Context, id uuid.UUID, postID string) error {
	s.postedID, s.postedRef = id, postID
	s.postedIDs = append(s.postedIDs, id)
	if inc := s.findIncident(id); inc != nil {
		ref := postID
		inc.IsPosted = true
		inc.NeedsRepost = false
		inc.PostID = &ref
		inc.SyncError = nil
	}
	return nil
}

func (s *fakeStore) MarkIncidentFailed(_ context.Context, id uuid.UUID, reason string) error {
	s.failedID, s.failedReason = id, reason
	s.failedIDs = append(s.failedIDs, id)
	if inc := s.findIncident(id); inc != nil {
		msg := reason
		inc.SyncError = &msg
	}
	return nil
}

func (s *fakeStore) MarkAlertPosted(_ context.Context, id uuid.UUID, postID string) error {
	s.postedID, s.postedRef = id, postID
	return nil
}

func (s *fakeStore) MarkAlertFailed(_ context.Context, id uuid.UUID, reason string) error {
	s.failedID, s.failedReason = id, reason
	return nil
}

// fakeSocial fails a configurable number of create calls before succeeding.
type fakeSocial struct {
	failCreates int
	creates     int
	updates     int
	updatedID   string
}

func (f *fakeSocial) CreatePost(_ context.Context, _, _, _ string) (string, error) {
	f.creates++
	if f.creates <= f.failCreates {
		return "", errors.New("platform unavailable")
	}
	return "post-42", nil
}

func (f *fakeSocial) UpdatePost(_ context.Context, postID, _, _ string) error {
	f.updates++
	f.updatedID = postID
	return nil
}

func newTestWorker(store *fakeStore, social *fakeSocial) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		PostMaxRetries: 3,
		PostBaseDelay:  time.Millisecond,
	}
	return NewWorker(nil, store, social, logger, cfg)
}

func testTenant() *models.Tenant {
	return &models.Tenant{
		ID:              uuid.New(),
		Name:            "Springfield FD",
		SocialPageID:    "page-1",
		SocialPageToken: "token-1",
	}
}

func TestProcessJob_PostsIncident(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		tenant: tenant,
		incident: &models.Incident{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Category:     models.CategoryFire,
			Address:      "12 Main St",
			Status:       models.IncidentActive,
			CallReceived: time.Now().UTC(),
		},
	}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: store.incident.ID})

	assert.Equal(t, 1, social.creates)
	assert.Equal(t, store.incident.ID, store.postedID)
	assert.Equal(t, "post-42", store.postedRef)
}

func TestProcessJob_SkipsMedicalIncident(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		tenant: tenant,
		incident: &models.Incident{
			ID:       uuid.New(),
			TenantID: tenant.ID,
			Category: models.CategoryMedical,
			Status:   models.IncidentActive,
		},
	}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: store.incident.ID})

	assert.Zero(t, social.creates)
	assert.Equal(t, uuid.Nil, store.postedID)
	assert.Equal(t, uuid.Nil, store.failedID)
}

func TestProcessJob_UpdatesExistingPost(t *testing.T) {
	tenant := testTenant()
	postID := "post-7"
	store := &fakeStore{
		tenant: tenant,
		incident: &models.Incident{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Category:     models.CategoryFire,
			Status:       models.IncidentActive,
			IsPosted:     true,
			PostID:       &postID,
			NeedsRepost:  true,
			CallReceived: time.Now().UTC(),
		},
	}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: store.incident.ID})

	assert.Zero(t, social.creates)
	assert.Equal(t, 1, social.updates)
	assert.Equal(t, "post-7", social.updatedID)
	assert.Equal(t, "post-7", store.postedRef)
}

func TestProcessJob_RetriesThenSucceeds(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		tenant: tenant,
		incident: &models.Incident{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Category:     models.CategoryFire,
			Status:       models.IncidentActive,
			CallReceived: time.Now().UTC(),
		},
	}
	social := &fakeSocial{failCreates: 2}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: store.incident.ID})

	assert.Equal(t, 3, social.creates)
	assert.Equal(t, "post-42", store.postedRef)
	assert.Equal(t, uuid.Nil, store.failedID)
}

func TestProcessJob_ExhaustedRetriesMarksFailed(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		tenant: tenant,
		incident: &models.Incident{
			ID:           uuid.New(),
			TenantID:     tenant.ID,
			Category:     models.CategoryFire,
			Status:       models.IncidentActive,
			CallReceived: time.Now().UTC(),
		},
	}
	social := &fakeSocial{failCreates: 10}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: store.incident.ID})

	assert.Equal(t, 3, social.creates)
	assert.Equal(t, store.incident.ID, store.failedID)
	assert.Contains(t, store.failedReason, "platform unavailable")
}

func TestProcessJob_GroupPostsConsolidatedMessage(t *testing.T) {
	tenant := testTenant()
	groupID := "G"
	base := time.Now().UTC()

	a := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Units:        []string{"E1"},
		Status:       models.IncidentActive,
		CallReceived: base,
	}
	b := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Units:        []string{"E2"},
		Status:       models.IncidentActive,
		CallReceived: base.Add(time.Minute),
	}

	store := &fakeStore{tenant: tenant, incident: a, group: []*models.Incident{a, b}}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: a.ID})

	require.Equal(t, 1, social.creates)
	// Every member shares the one post reference.
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, store.postedIDs)
	require.NotNil(t, b.PostID)
	assert.Equal(t, "post-42", *b.PostID)
}

func TestProcessJob_GroupLandsInPostedAfterOnePublish(t *testing.T) {
	tenant := testTenant()
	groupID := "G"
	base := time.Now().UTC()

	a := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Status:       models.IncidentActive,
		CallReceived: base,
	}
	b := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Address:      "12 Main St",
		Status:       models.IncidentActive,
		CallReceived: base.Add(time.Minute),
	}

	store := &fakeStore{tenant: tenant, incident: a, group: []*models.Incident{a, b}}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: a.ID})

	view := BuildView(store.group, nil)
	assert.Empty(t, view.Pending)
	require.Len(t, view.Posted, 1)
	assert.Equal(t, StatePosted, view.Posted[0].State)
	require.NotNil(t, view.Posted[0].PostID)
	assert.Equal(t, "post-42", *view.Posted[0].PostID)
}

func TestProcessJob_GroupReusesMemberPostReference(t *testing.T) {
	tenant := testTenant()
	groupID := "G"
	existing := "post-9"
	base := time.Now().UTC()

	a := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Status:       models.IncidentActive,
		CallReceived: base,
	}
	b := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Status:       models.IncidentActive,
		IsPosted:     true,
		PostID:       &existing,
		CallReceived: base.Add(time.Minute),
	}

	store := &fakeStore{tenant: tenant, incident: a, group: []*models.Incident{a, b}}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: a.ID})

	assert.Zero(t, social.creates)
	assert.Equal(t, 1, social.updates)
	assert.Equal(t, "post-9", social.updatedID)
	require.NotNil(t, a.PostID)
	assert.Equal(t, "post-9", *a.PostID)
}

func TestProcessJob_GroupFailureMarksEveryMember(t *testing.T) {
	tenant := testTenant()
	groupID := "G"
	base := time.Now().UTC()

	a := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Status:       models.IncidentActive,
		CallReceived: base,
	}
	b := &models.Incident{
		ID:           uuid.New(),
		TenantID:     tenant.ID,
		GroupID:      &groupID,
		Category:     models.CategoryFire,
		Status:       models.IncidentActive,
		CallReceived: base.Add(time.Minute),
	}

	store := &fakeStore{tenant: tenant, incident: a, group: []*models.Incident{a, b}}
	social := &fakeSocial{failCreates: 10}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: a.ID})

	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, store.failedIDs)

	view := BuildView(store.group, nil)
	assert.Empty(t, view.Pending)
	require.Len(t, view.Failed, 1)
	assert.Equal(t, StateFailed, view.Failed[0].State)
}

func TestProcessJob_PostsAlert(t *testing.T) {
	tenant := testTenant()
	store := &fakeStore{
		tenant: tenant,
		alert: &models.WeatherAlert{
			ID:       uuid.New(),
			TenantID: tenant.ID,
			Event:    "Tornado Warning",
			Headline: "until 6 PM",
			Status:   models.AlertActive,
		},
	}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindAlert, RecordID: store.alert.ID})

	assert.Equal(t, 1, social.creates)
	assert.Equal(t, store.alert.ID, store.postedID)
}

func TestProcessJob_TenantWithoutPageSkips(t *testing.T) {
	tenant := testTenant()
	tenant.SocialPageID = ""
	store := &fakeStore{tenant: tenant}
	social := &fakeSocial{}
	w := newTestWorker(store, social)

	w.processJob(context.Background(), PostJob{TenantID: tenant.ID, Kind: KindIncident, RecordID: uuid.New()})

	assert.Zero(t, social.creates)
}
