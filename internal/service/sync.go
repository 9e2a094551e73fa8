package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/feed"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
	"github.com/sirenwatch/sirenwatch/internal/weather"
	"github.com/sirupsen/logrus"
)

// closedWindow is how long closed incidents stay in the reconciliation
// window. The feed's "recent" list looks back less than a day.
const closedWindow = 24 * time.Hour

// SyncRepository is the persistence contract the orchestrator needs.
type SyncRepository interface {
	ListActiveTenants(ctx context.Context) ([]*models.Tenant, error)
	GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error)

	ListSyncIncidents(ctx context.Context, tenantID uuid.UUID, closedSince time.Time) ([]*models.Incident, error)
	ListActiveIncidents(ctx context.Context, tenantID uuid.UUID) ([]*models.Incident, error)
	GetIncident(ctx context.Context, tenantID, id uuid.UUID) (*models.Incident, error)
	CreateIncident(ctx context.Context, incident *models.Incident) error
	UpdateIncident(ctx context.Context, incident *models.Incident) error
	ClearIncidentError(ctx context.Context, tenantID, id uuid.UUID) error

	ListActiveAlerts(ctx context.Context, tenantID uuid.UUID) ([]*models.WeatherAlert, error)
	GetAlert(ctx context.Context, tenantID, id uuid.UUID) (*models.WeatherAlert, error)
	CreateAlert(ctx context.Context, alert *models.WeatherAlert) error
	UpdateAlert(ctx context.Context, alert *models.WeatherAlert) error
	ClearAlertError(ctx context.Context, tenantID, id uuid.UUID) error
	ExpireAlerts(ctx context.Context, tenantID uuid.UUID, now time.Time) (int64, error)
}

// FeedClient pulls the upstream feeds.
type FeedClient interface {
	FetchEnvelope(ctx context.Context, agencyID string) (*feed.Envelope, error)
	FetchAlerts(ctx context.Context, zones []string) ([]weather.Message, error)
}

// SyncLease guards per-tenant single-flight.
type SyncLease interface {
	Acquire(ctx context.Context, tenantID uuid.UUID) (string, bool, error)
	Release(ctx context.Context, tenantID uuid.UUID, token string) error
}

// TenantResult reports one tenant's sync pass for the trigger response.
type TenantResult struct {
	TenantID         uuid.UUID `json:"tenant_id"`
	TenantName       string    `json:"tenant_name"`
	IncidentsCreated int       `json:"incidents_created"`
	IncidentsUpdated int       `json:"incidents_updated"`
	IncidentsClosed  int       `json:"incidents_closed"`
	AlertsCreated    int       `json:"alerts_created"`
	AlertsUpdated    int       `json:"alerts_updated"`
	AlertsExpired    int64     `json:"alerts_expired"`
	CancelsDropped   int       `json:"cancels_dropped"`
	PostsQueued      int       `json:"posts_queued"`
	Skipped          string    `json:"skipped,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// SyncReport aggregates a full fan-out pass.
type SyncReport struct {
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Tenants    []TenantResult `json:"tenants"`
}

// SyncService is the per-tenant synchronization entry point plus the read
// views the dashboard consumes.
type SyncService interface {
	SyncAll(ctx context.Context) (*SyncReport, error)
	SyncTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResult, error)
	ConsolidatedIncidents(ctx context.Context, tenantID uuid.UUID) ([]*reconcile.ConsolidatedIncident, error)
	ActiveAlerts(ctx context.Context, tenantID uuid.UUID) ([]*models.WeatherAlert, error)
	PostingView(ctx context.Context, tenantID uuid.UUID) (posting.View, error)
	RetryItem(ctx context.Context, tenantID uuid.UUID, kind posting.ItemKind, recordID uuid.UUID) error
}

type syncService struct {
	repo      SyncRepository
	feed      FeedClient
	lease     SyncLease
	publisher posting.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewSyncService(repo SyncRepository, feedClient FeedClient, lease SyncLease, publisher posting.Publisher, logger *logrus.Logger, cfg *config.Config) SyncService {
	return &syncService{
		repo:      repo,
		feed:      feedClient,
		lease:     lease,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// SyncAll fans a sync pass out over every active tenant. Tenants are
// independent and run concurrently; one tenant's failure never touches the
// others.
func (s *syncService) SyncAll(ctx context.Context) (*SyncReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sync",
		"method":  "SyncAll",
	})
	log.Info("Starting sync pass for all tenants")

	tenants, err := s.repo.ListActiveTenants(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list active tenants")
		return nil, fmt.Errorf("service: could not list tenants: %w", err)
	}

	report := &SyncReport{
		StartedAt: time.Now().UTC(),
		Tenants:   make([]TenantResult, len(tenants)),
	}

	var wg sync.WaitGroup
	for i, tenant := range tenants {
		wg.Add(1)
		go func(i int, tenant *models.Tenant) {
			defer wg.Done()
			report.Tenants[i] = s.syncTenant(ctx, tenant)
		}(i, tenant)
	}
	wg.Wait()

	report.FinishedAt = time.Now().UTC()
	log.WithField("tenants", len(tenants)).Info("Sync pass completed")
	return report, nil
}

// SyncTenant runs a single tenant's pass, for the manual "sync now" action.
func (s *syncService) SyncTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResult, error) {
	tenant, err := s.repo.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("service: tenant %s not found for sync: %w", tenantID, err)
	}
	result := s.syncTenant(ctx, tenant)
	return &result, nil
}

func (s *syncService) syncTenant(ctx context.Context, tenant *models.Tenant) TenantResult {
	result := TenantResult{TenantID: tenant.ID, TenantName: tenant.Name}
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sync",
		"tenant_id": tenant.ID,
	})

	if tenant.AgencyID == "" || tenant.FeedSecret == "" {
		result.Skipped = "missing feed credentials"
		log.Warn("Skipping tenant: missing feed credentials")
		return result
	}

	token, acquired, err := s.lease.Acquire(ctx, tenant.ID)
	if err != nil {
		result.Error = err.Error()
		log.WithError(err).Error("Failed to acquire sync lease")
		return result
	}
	if !acquired {
		result.Skipped = "sync already in progress"
		log.Info("Skipping tenant: sync already in progress")
		return result
	}
	defer func() {
		if err := s.lease.Release(context.WithoutCancel(ctx), tenant.ID, token); err != nil {
			log.WithError(err).Warn("Failed to release sync lease")
		}
	}()

	now := time.Now().UTC()

	if err := s.syncIncidents(ctx, tenant, now, &result, log); err != nil {
		// Pass-level failure aborts this tenant only; stored progress
		// is retained and the next pass resumes idempotently.
		result.Error = err.Error()
		log.WithError(err).Error("Tenant incident sync failed")
		return result
	}

	if err := s.syncAlerts(ctx, tenant, now, &result, log); err != nil {
		result.Error = err.Error()
		log.WithError(err).Error("Tenant alert sync failed")
		return result
	}

	// queuePosts reports the jobs that made it onto the queue even when a
	// later enqueue failed.
	queued, err := s.queuePosts(ctx, tenant)
	if err != nil {
		log.WithError(err).Warn("Failed to queue some posting jobs")
	}
	result.PostsQueued = queued

	log.WithFields(logrus.Fields{
		"incidents_created": result.IncidentsCreated,
		"incidents_updated": result.IncidentsUpdated,
		"incidents_closed":  result.IncidentsClosed,
		"alerts_created":    result.AlertsCreated,
		"alerts_updated":    result.AlertsUpdated,
	}).Info("Tenant sync completed")
	return result
}

func (s *syncService) syncIncidents(ctx context.Context, tenant *models.Tenant, now time.Time, result *TenantResult, log *logrus.Entry) error {
	envelope, err := s.feed.FetchEnvelope(ctx, tenant.AgencyID)
	if err != nil {
		return err
	}

	payload, err := feed.Decrypt(envelope, tenant.FeedSecret)
	if err != nil {
		// Non-retryable for this payload; the next scheduled pass
		// fetches current feed state again.
		return err
	}

	stored, err := s.repo.ListSyncIncidents(ctx, tenant.ID, now.Add(-closedWindow))
	if err != nil {
		return fmt.Errorf("service: could not load stored incidents: %w", err)
	}

	diff := reconcile.Snapshot(tenant.ID, stored, payload, now)
	log.WithFields(logrus.Fields{
		"creates": len(diff.Create),
		"updates": len(diff.Update),
		"closes":  len(diff.Close),
	}).Debug("Reconciliation diff computed")

	// Apply in diff order: creates, then updates, then closes.
	for _, inc := range diff.Create {
		if err := s.repo.CreateIncident(ctx, inc); err != nil {
			return fmt.Errorf("service: could not create incident %s: %w", inc.ExternalID, err)
		}
		result.IncidentsCreated++
	}
	for _, inc := range diff.Update {
		if err := s.repo.UpdateIncident(ctx, inc); err != nil {
			return fmt.Errorf("service: could not update incident %s: %w", inc.ExternalID, err)
		}
		result.IncidentsUpdated++
	}
	for _, inc := range diff.Close {
		if err := s.repo.UpdateIncident(ctx, inc); err != nil {
			return fmt.Errorf("service: could not close incident %s: %w", inc.ExternalID, err)
		}
		result.IncidentsClosed++
	}
	return nil
}

func (s *syncService) syncAlerts(ctx context.Context, tenant *models.Tenant, now time.Time, result *TenantResult, log *logrus.Entry) error {
	if len(tenant.Zones) == 0 {
		return nil
	}

	msgs, err := s.feed.FetchAlerts(ctx, tenant.Zones)
	if err != nil {
		return err
	}

	stored, err := s.repo.ListActiveAlerts(ctx, tenant.ID)
	if err != nil {
		return fmt.Errorf("service: could not load stored alerts: %w", err)
	}

	res := weather.Resolve(tenant.ID, stored, msgs, now)
	for _, alert := range res.Create {
		if err := s.repo.CreateAlert(ctx, alert); err != nil {
			return fmt.Errorf("service: could not create alert %s: %w", alert.ExternalID, err)
		}
		result.AlertsCreated++
	}
	for _, alert := range res.Update {
		if err := s.repo.UpdateAlert(ctx, alert); err != nil {
			return fmt.Errorf("service: could not update alert %s: %w", alert.ExternalID, err)
		}
		result.AlertsUpdated++
	}
	result.CancelsDropped = res.DroppedCancels
	if res.DroppedCancels > 0 {
		log.WithField("dropped_cancels", res.DroppedCancels).Warn("Dropped cancel messages with no resolvable lineage")
	}

	expired, err := s.repo.ExpireAlerts(ctx, tenant.ID, now)
	if err != nil {
		return fmt.Errorf("service: could not expire alerts: %w", err)
	}
	result.AlertsExpired = expired
	return nil
}

// queuePosts enqueues a posting job for every item that is waiting for its
// first publish or needs its existing post updated.
func (s *syncService) queuePosts(ctx context.Context, tenant *models.Tenant) (int, error) {
	if !tenant.Postable() {
		return 0, nil
	}

	view, err := s.PostingView(ctx, tenant.ID)
	if err != nil {
		return 0, err
	}

	queued := 0
	var firstErr error
	enqueue := func(item posting.Item) {
		if item.Kind == posting.KindIncident && !tenant.PostIncidents {
			return
		}
		if item.Kind == posting.KindAlert && !tenant.PostAlerts {
			return
		}
		job := posting.PostJob{TenantID: tenant.ID, Kind: item.Kind, RecordID: item.RecordID}
		if err := s.publisher.Publish(ctx, job); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		queued++
	}

	for _, item := range view.Pending {
		enqueue(item)
	}
	for _, item := range view.Posted {
		if item.NeedsUpdate {
			enqueue(item)
		}
	}
	return queued, firstErr
}

// ConsolidatedIncidents returns the grouped read-time projection of the
// tenant's active incidents.
func (s *syncService) ConsolidatedIncidents(ctx context.Context, tenantID uuid.UUID) ([]*reconcile.ConsolidatedIncident, error) {
	incidents, err := s.repo.ListActiveIncidents(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}
	return reconcile.Consolidate(incidents), nil
}

// ActiveAlerts returns the tenant's active weather alerts.
func (s *syncService) ActiveAlerts(ctx context.Context, tenantID uuid.UUID) ([]*models.WeatherAlert, error) {
	alerts, err := s.repo.ListActiveAlerts(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}

// PostingView computes the tenant's pending/posted/failed posting sets.
func (s *syncService) PostingView(ctx context.Context, tenantID uuid.UUID) (posting.View, error) {
	incidents, err := s.repo.ListActiveIncidents(ctx, tenantID)
	if err != nil {
		return posting.View{}, fmt.Errorf("service: could not list incidents: %w", err)
	}
	alerts, err := s.repo.ListActiveAlerts(ctx, tenantID)
	if err != nil {
		return posting.View{}, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return posting.BuildView(incidents, alerts), nil
}

// RetryItem resets a failed item and queues it again. Whether it re-enters
// as a first publish or an update follows from its stored post reference.
func (s *syncService) RetryItem(ctx context.Context, tenantID uuid.UUID, kind posting.ItemKind, recordID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "sync",
		"method":    "RetryItem",
		"tenant_id": tenantID,
		"kind":      kind,
		"record_id": recordID,
	})

	switch kind {
	case posting.KindIncident:
		if err := s.repo.ClearIncidentError(ctx, tenantID, recordID); err != nil {
			log.WithError(err).Warn("Failed to reset incident for retry")
			return fmt.Errorf("service: could not retry incident: %w", err)
		}
	case posting.KindAlert:
		if err := s.repo.ClearAlertError(ctx, tenantID, recordID); err != nil {
			log.WithError(err).Warn("Failed to reset alert for retry")
			return fmt.Errorf("service: could not retry alert: %w", err)
		}
	default:
		return fmt.Errorf("service: unknown posting kind %q", kind)
	}

	job := posting.PostJob{TenantID: tenantID, Kind: kind, RecordID: recordID}
	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Error("Failed to queue retry job")
		return fmt.Errorf("service: could not queue retry: %w", err)
	}
	log.Info("Item queued for retry")
	return nil
}
