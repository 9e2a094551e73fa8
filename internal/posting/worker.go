package posting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/models"
	"github.com/sirenwatch/sirenwatch/internal/reconcile"
	"github.com/sirupsen/logrus"
)

// Store is the persistence surface the worker needs to load records and
// write publication status back.
type Store interface {
	GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetIncident(ctx context.Context, tenantID, id uuid.UUID) (*models.Incident, error)
	GetIncidentGroup(ctx context.Context, tenantID uuid.UUID, groupID string) ([]*models.Incident, error)
	GetAlert(ctx context.Context, tenantID, id uuid.UUID) (*models.WeatherAlert, error)
	MarkIncidentPosted(ctx context.Context, id uuid.UUID, postID string) error
	MarkIncidentFailed(ctx context.Context, id uuid.UUID, reason string) error
	MarkAlertPosted(ctx context.Context, id uuid.UUID, postID string) error
	MarkAlertFailed(ctx context.Context, id uuid.UUID, reason string) error
}

// Social is the outbound social-platform surface.
type Social interface {
	CreatePost(ctx context.Context, pageID, pageToken, message string) (string, error)
	UpdatePost(ctx context.Context, postID, pageToken, message string) error
}

// Worker drains the posting queue and publishes to the social platform.
// A failed job is written back as a failed posting state, not retried in
// the queue; retry happens via the posting view or the next sync pass.
type Worker struct {
	redisClient *redis.Client
	store       Store
	social      Social
	logger      *logrus.Logger
	cfg         *config.Config
}

func NewWorker(redisClient *redis.Client, store Store, social Social, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		store:       store,
		social:      social,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start launches the queue-draining goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting posting worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping posting worker.")
				return
			default:
				// BRPop with 0 waits indefinitely for the next job.
				result, err := w.redisClient.BRPop(ctx, 0, postingQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop post job from Redis")
					time.Sleep(w.cfg.PostBaseDelay)
					continue
				}

				var job PostJob
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal post job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job PostJob) {
	log := w.logger.WithFields(logrus.Fields{
		"tenant_id": job.TenantID,
		"kind":      job.Kind,
		"record_id": job.RecordID,
	})
	log.Debug("Processing post job...")

	tenant, err := w.store.GetTenant(ctx, job.TenantID)
	if err != nil {
		log.WithError(err).Error("Failed to load tenant for post job")
		return
	}
	if !tenant.Postable() {
		log.Warn("Tenant has no social page configured. Skipping post job.")
		return
	}

	switch job.Kind {
	case KindIncident:
		w.postIncident(ctx, tenant, job.RecordID, log)
	case KindAlert:
		w.postAlert(ctx, tenant, job.RecordID, log)
	default:
		log.Warnf("Unknown post job kind %q", job.Kind)
	}
}

func (w *Worker) postIncident(ctx context.Context, tenant *models.Tenant, id uuid.UUID, log *logrus.Entry) {
	inc, err := w.store.GetIncident(ctx, tenant.ID, id)
	if err != nil {
		log.WithError(err).Error("Failed to load incident for post job")
		return
	}
	// Medical calls are stored and tracked but never published.
	if inc.Category == models.CategoryMedical {
		log.Debug("Skipping medical incident.")
		return
	}

	members := []*models.Incident{inc}
	if inc.GroupID != nil && *inc.GroupID != "" {
		if members, err = w.store.GetIncidentGroup(ctx, tenant.ID, *inc.GroupID); err != nil {
			log.WithError(err).Error("Failed to load incident group for post job")
			return
		}
	}
	consolidated := reconcile.Consolidate(members)
	if len(consolidated) == 0 {
		return
	}
	message := FormatIncidentMessage(consolidated[0])

	// A group shares one post; reuse whichever member holds the reference.
	existing := inc.PostID
	for _, m := range members {
		if m.PostID != nil && *m.PostID != "" {
			existing = m.PostID
			break
		}
	}

	postID, err := w.deliver(ctx, tenant, existing, message)
	if err != nil {
		log.WithError(err).Error("Failed to publish incident post")
		for _, m := range members {
			if markErr := w.store.MarkIncidentFailed(ctx, m.ID, err.Error()); markErr != nil {
				log.WithError(markErr).Error("Failed to record incident post failure")
			}
		}
		return
	}
	// Every member carries the shared reference so the whole group reads
	// as posted.
	for _, m := range members {
		if err := w.store.MarkIncidentPosted(ctx, m.ID, postID); err != nil {
			log.WithError(err).Error("Failed to record incident post success")
		}
	}
	log.WithField("post_id", postID).Info("Incident post delivered successfully.")
}

func (w *Worker) postAlert(ctx context.Context, tenant *models.Tenant, id uuid.UUID, log *logrus.Entry) {
	alert, err := w.store.GetAlert(ctx, tenant.ID, id)
	if err != nil {
		log.WithError(err).Error("Failed to load alert for post job")
		return
	}
	message := FormatAlertMessage(alert)

	postID, err := w.deliver(ctx, tenant, alert.PostID, message)
	if err != nil {
		log.WithError(err).Error("Failed to publish alert post")
		if markErr := w.store.MarkAlertFailed(ctx, alert.ID, err.Error()); markErr != nil {
			log.WithError(markErr).Error("Failed to record alert post failure")
		}
		return
	}
	if err := w.store.MarkAlertPosted(ctx, alert.ID, postID); err != nil {
		log.WithError(err).Error("Failed to record alert post success")
		return
	}
	log.WithField("post_id", postID).Info("Alert post delivered successfully.")
}

// deliver publishes or updates the post with bounded retries and
// exponential backoff. A record with an existing post reference is edited
// in place rather than reposted.
func (w *Worker) deliver(ctx context.Context, tenant *models.Tenant, existingPostID *string, message string) (string, error) {
	delay := w.cfg.PostBaseDelay
	var lastErr error

	for i := 0; i < w.cfg.PostMaxRetries; i++ {
		if i > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}

		if existingPostID != nil && *existingPostID != "" {
			if lastErr = w.social.UpdatePost(ctx, *existingPostID, tenant.SocialPageToken, message); lastErr == nil {
				return *existingPostID, nil
			}
		} else {
			var postID string
			if postID, lastErr = w.social.CreatePost(ctx, tenant.SocialPageID, tenant.SocialPageToken, message); lastErr == nil {
				return postID, nil
			}
		}
	}
	return "", fmt.Errorf("post delivery failed after %d attempts: %w", w.cfg.PostMaxRetries, lastErr)
}
