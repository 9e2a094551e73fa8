package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

const alertColumns = `
	id,
	tenant_id,
	external_id,
	lineage,
	event,
	headline,
	description,
	instruction,
	severity,
	urgency,
	certainty,
	onset,
	expires,
	ends,
	zones,
	status,
	is_posted,
	post_id,
	needs_repost,
	last_sync_attempt,
	sync_error,
	created_at,
	updated_at
`

// ListActiveAlerts returns the tenant's active alerts in creation order,
// which keeps the chain-resolution scan deterministic.
func (r *Repository) ListActiveAlerts(ctx context.Context, tenantID uuid.UUID) ([]*models.WeatherAlert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM weather_alerts
		WHERE tenant_id = $1 AND status = 'active'
		ORDER BY created_at;
	`
	return r.queryAlerts(ctx, query, tenantID)
}

// GetAlert returns one alert scoped to its tenant.
func (r *Repository) GetAlert(ctx context.Context, tenantID, id uuid.UUID) (*models.WeatherAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM weather_alerts WHERE tenant_id = $1 AND id = $2;`

	alert, err := scanAlert(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// CreateAlert inserts a new alert record.
func (r *Repository) CreateAlert(ctx context.Context, alert *models.WeatherAlert) error {
	query := `
		INSERT INTO weather_alerts (
			tenant_id, external_id, lineage, event, headline, description,
			instruction, severity, urgency, certainty, onset, expires, ends,
			zones, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.TenantID,
		alert.ExternalID,
		alert.Lineage,
		alert.Event,
		alert.Headline,
		alert.Description,
		alert.Instruction,
		alert.Severity,
		alert.Urgency,
		alert.Certainty,
		alert.Onset,
		alert.Expires,
		alert.Ends,
		alert.Zones,
		alert.Status,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// UpdateAlert writes back a chain-resolved alert, including its evolved
// external id and lineage.
func (r *Repository) UpdateAlert(ctx context.Context, alert *models.WeatherAlert) error {
	query := `
		UPDATE weather_alerts SET
			external_id = $1,
			lineage = $2,
			event = $3,
			headline = $4,
			description = $5,
			instruction = $6,
			severity = $7,
			urgency = $8,
			certainty = $9,
			onset = $10,
			expires = $11,
			ends = $12,
			zones = $13,
			status = $14,
			needs_repost = $15,
			updated_at = NOW()
		WHERE tenant_id = $16 AND id = $17;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.ExternalID,
		alert.Lineage,
		alert.Event,
		alert.Headline,
		alert.Description,
		alert.Instruction,
		alert.Severity,
		alert.Urgency,
		alert.Certainty,
		alert.Onset,
		alert.Expires,
		alert.Ends,
		alert.Zones,
		alert.Status,
		alert.NeedsRepost,
		alert.TenantID,
		alert.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for update", alert.ID)
	}
	return nil
}

// ExpireAlerts sweeps active alerts past their expiry timestamp.
func (r *Repository) ExpireAlerts(ctx context.Context, tenantID uuid.UUID, now time.Time) (int64, error) {
	query := `
		UPDATE weather_alerts SET
			status = 'expired',
			updated_at = NOW()
		WHERE tenant_id = $1 AND status = 'active' AND expires IS NOT NULL AND expires < $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, tenantID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire alerts: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// MarkAlertPosted records a successful publish.
func (r *Repository) MarkAlertPosted(ctx context.Context, id uuid.UUID, postID string) error {
	query := `
		UPDATE weather_alerts SET
			is_posted = TRUE,
			post_id = $1,
			needs_repost = FALSE,
			sync_error = NULL,
			last_sync_attempt = NOW(),
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, postID, id)
	if err != nil {
		return fmt.Errorf("failed to mark alert posted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for posting update", id)
	}
	return nil
}

// MarkAlertFailed records a publish failure; the state is non-terminal.
func (r *Repository) MarkAlertFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE weather_alerts SET
			sync_error = $1,
			last_sync_attempt = NOW(),
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("failed to mark alert failed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for failure update", id)
	}
	return nil
}

// ClearAlertError resets a failed alert for retry.
func (r *Repository) ClearAlertError(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		UPDATE weather_alerts SET
			sync_error = NULL,
			updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to clear alert sync error: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for retry", id)
	}
	return nil
}

func (r *Repository) queryAlerts(ctx context.Context, query string, args ...any) ([]*models.WeatherAlert, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.WeatherAlert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alerts: %w", err)
	}
	return alerts, nil
}

func scanAlert(row pgx.Row) (*models.WeatherAlert, error) {
	alert := &models.WeatherAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.TenantID,
		&alert.ExternalID,
		&alert.Lineage,
		&alert.Event,
		&alert.Headline,
		&alert.Description,
		&alert.Instruction,
		&alert.Severity,
		&alert.Urgency,
		&alert.Certainty,
		&alert.Onset,
		&alert.Expires,
		&alert.Ends,
		&alert.Zones,
		&alert.Status,
		&alert.IsPosted,
		&alert.PostID,
		&alert.NeedsRepost,
		&alert.LastSyncAttempt,
		&alert.SyncError,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}
