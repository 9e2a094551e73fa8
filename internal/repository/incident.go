package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

const incidentColumns = `
	id,
	tenant_id,
	external_id,
	group_id,
	call_type,
	category,
	address,
	latitude,
	longitude,
	units,
	unit_statuses,
	description,
	status,
	call_received,
	call_closed,
	is_posted,
	post_id,
	needs_repost,
	last_sync_attempt,
	sync_error,
	created_at,
	updated_at
`

// ListSyncIncidents returns the reconciliation window for a tenant: every
// active incident plus incidents closed after the given cutoff. The closed
// tail keeps reconciliation idempotent for records still present in the
// feed's "recent" list.
func (r *Repository) ListSyncIncidents(ctx context.Context, tenantID uuid.UUID, closedSince time.Time) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE tenant_id = $1
		  AND (status = 'active' OR (status = 'closed' AND call_closed >= $2))
		ORDER BY call_received DESC;
	`
	return r.queryIncidents(ctx, query, tenantID, closedSince)
}

// ListActiveIncidents returns the tenant's active incidents, newest first.
func (r *Repository) ListActiveIncidents(ctx context.Context, tenantID uuid.UUID) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE tenant_id = $1 AND status = 'active'
		ORDER BY call_received DESC;
	`
	return r.queryIncidents(ctx, query, tenantID)
}

// GetIncident returns one incident scoped to its tenant.
func (r *Repository) GetIncident(ctx context.Context, tenantID, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE tenant_id = $1 AND id = $2;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// GetIncidentGroup returns every member of a dispatch group.
func (r *Repository) GetIncidentGroup(ctx context.Context, tenantID uuid.UUID, groupID string) ([]*models.Incident, error) {
	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE tenant_id = $1 AND group_id = $2
		ORDER BY call_received;
	`
	return r.queryIncidents(ctx, query, tenantID, groupID)
}

// CreateIncident inserts a new incident record.
func (r *Repository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	statuses, err := json.Marshal(incident.UnitStatuses)
	if err != nil {
		return fmt.Errorf("failed to marshal unit statuses: %w", err)
	}

	query := `
		INSERT INTO incidents (
			tenant_id, external_id, group_id, call_type, category, address,
			latitude, longitude, units, unit_statuses, description, status,
			call_received, call_closed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::jsonb, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.TenantID,
		incident.ExternalID,
		incident.GroupID,
		incident.CallType,
		incident.Category,
		incident.Address,
		incident.Latitude,
		incident.Longitude,
		incident.Units,
		statuses,
		incident.Description,
		incident.Status,
		incident.CallReceived,
		incident.CallClosed,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// UpdateIncident patches the mutable and lifecycle fields of an incident.
func (r *Repository) UpdateIncident(ctx context.Context, incident *models.Incident) error {
	statuses, err := json.Marshal(incident.UnitStatuses)
	if err != nil {
		return fmt.Errorf("failed to marshal unit statuses: %w", err)
	}

	query := `
		UPDATE incidents SET
			group_id = $1,
			call_type = $2,
			category = $3,
			address = $4,
			latitude = $5,
			longitude = $6,
			units = $7,
			unit_statuses = $8::jsonb,
			description = $9,
			status = $10,
			call_closed = $11,
			needs_repost = $12,
			updated_at = NOW()
		WHERE tenant_id = $13 AND id = $14;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		incident.GroupID,
		incident.CallType,
		incident.Category,
		incident.Address,
		incident.Latitude,
		incident.Longitude,
		incident.Units,
		statuses,
		incident.Description,
		incident.Status,
		incident.CallClosed,
		incident.NeedsRepost,
		incident.TenantID,
		incident.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for update", incident.ID)
	}
	return nil
}

// MarkIncidentPosted records a successful publish.
func (r *Repository) MarkIncidentPosted(ctx context.Context, id uuid.UUID, postID string) error {
	query := `
		UPDATE incidents SET
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
		return fmt.Errorf("failed to mark incident posted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for posting update", id)
	}
	return nil
}

// MarkIncidentFailed records a publish failure; the state is non-terminal.
func (r *Repository) MarkIncidentFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE incidents SET
			sync_error = $1,
			last_sync_attempt = NOW(),
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, reason, id)
	if err != nil {
		return fmt.Errorf("failed to mark incident failed: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for failure update", id)
	}
	return nil
}

// ClearIncidentError resets a failed incident for retry. Whether it lands
// back in pending or needs_update follows from its post reference.
func (r *Repository) ClearIncidentError(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `
		UPDATE incidents SET
			sync_error = NULL,
			updated_at = NOW()
		WHERE tenant_id = $1 AND id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to clear incident sync error: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %s not found for retry", id)
	}
	return nil
}

func (r *Repository) queryIncidents(ctx context.Context, query string, args ...any) ([]*models.Incident, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating incidents: %w", err)
	}
	return incidents, nil
}

func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var statuses []byte
	err := row.Scan(
		&incident.ID,
		&incident.TenantID,
		&incident.ExternalID,
		&incident.GroupID,
		&incident.CallType,
		&incident.Category,
		&incident.Address,
		&incident.Latitude,
		&incident.Longitude,
		&incident.Units,
		&statuses,
		&incident.Description,
		&incident.Status,
		&incident.CallReceived,
		&incident.CallClosed,
		&incident.IsPosted,
		&incident.PostID,
		&incident.NeedsRepost,
		&incident.LastSyncAttempt,
		&incident.SyncError,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(statuses) > 0 {
		if err := json.Unmarshal(statuses, &incident.UnitStatuses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal unit statuses: %w", err)
		}
	}
	return incident, nil
}
