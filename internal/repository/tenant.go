package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/sirenwatch/sirenwatch/internal/models"
)

const tenantCacheTTL = 5 * time.Minute

const tenantColumns = `
	id,
	name,
	agency_id,
	feed_secret,
	zones,
	social_page_id,
	social_page_token,
	post_incidents,
	post_alerts,
	active,
	created_at,
	updated_at
`

// ListActiveTenants returns every tenant eligible for a sync pass.
func (r *Repository) ListActiveTenants(ctx context.Context) ([]*models.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE active ORDER BY created_at;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active tenants: %w", err)
	}
	defer rows.Close()

	tenants := make([]*models.Tenant, 0)
	for rows.Next() {
		tenant, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant row: %w", err)
		}
		tenants = append(tenants, tenant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenants: %w", err)
	}
	return tenants, nil
}

// GetTenant returns a tenant by id, via the Redis cache when possible.
func (r *Repository) GetTenant(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	if tenant, err := r.getTenantFromCache(ctx, id); err == nil && tenant != nil {
		return tenant, nil
	}

	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE id = $1;`
	row := r.db.QueryRow(ctx, query, id)

	tenant, err := scanTenant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("tenant with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get tenant by id: %w", err)
	}

	if err := r.setTenantCache(ctx, tenant); err != nil {
		// cache write failure is not fatal for the read path
		return tenant, nil
	}
	return tenant, nil
}

// InvalidateTenantCache drops the cached tenant entry.
func (r *Repository) InvalidateTenantCache(ctx context.Context, id uuid.UUID) error {
	key := tenantCacheKey(id)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate tenant cache: %w", err)
	}
	return nil
}

func tenantCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("tenant:%s", id.String())
}

func (r *Repository) getTenantFromCache(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	val, err := r.redisClient.Get(ctx, tenantCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant from cache: %w", err)
	}

	tenant := &cachedTenant{}
	if err := json.Unmarshal(val, tenant); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant from cache: %w", err)
	}
	return tenant.toModel(), nil
}

func (r *Repository) setTenantCache(ctx context.Context, tenant *models.Tenant) error {
	val, err := json.Marshal(fromModel(tenant))
	if err != nil {
		return fmt.Errorf("failed to marshal tenant for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, tenantCacheKey(tenant.ID), val, tenantCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set tenant in cache: %w", err)
	}
	return nil
}

// cachedTenant carries the secret fields the public JSON shape omits.
type cachedTenant struct {
	models.Tenant
	FeedSecret      string `json:"feed_secret"`
	SocialPageToken string `json:"social_page_token"`
}

func fromModel(t *models.Tenant) *cachedTenant {
	return &cachedTenant{Tenant: *t, FeedSecret: t.FeedSecret, SocialPageToken: t.SocialPageToken}
}

func (c *cachedTenant) toModel() *models.Tenant {
	t := c.Tenant
	t.FeedSecret = c.FeedSecret
	t.SocialPageToken = c.SocialPageToken
	return &t
}

func scanTenant(row pgx.Row) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	err := row.Scan(
		&tenant.ID,
		&tenant.Name,
		&tenant.AgencyID,
		&tenant.FeedSecret,
		&tenant.Zones,
		&tenant.SocialPageID,
		&tenant.SocialPageToken,
		&tenant.PostIncidents,
		&tenant.PostAlerts,
		&tenant.Active,
		&tenant.CreatedAt,
		&tenant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return tenant, nil
}
