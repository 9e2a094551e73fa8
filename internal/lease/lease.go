package lease

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Lease guards per-tenant sync single-flight with a Redis key that expires
// on its own. A token + expiry lease self-heals after a crashed worker,
// unlike a plain boolean flag. Tenants stay independent: one key per tenant,
// never a global lock.
type Lease struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func New(redisClient *redis.Client, ttl time.Duration) *Lease {
	return &Lease{redisClient: redisClient, ttl: ttl}
}

func leaseKey(tenantID uuid.UUID) string {
	return fmt.Sprintf("sync_lease:%s", tenantID)
}

// releaseScript deletes the lease only if the caller still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// renewScript extends the lease only if the caller still owns it.
var renewScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("pexpire", KEYS[1], ARGV[2])
end
return 0
`)

// Acquire tries to take the tenant's lease. It returns the owner token and
// whether the lease was acquired; false means a pass is already in flight.
func (l *Lease) Acquire(ctx context.Context, tenantID uuid.UUID) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.redisClient.SetNX(ctx, leaseKey(tenantID), token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire sync lease for tenant %s: %w", tenantID, err)
	}
	return token, ok, nil
}

// Renew extends the lease TTL if the token still owns it.
func (l *Lease) Renew(ctx context.Context, tenantID uuid.UUID, token string) (bool, error) {
	n, err := renewScript.Run(ctx, l.redisClient, []string{leaseKey(tenantID)}, token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to renew sync lease for tenant %s: %w", tenantID, err)
	}
	return n == 1, nil
}

// Release gives the lease back. Releasing a lease owned by someone else
// (ours expired and was re-acquired) is a no-op.
func (l *Lease) Release(ctx context.Context, tenantID uuid.UUID, token string) error {
	if _, err := releaseScript.Run(ctx, l.redisClient, []string{leaseKey(tenantID)}, token).Int(); err != nil {
		return fmt.Errorf("failed to release sync lease for tenant %s: %w", tenantID, err)
	}
	return nil
}
