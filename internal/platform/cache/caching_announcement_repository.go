// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/announcements/usecase"
)

// CachingAnnouncementRepository decorates an AnnouncementRepository with Redis
// caching of the full listing. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
// Single records are read through to the store; every mutation invalidates
// the listing.
type CachingAnnouncementRepository struct {
	inner     usecase.AnnouncementRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies the usecase contract.
var _ usecase.AnnouncementRepository = (*CachingAnnouncementRepository)(nil)

// NewCachingAnnouncementRepository decorates an AnnouncementRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "announcements".
func NewCachingAnnouncementRepository(rdb *redis.Client, ttl time.Duration, inner usecase.AnnouncementRepository, namespace string) *CachingAnnouncementRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "announcements"
	}
	return &CachingAnnouncementRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// listKey is the cache key holding the full announcement listing.
func (c *CachingAnnouncementRepository) listKey() string {
	return c.namespace + ":all"
}

// invalidate drops the cached listing. Best effort: a failed delete only
// shortens cache freshness, it never fails the mutation.
func (c *CachingAnnouncementRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey()).Err()
}

// Create persists a new announcement and invalidates the cached listing.
func (c *CachingAnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	if err := c.inner.Create(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// FindAll retrieves the listing, checking cache first then falling back to
// the database.
func (c *CachingAnnouncementRepository) FindAll(ctx context.Context) ([]entity.Announcement, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.listKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Announcement
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByID reads through to the underlying repository. Point reads are cheap
// and caching them would complicate invalidation for little gain.
func (c *CachingAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	return c.inner.FindByID(ctx, id)
}

// Update saves the announcement and invalidates the cached listing.
func (c *CachingAnnouncementRepository) Update(ctx context.Context, a *entity.Announcement) error {
	if err := c.inner.Update(ctx, a); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes the announcement and invalidates the cached listing.
func (c *CachingAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}
