// Package di provides dependency injection factories for creating application components.
package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mananuf/voba-portal/internal/feature/announcements/adapters"
	"github.com/mananuf/voba-portal/internal/feature/announcements/usecase"
	"github.com/mananuf/voba-portal/internal/platform/cache"
)

// NewAnnouncementRepository creates the announcement store. When Redis is
// available the listing is served through the caching decorator; otherwise
// reads go straight to Postgres.
func NewAnnouncementRepository(rdb *redis.Client, db *gorm.DB) usecase.AnnouncementRepository {
	repo := adapters.NewAnnouncementPostgres(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingAnnouncementRepository(rdb, 0, repo, "announcements")
}
