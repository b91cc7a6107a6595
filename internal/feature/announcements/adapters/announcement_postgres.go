// Package adapters provides the repository implementations for announcements.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mananuf/voba-portal/internal/domain"
	"github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	"github.com/mananuf/voba-portal/internal/feature/announcements/usecase"
)

const resource = "announcement"

// announcementPostgres is the gorm-backed announcement store.
type announcementPostgres struct {
	db *gorm.DB
}

// Compile-time check that announcementPostgres satisfies the usecase contract.
var _ usecase.AnnouncementRepository = (*announcementPostgres)(nil)

// NewAnnouncementPostgres creates an announcementPostgres on the given gorm
// connection.
func NewAnnouncementPostgres(db *gorm.DB) *announcementPostgres {
	return &announcementPostgres{db: db}
}

// Create persists a new announcement.
func (r *announcementPostgres) Create(ctx context.Context, a *entity.Announcement) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return domain.NewError(domain.KindInfrastructure, resource, err)
	}
	return nil
}

// FindAll returns every announcement, newest first.
func (r *announcementPostgres) FindAll(ctx context.Context) ([]entity.Announcement, error) {
	var out []entity.Announcement
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, domain.NewError(domain.KindInfrastructure, resource, err)
	}
	return out, nil
}

// FindByID returns the announcement with the given id.
func (r *announcementPostgres) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var a entity.Announcement
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewError(domain.KindNotFound, resource, nil)
		}
		return nil, domain.NewError(domain.KindInfrastructure, resource, err)
	}
	return &a, nil
}

// Update saves the full announcement record.
func (r *announcementPostgres) Update(ctx context.Context, a *entity.Announcement) error {
	res := r.db.WithContext(ctx).Model(&entity.Announcement{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{"title": a.Title, "body": a.Body})
	if res.Error != nil {
		return domain.NewError(domain.KindInfrastructure, resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewError(domain.KindNotFound, resource, nil)
	}
	return nil
}

// Delete removes the announcement with the given id.
func (r *announcementPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return domain.NewError(domain.KindInfrastructure, resource, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NewError(domain.KindNotFound, resource, nil)
	}
	return nil
}
