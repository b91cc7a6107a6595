// Package usecase implements the announcement operations and their
// authorization rules.
package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mananuf/voba-portal/internal/domain"
	"github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	authdomain "github.com/mananuf/voba-portal/internal/feature/auth/domain"
	authentity "github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

// resource tags every announcement failure for logs and error messages.
const resource = "announcement"

// AnnouncementRepository abstracts announcement persistence.
// Following Go convention: interfaces are defined by the consumer, not the
// implementer.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *entity.Announcement) error
	FindAll(ctx context.Context) ([]entity.Announcement, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	Update(ctx context.Context, a *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateInput carries the optional fields of an announcement update. A nil
// field is left unchanged; an update with every field nil is rejected.
type UpdateInput struct {
	Title *string
	Body  *string
}

func (in UpdateInput) empty() bool {
	return in.Title == nil && in.Body == nil
}

type announcementUsecase struct {
	repo AnnouncementRepository
}

// NewAnnouncementUsecase builds the announcement usecase.
func NewAnnouncementUsecase(repo AnnouncementRepository) *announcementUsecase {
	return &announcementUsecase{repo: repo}
}

// Create posts a new announcement authored by the caller.
func (u *announcementUsecase) Create(ctx context.Context, callerID uuid.UUID, title, body string) (*entity.Announcement, error) {
	a := &entity.Announcement{
		PostedBy: callerID,
		Title:    strings.TrimSpace(title),
		Body:     body,
	}
	if err := u.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns every announcement, newest first.
func (u *announcementUsecase) List(ctx context.Context) ([]entity.Announcement, error) {
	return u.repo.FindAll(ctx)
}

// Get returns a single announcement by id.
func (u *announcementUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	return u.repo.FindByID(ctx, id)
}

// Update applies the non-nil fields of in to the announcement. Only the
// author or an admin may update; an update carrying no fields is rejected
// before any lookup.
func (u *announcementUsecase) Update(ctx context.Context, callerID uuid.UUID, callerRole authentity.Role, id uuid.UUID, in UpdateInput) (*entity.Announcement, error) {
	if in.empty() {
		return nil, domain.NewError(domain.KindNoUpdateFields, resource, nil)
	}

	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authdomain.CanMutate(callerID, callerRole, a.PostedBy) {
		return nil, authdomain.ErrPermissionDenied
	}

	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Body != nil {
		a.Body = *in.Body
	}
	if err := u.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes the announcement. Only the author or an admin may delete.
func (u *announcementUsecase) Delete(ctx context.Context, callerID uuid.UUID, callerRole authentity.Role, id uuid.UUID) error {
	a, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !authdomain.CanMutate(callerID, callerRole, a.PostedBy) {
		return authdomain.ErrPermissionDenied
	}
	return u.repo.Delete(ctx, id)
}
