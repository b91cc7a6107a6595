package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mananuf/voba-portal/internal/domain"
	"github.com/mananuf/voba-portal/internal/feature/announcements/domain/entity"
	authdomain "github.com/mananuf/voba-portal/internal/feature/auth/domain"
	authentity "github.com/mananuf/voba-portal/internal/feature/auth/domain/entity"
)

type mockAnnouncementRepository struct {
	CreateFunc   func(ctx context.Context, a *entity.Announcement) error
	FindAllFunc  func(ctx context.Context) ([]entity.Announcement, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	UpdateFunc   func(ctx context.Context, a *entity.Announcement) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error

	updateCalls int
	deleteCalls int
}

func (m *mockAnnouncementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	return m.CreateFunc(ctx, a)
}

func (m *mockAnnouncementRepository) FindAll(ctx context.Context) ([]entity.Announcement, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockAnnouncementRepository) Update(ctx context.Context, a *entity.Announcement) error {
	m.updateCalls++
	return m.UpdateFunc(ctx, a)
}

func (m *mockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	return m.DeleteFunc(ctx, id)
}

func strptr(s string) *string { return &s }

func TestCreate(t *testing.T) {
	author := uuid.New()
	repo := &mockAnnouncementRepository{
		CreateFunc: func(ctx context.Context, a *entity.Announcement) error {
			a.ID = uuid.New()
			return nil
		},
	}

	got, err := NewAnnouncementUsecase(repo).Create(context.Background(), author, "  Meeting moved  ", "New time is 7pm.")

	require.NoError(t, err)
	assert.Equal(t, author, got.PostedBy)
	assert.Equal(t, "Meeting moved", got.Title)
	assert.Equal(t, "New time is 7pm.", got.Body)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := &mockAnnouncementRepository{
		CreateFunc: func(ctx context.Context, a *entity.Announcement) error {
			return domain.NewError(domain.KindInfrastructure, "announcement", assert.AnError)
		},
	}

	_, err := NewAnnouncementUsecase(repo).Create(context.Background(), uuid.New(), "t", "b")

	assert.True(t, domain.IsInfrastructure(err))
}

func TestList(t *testing.T) {
	want := []entity.Announcement{{ID: uuid.New(), Title: "a"}, {ID: uuid.New(), Title: "b"}}
	repo := &mockAnnouncementRepository{
		FindAllFunc: func(ctx context.Context) ([]entity.Announcement, error) { return want, nil },
	}

	got, err := NewAnnouncementUsecase(repo).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return nil, domain.NewError(domain.KindNotFound, "announcement", nil)
		},
	}

	_, err := NewAnnouncementUsecase(repo).Get(context.Background(), uuid.New())

	assert.True(t, domain.IsNotFound(err))
}

func TestUpdate_ByAuthor(t *testing.T) {
	author := uuid.New()
	id := uuid.New()
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, gotID uuid.UUID) (*entity.Announcement, error) {
			assert.Equal(t, id, gotID)
			return &entity.Announcement{ID: id, PostedBy: author, Title: "old", Body: "old body"}, nil
		},
		UpdateFunc: func(ctx context.Context, a *entity.Announcement) error { return nil },
	}

	got, err := NewAnnouncementUsecase(repo).Update(context.Background(), author, authentity.RoleMember, id, UpdateInput{Title: strptr("new")})

	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "old body", got.Body, "nil fields stay unchanged")
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdate_ByAdminOnForeignPost(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, PostedBy: uuid.New()}, nil
		},
		UpdateFunc: func(ctx context.Context, a *entity.Announcement) error { return nil },
	}

	_, err := NewAnnouncementUsecase(repo).Update(context.Background(), uuid.New(), authentity.RoleAdmin, uuid.New(), UpdateInput{Body: strptr("edited")})

	assert.NoError(t, err)
}

func TestUpdate_ForeignPostDenied(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, PostedBy: uuid.New()}, nil
		},
	}

	_, err := NewAnnouncementUsecase(repo).Update(context.Background(), uuid.New(), authentity.RoleTreasurer, uuid.New(), UpdateInput{Title: strptr("x")})

	assert.ErrorIs(t, err, authdomain.ErrPermissionDenied)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestUpdate_NoFields(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			t.Fatal("FindByID should not run for an empty update")
			return nil, nil
		},
	}

	_, err := NewAnnouncementUsecase(repo).Update(context.Background(), uuid.New(), authentity.RoleAdmin, uuid.New(), UpdateInput{})

	assert.True(t, domain.IsNoUpdateFields(err))
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return nil, domain.NewError(domain.KindNotFound, "announcement", nil)
		},
	}

	_, err := NewAnnouncementUsecase(repo).Update(context.Background(), uuid.New(), authentity.RoleAdmin, uuid.New(), UpdateInput{Title: strptr("x")})

	assert.True(t, domain.IsNotFound(err))
}

func TestDelete_ByAuthor(t *testing.T) {
	author := uuid.New()
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, PostedBy: author}, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
	}

	err := NewAnnouncementUsecase(repo).Delete(context.Background(), author, authentity.RoleMember, uuid.New())

	assert.NoError(t, err)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestDelete_ForeignPostDenied(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return &entity.Announcement{ID: id, PostedBy: uuid.New()}, nil
		},
	}

	err := NewAnnouncementUsecase(repo).Delete(context.Background(), uuid.New(), authentity.RoleMember, uuid.New())

	assert.ErrorIs(t, err, authdomain.ErrPermissionDenied)
	assert.Equal(t, 0, repo.deleteCalls)
}

func TestDelete_NotFound(t *testing.T) {
	repo := &mockAnnouncementRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
			return nil, domain.NewError(domain.KindNotFound, "announcement", nil)
		},
	}

	err := NewAnnouncementUsecase(repo).Delete(context.Background(), uuid.New(), authentity.RoleSuperAdmin, uuid.New())

	assert.True(t, domain.IsNotFound(err))
}
