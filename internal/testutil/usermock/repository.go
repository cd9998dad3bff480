package usermock

import (
	"context"

	"gorm.io/gorm"

	domain "perfectbank-backend/internal/domain/user"
)

// Repo is a function-backed mock satisfying domain.Repository. Unset
// lookups report gorm.ErrRecordNotFound, matching an empty store.
type Repo struct {
	CreateFn      func(ctx context.Context, u *domain.User) error
	SaveFn        func(ctx context.Context, u *domain.User) error
	GetByUserIDFn func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn  func(ctx context.Context, email string) (*domain.User, error)
	GetByUserNoFn func(ctx context.Context, no uint64) (*domain.User, error)
	ListFn        func(ctx context.Context) ([]domain.User, error)
	DeleteFn      func(ctx context.Context, userID string) error
	NextUserNoFn  func(ctx context.Context) (uint64, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByUserNo(ctx context.Context, no uint64) (*domain.User, error) {
	if m.GetByUserNoFn != nil {
		return m.GetByUserNoFn(ctx, no)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}

func (m *Repo) NextUserNo(ctx context.Context) (uint64, error) {
	if m.NextUserNoFn != nil {
		return m.NextUserNoFn(ctx)
	}
	return 1, nil
}
