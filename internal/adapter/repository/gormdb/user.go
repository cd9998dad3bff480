package gormdb

import (
	"context"
	"strings"

	"gorm.io/gorm"

	userDomain "perfectbank-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserNo(ctx context.Context, no uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_no = ?", no).First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("user_no ASC").Find(&out)
	return out, res.Error
}

// Delete soft-deletes. Deleting zero rows is not an error.
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&userDomain.User{}).Error
}

// NextUserNo counts soft-deleted rows too (Unscoped), so member numbers
// freed by deletions are never reissued.
func (r *UserRepository) NextUserNo(ctx context.Context) (uint64, error) {
	var max int64
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Unscoped().
		Select("COALESCE(MAX(user_no), 0)").
		Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	return uint64(max) + 1, nil
}
