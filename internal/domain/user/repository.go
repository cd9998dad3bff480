package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserNo(ctx context.Context, no uint64) (*User, error)
	List(ctx context.Context) ([]User, error)
	// Delete soft-deletes; an absent id is a no-op, not an error.
	Delete(ctx context.Context, userID string) error
	// NextUserNo returns the next sequential member number. Deleted rows
	// still count, so freed numbers are never handed out again.
	NextUserNo(ctx context.Context) (uint64, error)
}
