package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"perfectbank-backend/internal/domain/user"
	"perfectbank-backend/pkg/id"
)

type Usecase struct{ users user.Repository }

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

type LoginInput struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	BVN      string `json:"bvn"`
	NIN      string `json:"nin"`
	Password string `json:"password"`
}

type UserDTO struct {
	UserID     string    `json:"user_id"`
	UserNumber string    `json:"user_id_number"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Role       string    `json:"role"`
	IsFrozen   bool      `json:"is_frozen"`
	CreatedAt  time.Time `json:"created_at"`
}

func toDTO(u *user.User) *UserDTO {
	return &UserDTO{
		UserID:     u.UserID,
		UserNumber: u.Number(),
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       string(u.Role),
		IsFrozen:   u.IsFrozen,
		CreatedAt:  u.CreatedAt,
	}
}

// Login resolves the identifier as an email or a member code, both
// case-insensitively. The password is not verified: sessions are held
// client-side and no credential exchange exists in this deployment.
func (uc *Usecase) Login(ctx context.Context, in LoginInput) (*UserDTO, error) {
	ident := strings.TrimSpace(strings.ToLower(in.Identifier))
	if ident == "" {
		return nil, user.ErrNotFound
	}

	u, err := uc.users.GetByEmail(ctx, ident)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		no, ok := id.ParseUserNo(ident)
		if !ok {
			return nil, user.ErrNotFound
		}
		u, err = uc.users.GetByUserNo(ctx, no)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, user.ErrNotFound
			}
			return nil, err
		}
	}

	if u.IsFrozen {
		return nil, user.ErrAccountFrozen
	}
	return toDTO(u), nil
}

// Register creates a borrower account. The role is always BORROWER no
// matter what the caller asks for; officers and admins come from the admin
// console.
func (uc *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))

	_, err := uc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	no, err := uc.users.NextUserNo(ctx)
	if err != nil {
		return nil, err
	}

	var hash string
	if in.Password != "" {
		b, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(b)
	}

	u := &user.User{
		UserID:       id.NewID32(),
		UserNo:       no,
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		Phone:        in.Phone,
		BVN:          in.BVN,
		NIN:          in.NIN,
		Role:         user.RoleBorrower,
		PasswordHash: hash,
		IsFrozen:     false,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

// UpdatePassword verifies the current password against the stored hash when
// one exists. Accounts seeded without a hash accept any current password on
// their first change.
func (uc *Usecase) UpdatePassword(ctx context.Context, userID, current, newPassword string) error {
	u, err := uc.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}

	if u.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(current)) != nil {
			return user.ErrWrongPassword
		}
	}

	b, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(b)
	return uc.users.Save(ctx, u)
}
