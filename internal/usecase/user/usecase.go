package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	domainUser "perfectbank-backend/internal/domain/user"
	"perfectbank-backend/pkg/id"
)

// Usecase covers the admin console's user management plus the member-code
// lookup the loan form uses to check guarantors.
type Usecase struct{ users domainUser.Repository }

func NewUsecase(users domainUser.Repository) *Usecase { return &Usecase{users: users} }

type CreateUserInput struct {
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Phone string          `json:"phone"`
	Role  domainUser.Role `json:"role"`
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

func toDTO(u *domainUser.User) *UserDTO {
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

// Create adds a staff account. The role defaults to LOAN_OFFICER, the only
// role the console actually creates.
func (uc *Usecase) Create(ctx context.Context, in CreateUserInput) (*UserDTO, error) {
	role := in.Role
	if role == "" {
		role = domainUser.RoleLoanOfficer
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q", in.Role)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	_, err := uc.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, domainUser.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	no, err := uc.users.NextUserNo(ctx)
	if err != nil {
		return nil, err
	}

	u := &domainUser.User{
		UserID:   id.NewID32(),
		UserNo:   no,
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Phone:    in.Phone,
		Role:     role,
		IsFrozen: false,
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

// Delete removes the account. Loans and SMS logs referencing it are left in
// place, dangling; an absent id is a silent no-op.
func (uc *Usecase) Delete(ctx context.Context, userID string) error {
	return uc.users.Delete(ctx, userID)
}

func (uc *Usecase) ToggleFreeze(ctx context.Context, userID string) (*UserDTO, error) {
	u, err := uc.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}
	u.IsFrozen = !u.IsFrozen
	if err := uc.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func (uc *Usecase) List(ctx context.Context) ([]UserDTO, error) {
	us, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(us))
	for i := range us {
		out = append(out, *toDTO(&us[i]))
	}
	return out, nil
}

// GetByNumber resolves a member code, falling back to the public user id
// for callers still holding the old identifier. nil means no match.
func (uc *Usecase) GetByNumber(ctx context.Context, identifier string) (*UserDTO, error) {
	if no, ok := id.ParseUserNo(identifier); ok {
		u, err := uc.users.GetByUserNo(ctx, no)
		if err == nil {
			return toDTO(u), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	u, err := uc.users.GetByUserID(ctx, identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDTO(u), nil
}
