package user

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"perfectbank-backend/pkg/id"
)

type Role string

const (
	RoleBorrower    Role = "BORROWER"
	RoleLoanOfficer Role = "LOAN_OFFICER"
	RoleAdmin       Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBorrower, RoleLoanOfficer, RoleAdmin:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("user not found")
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrAccountFrozen = errors.New("account has been frozen, please contact support")
	ErrWrongPassword = errors.New("current password is incorrect")
)

type User struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID string `gorm:"column:user_id;size:32;uniqueIndex:ux_users_user_id" json:"user_id"`
	// Sequential member number, rendered as "PMB-00007". Assigned from a
	// monotonic counter, never reused after deletions.
	UserNo       uint64         `gorm:"column:user_no;index:idx_users_user_no" json:"-"`
	Name         string         `gorm:"column:name;size:255" json:"name"`
	Email        string         `gorm:"column:email;size:255;index:idx_users_email" json:"email"`
	Phone        string         `gorm:"column:phone;size:32" json:"phone,omitempty"`
	BVN          string         `gorm:"column:bvn;size:16" json:"bvn,omitempty"`
	NIN          string         `gorm:"column:nin;size:20" json:"nin,omitempty"`
	PictureIDURL string         `gorm:"column:picture_id_url;type:text" json:"picture_id_url,omitempty"`
	Role         Role           `gorm:"column:role;size:16;default:'BORROWER'" json:"role"`
	PasswordHash string         `gorm:"column:password_hash;size:72" json:"-"`
	IsFrozen     bool           `gorm:"column:is_frozen" json:"is_frozen"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

// Number is the human-facing member code shown on cards and used as a
// guarantor reference.
func (u *User) Number() string { return id.FormatUserNo(u.UserNo) }
