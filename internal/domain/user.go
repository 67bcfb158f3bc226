package domain

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicate 唯一约束冲突
var ErrDuplicate = errors.New("domain: duplicate record")

type User struct {
	ID           string         `gorm:"primaryKey;size:36" json:"id"`
	Email        string         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name         string         `gorm:"size:64;not null" json:"name"`
	PasswordHash string         `gorm:"size:100;not null" json:"-"`
	Role         string         `gorm:"size:16;not null;default:user" json:"role"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// Profile 对外展示的用户信息（缓存也存这个）
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role}
}

type ListFilter struct {
	Offset      int
	Limit       int
	Keyword     string // email/name 模糊匹配
	WithDeleted bool
}

//go:generate mockgen -source=user.go -destination=mocks/user.mock.go -package=mocks

// UserRepository 查不到时返回 (nil, nil)
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, f ListFilter) ([]User, int64, error)
	// SoftDelete 返回受影响行数
	SoftDelete(ctx context.Context, id string) (int64, error)
}

// ProfileCache 用户资料读穿缓存；load 在未命中时回源
type ProfileCache interface {
	GetOrLoadProfile(ctx context.Context, id string, load func(ctx context.Context) (*Profile, error)) (*Profile, error)
	DeleteProfile(ctx context.Context, id string) error
}
