package repository

import (
	"context"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// AdminRepository admin bilan ishlash uchun interface
type AdminRepository interface {
	// CreateSession admin sessiyasini yaratish
	CreateSession(ctx context.Context, session entity.AdminSession) error

	// GetSession sessiyani olish
	GetSession(ctx context.Context, id string) (*entity.AdminSession, error)

	// DeleteSession sessiyani o'chirish (logout)
	DeleteSession(ctx context.Context, id string) error

	// IsAdmin sessiya hali amalda ekanligini tekshirish
	IsAdmin(ctx context.Context, id string) (bool, error)

	// LogAction admin harakatini loglash
	LogAction(ctx context.Context, action entity.AdminAction) error

	// Actions oxirgi harakatlar
	Actions(ctx context.Context, limit int) ([]entity.AdminAction, error)
}
