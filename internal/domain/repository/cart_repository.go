package repository

import (
	"context"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// CartRepository xaridor savatini saqlash uchun interface.
// Qatorlar (session, product) juftligi bo'yicha yagona.
type CartRepository interface {
	// GetItems sessiya savatidagi qatorlarni qo'shilgan vaqti bo'yicha olish
	GetItems(ctx context.Context, sessionID string) ([]entity.CartItem, error)

	// SetQuantity qator sonini o'rnatish (bo'lmasa yaratiladi)
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error

	// RemoveItem qatorni o'chirish
	RemoveItem(ctx context.Context, sessionID, productID string) error

	// Clear savatni tozalash
	Clear(ctx context.Context, sessionID string) error
}

// WishlistRepository istaklar ro'yxati
type WishlistRepository interface {
	Add(ctx context.Context, sessionID, productID string) error
	Remove(ctx context.Context, sessionID, productID string) error
	Contains(ctx context.Context, sessionID, productID string) (bool, error)
	List(ctx context.Context, sessionID string) ([]string, error)
}

// OrderRepository buyurtmalar
type OrderRepository interface {
	SaveOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	ListBySession(ctx context.Context, sessionID string) ([]entity.Order, error)
	ListAll(ctx context.Context) ([]entity.Order, error)
}
