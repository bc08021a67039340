package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// CartUseCase savat bilan bog'liq business logic
type CartUseCase interface {
	// Add mahsulot qo'shish. Jami son ombordagi sondan oshmaydi.
	Add(ctx context.Context, sessionID, productID string, quantity int) (*entity.Cart, error)

	// SetQuantity sonni o'rnatish, 0 qatorni o'chiradi
	SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*entity.Cart, error)

	// Remove qatorni o'chirish
	Remove(ctx context.Context, sessionID, productID string) (*entity.Cart, error)

	// Clear savatni tozalash
	Clear(ctx context.Context, sessionID string) error

	// Get joriy narxlar bilan hisoblangan savat
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)
}

type cartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase yangi CartUseCase yaratish
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Add mahsulot qo'shish
func (u *cartUseCase) Add(ctx context.Context, sessionID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, entity.ErrInvalidQuantity
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Stock <= 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrOutOfStock, product.Title)
	}

	existing, err := u.quantityOf(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}

	next := existing + quantity
	if next > product.Stock {
		next = product.Stock
	}
	if err := u.cartRepo.SetQuantity(ctx, sessionID, productID, next); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}

	return u.Get(ctx, sessionID)
}

// SetQuantity sonni o'rnatish
func (u *cartUseCase) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 0 {
		return nil, entity.ErrInvalidQuantity
	}
	if quantity == 0 {
		return u.Remove(ctx, sessionID, productID)
	}

	product, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, fmt.Errorf("%w: only %d left", entity.ErrQuantityExceedsStock, product.Stock)
	}

	if err := u.cartRepo.SetQuantity(ctx, sessionID, productID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return u.Get(ctx, sessionID)
}

// Remove qatorni o'chirish
func (u *cartUseCase) Remove(ctx context.Context, sessionID, productID string) (*entity.Cart, error) {
	if err := u.cartRepo.RemoveItem(ctx, sessionID, productID); err != nil {
		return nil, fmt.Errorf("failed to remove item: %w", err)
	}
	return u.Get(ctx, sessionID)
}

// Clear savatni tozalash
func (u *cartUseCase) Clear(ctx context.Context, sessionID string) error {
	return u.cartRepo.Clear(ctx, sessionID)
}

// Get savatni joriy narxlar bilan yig'ish. Katalogdan yo'qolgan mahsulotlar olib tashlanadi.
func (u *cartUseCase) Get(ctx context.Context, sessionID string) (*entity.Cart, error) {
	items, err := u.cartRepo.GetItems(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	cart := &entity.Cart{
		SessionID: sessionID,
		Items:     make([]entity.CartItem, 0, len(items)),
		UpdatedAt: time.Now(),
	}

	for _, item := range items {
		product, err := u.productRepo.GetByID(ctx, item.ProductID)
		if errors.Is(err, entity.ErrProductNotFound) {
			log.Printf("🧹 Dropping vanished product %s from cart %s", item.ProductID, sessionID)
			_ = u.cartRepo.RemoveItem(ctx, sessionID, item.ProductID)
			continue
		}
		if err != nil {
			return nil, err
		}
		item.Product = product
		cart.Items = append(cart.Items, item)
	}

	cart.Recalculate()
	return cart, nil
}

func (u *cartUseCase) quantityOf(ctx context.Context, sessionID, productID string) (int, error) {
	items, err := u.cartRepo.GetItems(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to load cart: %w", err)
	}
	for _, item := range items {
		if item.ProductID == productID {
			return item.Quantity, nil
		}
	}
	return 0, nil
}
