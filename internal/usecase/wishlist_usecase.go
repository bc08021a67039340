package usecase

import (
	"context"
	"errors"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// WishlistUseCase istaklar ro'yxati
type WishlistUseCase interface {
	// Toggle mahsulotni qo'shish yoki olib tashlash. true - qo'shildi.
	Toggle(ctx context.Context, sessionID, productID string) (bool, error)

	// List ro'yxatdagi mahsulotlar
	List(ctx context.Context, sessionID string) ([]entity.Product, error)
}

type wishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistUseCase yangi WishlistUseCase yaratish
func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) WishlistUseCase {
	return &wishlistUseCase{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

func (u *wishlistUseCase) Toggle(ctx context.Context, sessionID, productID string) (bool, error) {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		return false, err
	}

	present, err := u.wishlistRepo.Contains(ctx, sessionID, productID)
	if err != nil {
		return false, err
	}
	if present {
		return false, u.wishlistRepo.Remove(ctx, sessionID, productID)
	}
	return true, u.wishlistRepo.Add(ctx, sessionID, productID)
}

func (u *wishlistUseCase) List(ctx context.Context, sessionID string) ([]entity.Product, error) {
	ids, err := u.wishlistRepo.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		product, err := u.productRepo.GetByID(ctx, id)
		if errors.Is(err, entity.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		products = append(products, *product)
	}
	return products, nil
}
