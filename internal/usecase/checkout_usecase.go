package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// CheckoutUseCase buyurtma rasmiylashtirish
type CheckoutUseCase interface {
	// PlaceOrder savatdan buyurtma yaratish, omborni kamaytirish va savatni tozalash
	PlaceOrder(ctx context.Context, sessionID, address string) (*entity.Order, error)

	// ListOrders sessiya buyurtmalari (yangilari oldin)
	ListOrders(ctx context.Context, sessionID string) ([]entity.Order, error)

	// GetOrder ID bo'yicha buyurtma
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
}

type checkoutUseCase struct {
	carts       CartUseCase
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository

	// ombor tekshiruvi va kamaytirish orasida boshqa checkout bo'lmasligi uchun
	mu sync.Mutex
}

// NewCheckoutUseCase yangi CheckoutUseCase yaratish
func NewCheckoutUseCase(
	carts CartUseCase,
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
) CheckoutUseCase {
	return &checkoutUseCase{
		carts:       carts,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// PlaceOrder buyurtma yaratish
func (u *checkoutUseCase) PlaceOrder(ctx context.Context, sessionID, address string) (*entity.Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, entity.ErrMissingAddress
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	cart, err := u.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, entity.ErrEmptyCart
	}

	for _, item := range cart.Items {
		if item.Quantity > item.Product.Stock {
			return nil, fmt.Errorf("%w: %s has %d left", entity.ErrQuantityExceedsStock, item.Product.Title, item.Product.Stock)
		}
	}

	var adjusted []entity.CartItem
	for _, item := range cart.Items {
		if err := u.productRepo.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			u.rollback(ctx, adjusted)
			return nil, fmt.Errorf("failed to reserve stock: %w", err)
		}
		adjusted = append(adjusted, item)
	}

	order := entity.Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Address:   address,
		Lines:     make([]entity.OrderLine, 0, len(cart.Items)),
		Total:     cart.Subtotal,
		Status:    entity.OrderPlaced,
		CreatedAt: time.Now(),
	}
	for _, item := range cart.Items {
		order.Lines = append(order.Lines, entity.OrderLine{
			ProductID: item.ProductID,
			Title:     item.Product.Title,
			UnitPrice: item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	if err := u.orderRepo.SaveOrder(ctx, order); err != nil {
		u.rollback(ctx, adjusted)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	if err := u.cartRepo.Clear(ctx, sessionID); err != nil {
		log.Printf("⚠️ Order %s saved but cart %s not cleared: %v", order.ID, sessionID, err)
	}

	log.Printf("🧾 Order %s placed: %d lines, total %.2f", order.ID, len(order.Lines), order.Total)
	return &order, nil
}

func (u *checkoutUseCase) rollback(ctx context.Context, items []entity.CartItem) {
	for _, item := range items {
		if err := u.productRepo.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("❌ Stock rollback failed for %s: %v", item.ProductID, err)
		}
	}
}

// ListOrders sessiya buyurtmalari
func (u *checkoutUseCase) ListOrders(ctx context.Context, sessionID string) ([]entity.Order, error) {
	orders, err := u.orderRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}

// GetOrder ID bo'yicha buyurtma
func (u *checkoutUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return u.orderRepo.GetOrder(ctx, id)
}
