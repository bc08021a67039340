package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]map[string]entity.CartItem // session -> product -> item
}

// NewMemoryCartRepository in-memory savat repository yaratish
func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{
		carts: make(map[string]map[string]entity.CartItem),
	}
}

// GetItems savat qatorlarini olish
func (m *memoryCartRepository) GetItems(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]entity.CartItem, 0, len(m.carts[sessionID]))
	for _, item := range m.carts[sessionID] {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].AddedAt.Equal(items[j].AddedAt) {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].AddedAt.Before(items[j].AddedAt)
	})
	return items, nil
}

// SetQuantity qator sonini o'rnatish
func (m *memoryCartRepository) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cart, exists := m.carts[sessionID]
	if !exists {
		cart = make(map[string]entity.CartItem)
		m.carts[sessionID] = cart
	}

	item, exists := cart[productID]
	if !exists {
		item = entity.CartItem{ProductID: productID, AddedAt: time.Now()}
	}
	item.Quantity = quantity
	cart[productID] = item
	return nil
}

// RemoveItem qatorni o'chirish
func (m *memoryCartRepository) RemoveItem(ctx context.Context, sessionID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts[sessionID], productID)
	return nil
}

// Clear savatni tozalash
func (m *memoryCartRepository) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.carts, sessionID)
	return nil
}

type memoryWishlistRepository struct {
	mu    sync.RWMutex
	lists map[string][]string
}

// NewMemoryWishlistRepository in-memory istaklar ro'yxati
func NewMemoryWishlistRepository() repository.WishlistRepository {
	return &memoryWishlistRepository{lists: make(map[string][]string)}
}

func (m *memoryWishlistRepository) Add(ctx context.Context, sessionID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.lists[sessionID] {
		if id == productID {
			return nil
		}
	}
	m.lists[sessionID] = append(m.lists[sessionID], productID)
	return nil
}

func (m *memoryWishlistRepository) Remove(ctx context.Context, sessionID, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.lists[sessionID]
	for i, id := range list {
		if id == productID {
			m.lists[sessionID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memoryWishlistRepository) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.lists[sessionID] {
		if id == productID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryWishlistRepository) List(ctx context.Context, sessionID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, len(m.lists[sessionID]))
	copy(out, m.lists[sessionID])
	return out, nil
}

type memoryOrderRepository struct {
	mu     sync.RWMutex
	orders []entity.Order
}

// NewMemoryOrderRepository in-memory buyurtmalar
func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{}
}

func (m *memoryOrderRepository) SaveOrder(ctx context.Context, order entity.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders = append(m.orders, order)
	return nil
}

func (m *memoryOrderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, o := range m.orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
}

func (m *memoryOrderRepository) ListBySession(ctx context.Context, sessionID string) ([]entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []entity.Order
	for i := len(m.orders) - 1; i >= 0; i-- {
		if m.orders[i].SessionID == sessionID {
			out = append(out, m.orders[i])
		}
	}
	return out, nil
}

func (m *memoryOrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.Order, 0, len(m.orders))
	for i := len(m.orders) - 1; i >= 0; i-- {
		out = append(out, m.orders[i])
	}
	return out, nil
}
