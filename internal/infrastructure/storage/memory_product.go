package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type memoryProductRepository struct {
	mu       sync.RWMutex
	products map[string]entity.Product // key: product ID
	order    []string                  // katalog tartibi
	catalog  *entity.ProductCatalog
}

// NewMemoryProductRepository in-memory product repository yaratish
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{
		products: make(map[string]entity.Product),
		catalog:  nil,
	}
}

// SaveProduct mahsulotni saqlash
func (m *memoryProductRepository) SaveProduct(ctx context.Context, product entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.put(product)
	return nil
}

// SaveMany ko'p mahsulotlarni saqlash
func (m *memoryProductRepository) SaveMany(ctx context.Context, products []entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, product := range products {
		m.put(product)
	}
	return nil
}

func (m *memoryProductRepository) put(product entity.Product) {
	if _, exists := m.products[product.ID]; !exists {
		m.order = append(m.order, product.ID)
	}
	m.products[product.ID] = product
}

// GetByID ID bo'yicha mahsulotni olish
func (m *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, exists := m.products[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	return &product, nil
}

// Search nom, tavsif yoki kategoriyada qidirish (katta-kichik harf farqsiz)
func (m *memoryProductRepository) Search(ctx context.Context, query string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return m.all(), nil
	}

	var results []entity.Product
	for _, id := range m.order {
		product := m.products[id]
		if strings.Contains(strings.ToLower(product.Title), query) ||
			strings.Contains(strings.ToLower(product.Category), query) ||
			strings.Contains(strings.ToLower(product.Description), query) {
			results = append(results, product)
		}
	}

	return results, nil
}

// GetByCategory kategoriya bo'yicha mahsulotlarni olish
func (m *memoryProductRepository) GetByCategory(ctx context.Context, category string) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	category = strings.ToLower(strings.TrimSpace(category))
	var results []entity.Product

	for _, id := range m.order {
		product := m.products[id]
		if strings.ToLower(product.Category) == category {
			results = append(results, product)
		}
	}

	return results, nil
}

// GetAll barcha mahsulotlarni olish
func (m *memoryProductRepository) GetAll(ctx context.Context) ([]entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.all(), nil
}

func (m *memoryProductRepository) all() []entity.Product {
	products := make([]entity.Product, 0, len(m.order))
	for _, id := range m.order {
		products = append(products, m.products[id])
	}
	return products
}

// AdjustStock ombordagi sonni o'zgartirish. Manfiy natija ErrOutOfStock beradi.
func (m *memoryProductRepository) AdjustStock(ctx context.Context, id string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	product, exists := m.products[id]
	if !exists {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, id)
	}
	if product.Stock+delta < 0 {
		return fmt.Errorf("%w: %s", entity.ErrOutOfStock, id)
	}
	product.Stock += delta
	product.UpdatedAt = time.Now()
	m.products[id] = product
	return nil
}

// UpdateCatalog butun katalogni yangilash
func (m *memoryProductRepository) UpdateCatalog(ctx context.Context, catalog entity.ProductCatalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Eski mahsulotlarni o'chirish
	m.products = make(map[string]entity.Product)
	m.order = nil

	// Yangi mahsulotlarni qo'shish
	for _, product := range catalog.Products {
		m.put(product)
	}

	m.catalog = &catalog
	return nil
}

// GetCatalog katalogni olish
func (m *memoryProductRepository) GetCatalog(ctx context.Context) (*entity.ProductCatalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("catalog not found")
	}

	catalog := *m.catalog
	catalog.Products = m.all()
	return &catalog, nil
}

// Clear barcha mahsulotlarni o'chirish
func (m *memoryProductRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.products = make(map[string]entity.Product)
	m.order = nil
	m.catalog = nil
	return nil
}
