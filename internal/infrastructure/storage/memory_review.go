package storage

import (
	"context"
	"sync"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type memoryReviewRepository struct {
	mu        sync.RWMutex
	reviews   map[string][]entity.Review   // key: product ID
	questions map[string][]entity.Question // key: product ID
}

// NewMemoryReviewRepository in-memory sharhlar repository yaratish
func NewMemoryReviewRepository() repository.ReviewRepository {
	return &memoryReviewRepository{
		reviews:   make(map[string][]entity.Review),
		questions: make(map[string][]entity.Question),
	}
}

func (m *memoryReviewRepository) SaveReviews(ctx context.Context, reviews []entity.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range reviews {
		m.reviews[r.ProductID] = append(m.reviews[r.ProductID], r)
	}
	return nil
}

func (m *memoryReviewRepository) GetReviews(ctx context.Context, productID string) ([]entity.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.Review, len(m.reviews[productID]))
	copy(out, m.reviews[productID])
	return out, nil
}

func (m *memoryReviewRepository) SaveQuestions(ctx context.Context, questions []entity.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, q := range questions {
		m.questions[q.ProductID] = append(m.questions[q.ProductID], q)
	}
	return nil
}

func (m *memoryReviewRepository) GetQuestions(ctx context.Context, productID string) ([]entity.Question, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.Question, len(m.questions[productID]))
	copy(out, m.questions[productID])
	return out, nil
}
