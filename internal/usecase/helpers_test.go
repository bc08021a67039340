package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/storage"
)

type shopRepos struct {
	products repository.ProductRepository
	reviews  repository.ReviewRepository
	carts    repository.CartRepository
	wishlist repository.WishlistRepository
	orders   repository.OrderRepository
}

func newShopRepos(t *testing.T) shopRepos {
	t.Helper()
	r := shopRepos{
		products: storage.NewMemoryProductRepository(),
		reviews:  storage.NewMemoryReviewRepository(),
		carts:    storage.NewMemoryCartRepository(),
		wishlist: storage.NewMemoryWishlistRepository(),
		orders:   storage.NewMemoryOrderRepository(),
	}
	require.NoError(t, storage.LoadSeed(context.Background(), r.products, r.reviews))
	return r
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeSender struct {
	mu   sync.Mutex
	sent []entity.EmailMessage
	err  error

	// release bo'lsa birinchi Send u yopilguncha kutadi
	started chan struct{}
	release chan struct{}
	held    bool
}

func (s *fakeSender) Name() string { return "fake" }

func (s *fakeSender) Send(ctx context.Context, msg entity.EmailMessage) error {
	s.mu.Lock()
	hold := s.release != nil && !s.held
	s.held = true
	s.mu.Unlock()
	if hold {
		close(s.started)
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *fakeSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

type fakeNotifier struct {
	texts []string
}

func (n *fakeNotifier) Notify(ctx context.Context, text string) error {
	n.texts = append(n.texts, text)
	return nil
}

type fakeAnalyzer struct {
	mu    sync.Mutex
	data  entity.EmotionData
	err   error
	calls int
	block chan struct{}
}

func (a *fakeAnalyzer) Analyze(ctx context.Context, jpeg []byte) (entity.EmotionData, error) {
	if a.block != nil {
		<-a.block
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.data, a.err
}

func (a *fakeAnalyzer) set(data entity.EmotionData, err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.data, a.err = data, err
}

func ptr[T any](v T) *T { return &v }
