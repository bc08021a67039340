package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/parser"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/storage"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

func newTestContainer(t *testing.T) (*Container, Repositories) {
	t.Helper()
	repos := Repositories{
		Products: storage.NewMemoryProductRepository(),
		Reviews:  storage.NewMemoryReviewRepository(),
		Carts:    storage.NewMemoryCartRepository(),
		Wishlist: storage.NewMemoryWishlistRepository(),
		Orders:   storage.NewMemoryOrderRepository(),
		Alerts:   storage.NewMemoryAlertRepository(),
		Admin:    storage.NewMemoryAdminRepository(),
	}
	require.NoError(t, storage.LoadSeed(context.Background(), repos.Products, repos.Reviews))

	c := New(repos, Services{
		Parser:   parser.NewExcelParser(),
		Exporter: parser.NewOrderExporter(),
	}, Settings{
		Alert: usecase.AlertConfig{GuardianEmail: "guardian@example.com"},
	})
	return c, repos
}

func TestNew_SharesRepositoriesBetweenUseCases(t *testing.T) {
	ctx := context.Background()
	c, repos := newTestContainer(t)

	_, err := c.Carts.Add(ctx, "s1", "p2", 3)
	require.NoError(t, err)

	order, err := c.Checkout.PlaceOrder(ctx, "s1", "12 Market Street")
	require.NoError(t, err)
	require.Equal(t, entity.OrderPlaced, order.Status)

	p, err := repos.Products.GetByID(ctx, "p2")
	require.NoError(t, err)
	require.Equal(t, 5, p.Stock)

	cart, err := c.Carts.Get(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestNew_AlertsWithoutEmailProvider(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := c.Alerts.SendEmergency(context.Background(), "s1", entity.EmotionData{Emotion: entity.EmotionFear, Confidence: 95})
	require.ErrorIs(t, err, entity.ErrNoEmailProvider)
}

func TestRESTDeps(t *testing.T) {
	c, _ := newTestContainer(t)
	deps := c.RESTDeps()

	require.Equal(t, c.Products, deps.Products)
	require.Equal(t, c.Monitor, deps.Monitor)
	require.Equal(t, c.Admin, deps.Admin)
}
