package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

func TestCartUseCase_AddClampsToStock(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewCartUseCase(repos.carts, repos.products)
	ctx := context.Background()

	cart, err := uc.Add(ctx, "s1", "p4", 4)
	require.NoError(t, err)
	require.Equal(t, 4, cart.TotalItems)

	cart, err = uc.Add(ctx, "s1", "p4", 4)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 6, cart.Items[0].Quantity)

	_, err = uc.Add(ctx, "s1", "p5", 1)
	require.ErrorIs(t, err, entity.ErrOutOfStock)

	_, err = uc.Add(ctx, "s1", "p1", 0)
	require.ErrorIs(t, err, entity.ErrInvalidQuantity)

	_, err = uc.Add(ctx, "s1", "ghost", 1)
	require.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestCartUseCase_Totals(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewCartUseCase(repos.carts, repos.products)
	ctx := context.Background()

	_, err := uc.Add(ctx, "s1", "p1", 2)
	require.NoError(t, err)
	cart, err := uc.Add(ctx, "s1", "p3", 1)
	require.NoError(t, err)

	require.Equal(t, 3, cart.TotalItems)
	require.InDelta(t, 2*2499.0+799.0, cart.Subtotal, 0.001)

	cart, err = uc.SetQuantity(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	require.Equal(t, 2, cart.TotalItems)
	require.InDelta(t, 2499.0+799.0, cart.Subtotal, 0.001)

	// Boshqa sessiya ta'sirlanmaydi
	other, err := uc.Get(ctx, "s2")
	require.NoError(t, err)
	require.Empty(t, other.Items)
	require.Zero(t, other.Subtotal)
}

func TestCartUseCase_SetQuantity(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewCartUseCase(repos.carts, repos.products)
	ctx := context.Background()

	_, err := uc.Add(ctx, "s1", "p2", 1)
	require.NoError(t, err)

	_, err = uc.SetQuantity(ctx, "s1", "p2", 9)
	require.ErrorIs(t, err, entity.ErrQuantityExceedsStock)

	_, err = uc.SetQuantity(ctx, "s1", "p2", -1)
	require.ErrorIs(t, err, entity.ErrInvalidQuantity)

	cart, err := uc.SetQuantity(ctx, "s1", "p2", 8)
	require.NoError(t, err)
	require.Equal(t, 8, cart.TotalItems)

	cart, err = uc.SetQuantity(ctx, "s1", "p2", 0)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestCartUseCase_RemoveClearAndVanished(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewCartUseCase(repos.carts, repos.products)
	ctx := context.Background()

	_, err := uc.Add(ctx, "s1", "p1", 1)
	require.NoError(t, err)
	_, err = uc.Add(ctx, "s1", "p6", 1)
	require.NoError(t, err)

	cart, err := uc.Remove(ctx, "s1", "p1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	// Katalog almashganda eski mahsulot savatdan tushadi
	require.NoError(t, repos.products.UpdateCatalog(ctx, entity.ProductCatalog{
		Products:  []entity.Product{{ID: "x1", Title: "New", Price: 10, Stock: 3}},
		UpdatedAt: time.Now(),
		Source:    "test.xlsx",
	}))
	cart, err = uc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	_, err = uc.Add(ctx, "s1", "x1", 2)
	require.NoError(t, err)
	require.NoError(t, uc.Clear(ctx, "s1"))
	cart, err = uc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Zero(t, cart.TotalItems)
}

func TestWishlistUseCase_Toggle(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewWishlistUseCase(repos.wishlist, repos.products)
	ctx := context.Background()

	added, err := uc.Toggle(ctx, "s1", "p3")
	require.NoError(t, err)
	require.True(t, added)

	added, err = uc.Toggle(ctx, "s1", "p7")
	require.NoError(t, err)
	require.True(t, added)

	list, err := uc.List(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, list, 2)

	added, err = uc.Toggle(ctx, "s1", "p3")
	require.NoError(t, err)
	require.False(t, added)

	list, err = uc.List(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, []string{"p7"}, ids(list))

	_, err = uc.Toggle(ctx, "s1", "ghost")
	require.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestCheckoutUseCase_PlaceOrder(t *testing.T) {
	repos := newShopRepos(t)
	carts := NewCartUseCase(repos.carts, repos.products)
	uc := NewCheckoutUseCase(carts, repos.carts, repos.products, repos.orders)
	ctx := context.Background()

	_, err := uc.PlaceOrder(ctx, "s1", "221B Baker Street")
	require.ErrorIs(t, err, entity.ErrEmptyCart)

	_, err = carts.Add(ctx, "s1", "p1", 2)
	require.NoError(t, err)
	_, err = carts.Add(ctx, "s1", "p3", 1)
	require.NoError(t, err)

	_, err = uc.PlaceOrder(ctx, "s1", "  ")
	require.ErrorIs(t, err, entity.ErrMissingAddress)

	order, err := uc.PlaceOrder(ctx, "s1", "221B Baker Street")
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, entity.OrderPlaced, order.Status)
	require.Len(t, order.Lines, 2)
	require.InDelta(t, 5797.0, order.Total, 0.001)

	p1, err := repos.products.GetByID(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 13, p1.Stock)

	cart, err := carts.Get(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	orders, err := uc.ListOrders(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	got, err := uc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, got.ID)

	_, err = uc.GetOrder(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrOrderNotFound)
}

func TestCheckoutUseCase_StockChangedSinceAdd(t *testing.T) {
	repos := newShopRepos(t)
	carts := NewCartUseCase(repos.carts, repos.products)
	uc := NewCheckoutUseCase(carts, repos.carts, repos.products, repos.orders)
	ctx := context.Background()

	_, err := carts.Add(ctx, "s1", "p2", 5)
	require.NoError(t, err)
	require.NoError(t, repos.products.AdjustStock(ctx, "p2", -6))

	_, err = uc.PlaceOrder(ctx, "s1", "Somewhere 1")
	require.ErrorIs(t, err, entity.ErrQuantityExceedsStock)

	p2, err := repos.products.GetByID(ctx, "p2")
	require.NoError(t, err)
	require.Equal(t, 2, p2.Stock)
}
