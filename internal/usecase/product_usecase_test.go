package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

func ids(products []entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestProductUseCase_List(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewProductUseCase(repos.products, repos.reviews)
	ctx := context.Background()

	all, err := uc.List(ctx, entity.Filters{})
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}, ids(all))

	electronics, err := uc.List(ctx, entity.Filters{Category: "electronics"})
	require.NoError(t, err)
	require.Equal(t, []string{"p1", "p2", "p7"}, ids(electronics))

	everything, err := uc.List(ctx, entity.Filters{Category: "all"})
	require.NoError(t, err)
	require.Len(t, everything, 8)

	priced, err := uc.List(ctx, entity.Filters{MinPrice: ptr(799.0), MaxPrice: ptr(1299.0)})
	require.NoError(t, err)
	require.Equal(t, []string{"p3", "p6", "p8"}, ids(priced))

	inStock, err := uc.List(ctx, entity.Filters{Category: "Accessories", InStockOnly: true})
	require.NoError(t, err)
	require.Equal(t, []string{"p3"}, ids(inStock))

	query, err := uc.List(ctx, entity.Filters{Query: "WALLET"})
	require.NoError(t, err)
	require.Equal(t, []string{"p3"}, ids(query))

	asc, err := uc.List(ctx, entity.Filters{Sort: entity.SortPriceAsc})
	require.NoError(t, err)
	require.Equal(t, "p5", asc[0].ID)
	require.Equal(t, "p4", asc[len(asc)-1].ID)

	desc, err := uc.List(ctx, entity.Filters{Category: "Home", Sort: entity.SortPriceDesc})
	require.NoError(t, err)
	require.Equal(t, []string{"p4", "p6", "p8"}, ids(desc))

	_, err = uc.List(ctx, entity.Filters{Sort: "rating"})
	require.ErrorIs(t, err, entity.ErrInvalidSort)
}

func TestProductUseCase_GetAndRelated(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewProductUseCase(repos.products, repos.reviews)
	ctx := context.Background()

	view, err := uc.Get(ctx, "p5")
	require.NoError(t, err)
	require.Equal(t, entity.StockOut, view.StockStatus)

	view, err = uc.Get(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, entity.StockIn, view.StockStatus)

	_, err = uc.Get(ctx, "nope")
	require.ErrorIs(t, err, entity.ErrProductNotFound)

	related, err := uc.Related(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p7"}, ids(related))

	categories, err := uc.Categories(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Accessories", "Electronics", "Home"}, categories)
}

func TestProductUseCase_Recommendations(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewProductUseCase(repos.products, repos.reviews)
	ctx := context.Background()

	page, err := uc.Recommendations(ctx, "p1", 0, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"p2", "p3", "p4", "p5"}, ids(page.Products))
	require.True(t, page.HasMore)

	page, err = uc.Recommendations(ctx, "p1", 4, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"p6", "p7", "p8"}, ids(page.Products))
	require.False(t, page.HasMore)

	page, err = uc.Recommendations(ctx, "", 20, 4)
	require.NoError(t, err)
	require.Empty(t, page.Products)
	require.False(t, page.HasMore)
}

func TestProductUseCase_Reviews(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewProductUseCase(repos.products, repos.reviews)
	ctx := context.Background()

	res, err := uc.Reviews(ctx, "p1")
	require.NoError(t, err)
	require.Equal(t, 3, res.Summary.Count)
	require.InDelta(t, 14.0/3.0, res.Summary.AverageRating, 0.001)
	require.Len(t, res.Summary.Distribution, 5)
	require.Equal(t, 5, res.Summary.Distribution[0].Stars)
	require.Equal(t, 2, res.Summary.Distribution[0].Count)
	require.InDelta(t, 66.67, res.Summary.Distribution[0].Percentage, 0.01)
	require.Equal(t, 1, res.Summary.Distribution[4].Stars)
	require.Zero(t, res.Summary.Distribution[4].Count)

	empty, err := uc.Reviews(ctx, "p5")
	require.NoError(t, err)
	require.Empty(t, empty.Reviews)
	require.Zero(t, empty.Summary.AverageRating)
	for _, bucket := range empty.Summary.Distribution {
		require.Zero(t, bucket.Percentage)
	}

	questions, err := uc.Questions(ctx, "p7")
	require.NoError(t, err)
	require.Len(t, questions, 1)

	_, err = uc.Questions(ctx, "missing")
	require.ErrorIs(t, err, entity.ErrProductNotFound)
}
