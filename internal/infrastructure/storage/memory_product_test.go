package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

func seededProducts(t *testing.T) *memoryProductRepository {
	t.Helper()
	repo := NewMemoryProductRepository().(*memoryProductRepository)
	require.NoError(t, LoadSeed(context.Background(), repo, NewMemoryReviewRepository()))
	return repo
}

func TestMemoryProductRepository_GetAllKeepsCatalogOrder(t *testing.T) {
	repo := seededProducts(t)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 8)
	require.Equal(t, "p1", all[0].ID)
	require.Equal(t, "p8", all[7].ID)
}

func TestMemoryProductRepository_Search(t *testing.T) {
	repo := seededProducts(t)
	ctx := context.Background()

	res, err := repo.Search(ctx, "Leather")
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, "p3", res[0].ID)

	// kategoriya bo'yicha
	res, err = repo.Search(ctx, "home")
	require.NoError(t, err)
	require.Len(t, res, 3)

	// Specs qidirilmaydi
	require.NoError(t, repo.SaveProduct(ctx, entity.Product{
		ID: "x1", Title: "Desk Lamp", Category: "Home", Description: "Warm light",
		Specs: map[string]string{"Material": "titanium"},
	}))
	res, err = repo.Search(ctx, "titanium")
	require.NoError(t, err)
	require.Empty(t, res)

	res, err = repo.Search(ctx, "submarine")
	require.NoError(t, err)
	require.Empty(t, res)
}

func TestMemoryProductRepository_AdjustStock(t *testing.T) {
	repo := seededProducts(t)
	ctx := context.Background()

	require.NoError(t, repo.AdjustStock(ctx, "p2", -3))
	p, err := repo.GetByID(ctx, "p2")
	require.NoError(t, err)
	require.Equal(t, 5, p.Stock)

	err = repo.AdjustStock(ctx, "p2", -6)
	require.True(t, errors.Is(err, entity.ErrOutOfStock))

	err = repo.AdjustStock(ctx, "nope", 1)
	require.True(t, errors.Is(err, entity.ErrProductNotFound))
}

func TestMemoryProductRepository_UpdateCatalogReplaces(t *testing.T) {
	repo := seededProducts(t)
	ctx := context.Background()

	err := repo.UpdateCatalog(ctx, entity.ProductCatalog{
		Products: []entity.Product{{ID: "x1", Title: "Desk", Price: 10, Stock: 1}},
		Source:   "catalog.xlsx",
	})
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	catalog, err := repo.GetCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, "catalog.xlsx", catalog.Source)

	_, err = repo.GetByID(ctx, "p1")
	require.Error(t, err)
}
