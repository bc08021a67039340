package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/storage"
)

type fakeParser struct {
	products []entity.Product
}

func (p *fakeParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	return p.products, nil
}

func (p *fakeParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	return p.products, nil
}

type fakeExporter struct {
	got []entity.Order
}

func (e *fakeExporter) ExportOrders(ctx context.Context, orders []entity.Order) ([]byte, error) {
	e.got = orders
	return []byte("xlsx"), nil
}

const testSecret = "test-secret"

func newTestAdmin(t *testing.T, repos shopRepos, parser *fakeParser, exporter *fakeExporter) AdminUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewAdminUseCase(
		AdminConfig{PasswordHash: string(hash), JWTSecret: testSecret},
		storage.NewMemoryAdminRepository(),
		repos.products,
		repos.orders,
		parser,
		exporter,
	)
}

func TestAdminUseCase_LoginAndAuthorize(t *testing.T) {
	repos := newShopRepos(t)
	uc := newTestAdmin(t, repos, &fakeParser{}, &fakeExporter{})
	ctx := context.Background()

	_, err := uc.Login(ctx, "wrong")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	token, err := uc.Login(ctx, "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := uc.Authorize(ctx, token)
	require.NoError(t, err)
	require.NotEmpty(t, sessionID)

	_, err = uc.Authorize(ctx, "garbage")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Role:           "admin",
		StandardClaims: jwt.StandardClaims{Id: sessionID, ExpiresAt: time.Now().Add(time.Hour).Unix()},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = uc.Authorize(ctx, forged)
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	require.NoError(t, uc.Logout(ctx, token))
	_, err = uc.Authorize(ctx, token)
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestAdminUseCase_LoginDisabled(t *testing.T) {
	repos := newShopRepos(t)
	uc := NewAdminUseCase(AdminConfig{}, storage.NewMemoryAdminRepository(), repos.products, repos.orders, &fakeParser{}, &fakeExporter{})
	_, err := uc.Login(context.Background(), "")
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestAdminUseCase_CatalogAndExport(t *testing.T) {
	repos := newShopRepos(t)
	parser := &fakeParser{products: []entity.Product{
		{ID: "x1", Title: "Desk Mat", Price: 599, Category: "Home", Stock: 3},
		{ID: "x2", Title: "USB Hub", Price: 999, Category: "Electronics", Stock: 0},
	}}
	exporter := &fakeExporter{}
	uc := newTestAdmin(t, repos, parser, exporter)
	ctx := context.Background()

	info, err := uc.CatalogInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, storage.SeedSource, info.Source)
	require.Equal(t, 8, info.Total)
	require.Equal(t, 1, info.OutOfStock)

	_, err = uc.UploadCatalog(ctx, "", []byte("x"), "new.xlsx")
	require.ErrorIs(t, err, entity.ErrUnauthorized)

	token, err := uc.Login(ctx, "s3cret")
	require.NoError(t, err)

	n, err := uc.UploadCatalog(ctx, token, []byte("x"), "new.xlsx")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	info, err = uc.CatalogInfo(ctx)
	require.NoError(t, err)
	require.Equal(t, "new.xlsx", info.Source)
	require.Equal(t, 1, info.LowStock)
	require.Equal(t, []CategoryCount{{Category: "Electronics", Count: 1}, {Category: "Home", Count: 1}}, info.Categories)

	require.NoError(t, repos.orders.SaveOrder(ctx, entity.Order{ID: "o1", SessionID: "s1", CreatedAt: time.Now()}))
	data, err := uc.ExportOrders(ctx, token)
	require.NoError(t, err)
	require.Equal(t, []byte("xlsx"), data)
	require.Len(t, exporter.got, 1)

	actions, err := uc.Actions(ctx, token, 10)
	require.NoError(t, err)
	require.Len(t, actions, 3)
	require.Equal(t, "export_orders", actions[0].Action)
}
