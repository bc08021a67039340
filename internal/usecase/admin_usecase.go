package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// TokenTTL admin tokeni amal qilish muddati
const TokenTTL = 24 * time.Hour

// AdminConfig admin kirish sozlamalari
type AdminConfig struct {
	PasswordHash string // bcrypt
	JWTSecret    string
}

// CategoryCount kategoriya bo'yicha mahsulotlar soni
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CatalogInfo katalog haqida ma'lumot
type CatalogInfo struct {
	Source     string          `json:"source"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Total      int             `json:"total"`
	LowStock   int             `json:"lowStock"`
	OutOfStock int             `json:"outOfStock"`
	Categories []CategoryCount `json:"categories"`
}

// AdminUseCase admin bilan bog'liq business logic
type AdminUseCase interface {
	// Login parol to'g'ri bo'lsa JWT qaytaradi
	Login(ctx context.Context, password string) (string, error)

	// Logout tokenni bekor qilish
	Logout(ctx context.Context, token string) error

	// Authorize tokenni tekshirib sessiya ID sini qaytaradi
	Authorize(ctx context.Context, token string) (string, error)

	// UploadCatalog Excel fayldan katalogni yuklash
	UploadCatalog(ctx context.Context, token string, fileData []byte, filename string) (int, error)

	// CatalogInfo katalog haqida ma'lumot
	CatalogInfo(ctx context.Context) (*CatalogInfo, error)

	// ExportOrders barcha buyurtmalar xlsx ko'rinishida
	ExportOrders(ctx context.Context, token string) ([]byte, error)

	// Actions oxirgi admin harakatlari
	Actions(ctx context.Context, token string, limit int) ([]entity.AdminAction, error)
}

type adminClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type adminUseCase struct {
	cfg         AdminConfig
	adminRepo   repository.AdminRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	excelParser repository.ExcelParser
	exporter    repository.OrderExporter
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(
	cfg AdminConfig,
	adminRepo repository.AdminRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	excelParser repository.ExcelParser,
	exporter repository.OrderExporter,
) AdminUseCase {
	return &adminUseCase{
		cfg:         cfg,
		adminRepo:   adminRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		excelParser: excelParser,
		exporter:    exporter,
	}
}

// Login admin login qilish
func (u *adminUseCase) Login(ctx context.Context, password string) (string, error) {
	if u.cfg.PasswordHash == "" || u.cfg.JWTSecret == "" {
		return "", fmt.Errorf("%w: admin login is disabled", entity.ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.cfg.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: wrong password", entity.ErrUnauthorized)
	}

	now := time.Now()
	sessionID := uuid.New().String()
	claims := adminClaims{
		Role: "admin",
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(TokenTTL).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	session := entity.AdminSession{
		ID:        sessionID,
		IsAdmin:   true,
		LoginTime: now,
	}
	if err := u.adminRepo.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	u.logAction(ctx, sessionID, "login", "Admin successfully logged in")
	log.Printf("🔐 Admin logged in, session %s", sessionID)
	return token, nil
}

// Logout admin logout qilish
func (u *adminUseCase) Logout(ctx context.Context, token string) error {
	sessionID, err := u.Authorize(ctx, token)
	if err != nil {
		return err
	}
	u.logAction(ctx, sessionID, "logout", "Admin logged out")
	return u.adminRepo.DeleteSession(ctx, sessionID)
}

// Authorize token imzosi, muddati va sessiyasini tekshirish
func (u *adminUseCase) Authorize(ctx context.Context, token string) (string, error) {
	if token == "" || u.cfg.JWTSecret == "" {
		return "", entity.ErrUnauthorized
	}

	parsed, err := jwt.ParseWithClaims(token, &adminClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(u.cfg.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrUnauthorized, err)
	}

	claims, ok := parsed.Claims.(*adminClaims)
	if !ok || !parsed.Valid || claims.Role != "admin" {
		return "", entity.ErrUnauthorized
	}

	isAdmin, err := u.adminRepo.IsAdmin(ctx, claims.Id)
	if err != nil {
		return "", err
	}
	if !isAdmin {
		return "", fmt.Errorf("%w: session expired", entity.ErrUnauthorized)
	}
	return claims.Id, nil
}

// UploadCatalog Excel fayldan katalogni yuklash
func (u *adminUseCase) UploadCatalog(ctx context.Context, token string, fileData []byte, filename string) (int, error) {
	sessionID, err := u.Authorize(ctx, token)
	if err != nil {
		return 0, err
	}

	products, err := u.excelParser.ParseProductsFromBytes(ctx, fileData, filename)
	if err != nil {
		return 0, fmt.Errorf("failed to parse excel: %w", err)
	}
	if len(products) == 0 {
		return 0, fmt.Errorf("no products found in excel file")
	}

	catalog := entity.ProductCatalog{
		Products:  products,
		UpdatedAt: time.Now(),
		Source:    filename,
	}
	if err := u.productRepo.UpdateCatalog(ctx, catalog); err != nil {
		return 0, fmt.Errorf("failed to update catalog: %w", err)
	}

	u.logAction(ctx, sessionID, "upload_catalog", fmt.Sprintf("Uploaded %d products from %s", len(products), filename))
	return len(products), nil
}

// CatalogInfo katalog haqida ma'lumot
func (u *adminUseCase) CatalogInfo(ctx context.Context) (*CatalogInfo, error) {
	catalog, err := u.productRepo.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	info := &CatalogInfo{
		Source:     catalog.Source,
		UpdatedAt:  catalog.UpdatedAt,
		Total:      len(catalog.Products),
		Categories: []CategoryCount{},
	}

	counts := make(map[string]int)
	for _, product := range catalog.Products {
		counts[product.Category]++
		switch entity.StockStatusOf(product) {
		case entity.StockOut:
			info.OutOfStock++
		case entity.StockLow:
			info.LowStock++
		}
	}
	for category, n := range counts {
		info.Categories = append(info.Categories, CategoryCount{Category: category, Count: n})
	}
	sort.Slice(info.Categories, func(i, j int) bool { return info.Categories[i].Category < info.Categories[j].Category })

	return info, nil
}

// ExportOrders buyurtmalarni xlsx ga chiqarish
func (u *adminUseCase) ExportOrders(ctx context.Context, token string) ([]byte, error) {
	sessionID, err := u.Authorize(ctx, token)
	if err != nil {
		return nil, err
	}

	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	data, err := u.exporter.ExportOrders(ctx, orders)
	if err != nil {
		return nil, fmt.Errorf("failed to export orders: %w", err)
	}

	u.logAction(ctx, sessionID, "export_orders", fmt.Sprintf("Exported %d orders", len(orders)))
	return data, nil
}

// Actions oxirgi admin harakatlari
func (u *adminUseCase) Actions(ctx context.Context, token string, limit int) ([]entity.AdminAction, error) {
	if _, err := u.Authorize(ctx, token); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return u.adminRepo.Actions(ctx, limit)
}

func (u *adminUseCase) logAction(ctx context.Context, sessionID, action, details string) {
	err := u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		log.Printf("⚠️ Failed to log admin action %s: %v", action, err)
	}
}
