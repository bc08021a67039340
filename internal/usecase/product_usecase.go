package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// DefaultRecommendationLimit bitta sahifadagi tavsiyalar soni
const DefaultRecommendationLimit = 4

// ProductView mahsulot va uning ombor holati
type ProductView struct {
	entity.Product
	StockStatus entity.StockStatus `json:"stockStatus"`
}

// RecommendationPage tavsiyalar sahifasi
type RecommendationPage struct {
	Products []entity.Product `json:"products"`
	Offset   int              `json:"offset"`
	HasMore  bool             `json:"hasMore"`
}

// ProductReviews sharhlar va statistika
type ProductReviews struct {
	Reviews []entity.Review      `json:"reviews"`
	Summary entity.ReviewSummary `json:"summary"`
}

// ProductUseCase katalog bilan bog'liq business logic
type ProductUseCase interface {
	// List filtrlangan va tartiblangan mahsulotlar
	List(ctx context.Context, filters entity.Filters) ([]entity.Product, error)

	// Get bitta mahsulot
	Get(ctx context.Context, id string) (*ProductView, error)

	// Categories takrorlanmas kategoriyalar
	Categories(ctx context.Context) ([]string, error)

	// Related shu kategoriyadagi boshqa mahsulotlar
	Related(ctx context.Context, id string) ([]entity.Product, error)

	// Recommendations excludeID dan boshqa mahsulotlar, sahifalab
	Recommendations(ctx context.Context, excludeID string, offset, limit int) (*RecommendationPage, error)

	// Reviews sharhlar va ularning statistikasi
	Reviews(ctx context.Context, id string) (*ProductReviews, error)

	// Questions savol-javoblar
	Questions(ctx context.Context, id string) ([]entity.Question, error)
}

type productUseCase struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

// NewProductUseCase yangi ProductUseCase yaratish
func NewProductUseCase(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) ProductUseCase {
	return &productUseCase{
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
	}
}

// List filtrlangan mahsulotlar
func (u *productUseCase) List(ctx context.Context, filters entity.Filters) ([]entity.Product, error) {
	switch filters.Sort {
	case "", entity.SortDefault, entity.SortPriceAsc, entity.SortPriceDesc:
	default:
		return nil, fmt.Errorf("%w: %s", entity.ErrInvalidSort, filters.Sort)
	}

	products, err := u.productRepo.Search(ctx, filters.Query)
	if err != nil {
		return nil, err
	}

	category := strings.TrimSpace(filters.Category)
	result := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(p.Category, category) {
			continue
		}
		if filters.MinPrice != nil && p.Price < *filters.MinPrice {
			continue
		}
		if filters.MaxPrice != nil && p.Price > *filters.MaxPrice {
			continue
		}
		if filters.InStockOnly && p.Stock <= 0 {
			continue
		}
		result = append(result, p)
	}

	switch filters.Sort {
	case entity.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case entity.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result, nil
}

// Get bitta mahsulot
func (u *productUseCase) Get(ctx context.Context, id string) (*ProductView, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductView{Product: *product, StockStatus: entity.StockStatusOf(*product)}, nil
}

// Categories kategoriyalar ro'yxati
func (u *productUseCase) Categories(ctx context.Context) ([]string, error) {
	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	categories := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

// Related o'xshash mahsulotlar
func (u *productUseCase) Related(ctx context.Context, id string) ([]entity.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sameCategory, err := u.productRepo.GetByCategory(ctx, product.Category)
	if err != nil {
		return nil, err
	}

	related := make([]entity.Product, 0, len(sameCategory))
	for _, p := range sameCategory {
		if p.ID != product.ID {
			related = append(related, p)
		}
	}
	return related, nil
}

// Recommendations tavsiyalar sahifasi
func (u *productUseCase) Recommendations(ctx context.Context, excludeID string, offset, limit int) (*RecommendationPage, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	products, err := u.productRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	pool := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != excludeID {
			pool = append(pool, p)
		}
	}

	page := &RecommendationPage{Products: []entity.Product{}, Offset: offset}
	if offset >= len(pool) {
		return page, nil
	}
	end := offset + limit
	if end > len(pool) {
		end = len(pool)
	}
	page.Products = pool[offset:end]
	page.HasMore = end < len(pool)
	return page, nil
}

// Reviews sharhlar va statistika
func (u *productUseCase) Reviews(ctx context.Context, id string) (*ProductReviews, error) {
	if _, err := u.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	reviews, err := u.reviewRepo.GetReviews(ctx, id)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []entity.Review{}
	}

	return &ProductReviews{Reviews: reviews, Summary: SummarizeReviews(reviews)}, nil
}

// SummarizeReviews o'rtacha reyting va 5..1 yulduz taqsimoti
func SummarizeReviews(reviews []entity.Review) entity.ReviewSummary {
	summary := entity.ReviewSummary{
		Count:        len(reviews),
		Distribution: make([]entity.RatingBucket, 0, 5),
	}

	counts := make(map[int]int, 5)
	total := 0
	for _, r := range reviews {
		counts[r.Rating]++
		total += r.Rating
	}
	if len(reviews) > 0 {
		summary.AverageRating = float64(total) / float64(len(reviews))
	}

	for stars := 5; stars >= 1; stars-- {
		bucket := entity.RatingBucket{Stars: stars, Count: counts[stars]}
		if len(reviews) > 0 {
			bucket.Percentage = float64(bucket.Count) * 100 / float64(len(reviews))
		}
		summary.Distribution = append(summary.Distribution, bucket)
	}
	return summary
}

// Questions savol-javoblar
func (u *productUseCase) Questions(ctx context.Context, id string) ([]entity.Question, error) {
	if _, err := u.productRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	questions, err := u.reviewRepo.GetQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []entity.Question{}
	}
	return questions, nil
}
