package entity

import "time"

// Product do'kon katalogidagi mahsulot
type Product struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Price       float64           `json:"price"`
	Rating      float64           `json:"rating"`
	Category    string            `json:"category"`
	Images      []string          `json:"images"`
	Stock       int               `json:"stock"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs,omitempty"` // Excel dan kelgan qo'shimcha ustunlar
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// ProductCatalog mahsulotlar katalogi
type ProductCatalog struct {
	Products  []Product
	UpdatedAt time.Time
	Source    string // "seed" yoki Excel fayl nomi
}

// StockStatus ombor holati
type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// LowStockLimit shu songacha "low stock" belgisi chiqadi
const LowStockLimit = 5

// StockStatusOf mahsulot ombor holatini aniqlash
func StockStatusOf(p Product) StockStatus {
	switch {
	case p.Stock <= 0:
		return StockOut
	case p.Stock <= LowStockLimit:
		return StockLow
	default:
		return StockIn
	}
}

// SortOrder katalog tartibi
type SortOrder string

const (
	SortDefault   SortOrder = "default"
	SortPriceAsc  SortOrder = "price-asc"
	SortPriceDesc SortOrder = "price-desc"
)

// Filters katalog filtrlari. Nil narx chegarasi qo'llanmaydi.
type Filters struct {
	Query       string
	Category    string
	MinPrice    *float64
	MaxPrice    *float64
	InStockOnly bool
	Sort        SortOrder
}

// Review mahsulot sharhi
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Verified  bool      `json:"verified"`
	Helpful   int       `json:"helpful"`
	CreatedAt time.Time `json:"createdAt"`
}

// RatingBucket bitta yulduz soni bo'yicha taqsimot
type RatingBucket struct {
	Stars      int     `json:"stars"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ReviewSummary sharhlar statistikasi
type ReviewSummary struct {
	AverageRating float64        `json:"averageRating"`
	Count         int            `json:"count"`
	Distribution  []RatingBucket `json:"distribution"`
}

// Question mahsulot haqida savol-javob
type Question struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
