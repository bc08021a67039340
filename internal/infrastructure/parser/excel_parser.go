package parser

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// DefaultCategory kategoriya aniqlanmaganda
const DefaultCategory = "Other"

type excelParser struct{}

// NewExcelParser yangi Excel parser yaratish
func NewExcelParser() repository.ExcelParser {
	return &excelParser{}
}

// ParseProducts Excel fayldan mahsulotlarni o'qish
func (e *excelParser) ParseProducts(ctx context.Context, filePath string) ([]entity.Product, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	return e.parseExcelFile(f)
}

// ParseProductsFromBytes byte array dan parse qilish
func (e *excelParser) ParseProductsFromBytes(ctx context.Context, data []byte, filename string) ([]entity.Product, error) {
	reader := bytes.NewReader(data)
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	log.Printf("📥 Parsing catalog %s", filename)
	return e.parseExcelFile(f)
}

// parseExcelFile birinchi sheet ni katalog jadvali sifatida o'qish
func (e *excelParser) parseExcelFile(f *excelize.File) ([]entity.Product, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	// Agar birinchi qatorning 2-ustuni raqam bo'lsa, header yo'q
	hasHeader := true
	startRow := 1
	if len(rows[0]) > 1 {
		if _, err := parsePrice(rows[0][1]); err == nil {
			hasHeader = false
			startRow = 0
			log.Printf("🔍 No header detected - data starts from row 0")
		}
	}

	var header []string
	var columnMap map[string]int
	if hasHeader {
		header = rows[0]
		columnMap = mapColumns(header)
	} else {
		// Title | Price | Category | Stock
		columnMap = map[string]int{"title": 0, "price": 1, "category": 2, "stock": 3}
	}

	if _, ok := columnMap["price"]; !ok {
		if guessed := detectPriceColumn(rows, startRow); guessed >= 0 {
			columnMap["price"] = guessed
			log.Printf("🧠 Guessed price column: %d", guessed)
		} else {
			return nil, fmt.Errorf("price column not found")
		}
	}
	log.Printf("🗺️ Column mapping: %v", columnMap)

	used := make(map[int]struct{}, len(columnMap))
	for _, idx := range columnMap {
		used[idx] = struct{}{}
	}

	var products []entity.Product
	now := time.Now()

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		title := cell(row, columnMap, "title")
		priceStr := cell(row, columnMap, "price")
		if title == "" || priceStr == "" {
			continue
		}

		price, err := parsePrice(priceStr)
		if err != nil || price <= 0 {
			log.Printf("⚠️ Row %d: Invalid price '%s' - skipping", i+1, priceStr)
			continue
		}

		product := entity.Product{
			ID:          cell(row, columnMap, "id"),
			Title:       title,
			Price:       price,
			Category:    cell(row, columnMap, "category"),
			Description: cell(row, columnMap, "description"),
			Specs:       make(map[string]string),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if product.ID == "" {
			product.ID = uuid.New().String()
		}
		if product.Category == "" {
			product.Category = detectCategory(title)
		}
		if stockStr := cell(row, columnMap, "stock"); stockStr != "" {
			if stock, err := strconv.Atoi(strings.ReplaceAll(stockStr, ",", "")); err == nil && stock >= 0 {
				product.Stock = stock
			}
		}
		if ratingStr := cell(row, columnMap, "rating"); ratingStr != "" {
			if rating, err := strconv.ParseFloat(ratingStr, 64); err == nil && rating >= 0 && rating <= 5 {
				product.Rating = rating
			}
		}
		if images := cell(row, columnMap, "images"); images != "" {
			for _, img := range strings.FieldsFunc(images, func(r rune) bool { return r == ',' || r == ';' || r == ' ' }) {
				product.Images = append(product.Images, img)
			}
		}

		// Qolgan ustunlar specs ga
		if hasHeader {
			for idx, raw := range row {
				if _, ok := used[idx]; ok {
					continue
				}
				value := strings.TrimSpace(raw)
				if value == "" {
					continue
				}
				key := fmt.Sprintf("Extra_%d", idx)
				if idx < len(header) && strings.TrimSpace(header[idx]) != "" {
					key = strings.TrimSpace(header[idx])
				}
				product.Specs[key] = value
			}
		}

		products = append(products, product)
	}

	log.Printf("📦 Total products parsed: %d", len(products))

	if len(products) == 0 {
		return nil, fmt.Errorf("no valid products found in excel file (parsed %d rows, but all were invalid)", len(rows)-startRow)
	}

	return products, nil
}

func cell(row []string, columnMap map[string]int, key string) string {
	idx, ok := columnMap[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow qator bo'sh yoki yo'qligini tekshirish
func isEmptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// mapColumns header qatoridan column mapping yaratish. Tanilmagan ustunlar specs ga tushadi.
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int)

	for i, col := range header {
		colName := strings.ToLower(strings.TrimSpace(col))
		var key string

		switch {
		case colName == "id" || colName == "sku":
			key = "id"
		case contains(colName, "title", "name", "product"):
			key = "title"
		case contains(colName, "price", "cost", "₹", "inr", "$"):
			key = "price"
		case contains(colName, "rating", "stars"):
			key = "rating"
		case contains(colName, "category", "type"):
			key = "category"
		case contains(colName, "image", "photo", "picture"):
			key = "images"
		case contains(colName, "stock", "qty", "quantity", "inventory"):
			key = "stock"
		case contains(colName, "description", "details", "info"):
			key = "description"
		default:
			continue
		}

		// Birinchi mos ustun ustun turadi
		if _, exists := columnMap[key]; !exists {
			columnMap[key] = i
		}
	}

	if _, ok := columnMap["title"]; !ok && len(header) > 0 {
		columnMap["title"] = 0
		log.Printf("⚠️ No title column found, using column 0")
	}

	return columnMap
}

// detectPriceColumn narx ustunini topish (agar headerda topilmasa)
func detectPriceColumn(rows [][]string, startRow int) int {
	maxCols := 0
	limitRows := startRow + 15
	if limitRows > len(rows) {
		limitRows = len(rows)
	}
	for i := startRow; i < limitRows; i++ {
		if len(rows[i]) > maxCols {
			maxCols = len(rows[i])
		}
	}

	bestCol, bestCount := -1, 0
	for col := 0; col < maxCols; col++ {
		count := 0
		for i := startRow; i < limitRows; i++ {
			if col >= len(rows[i]) {
				continue
			}
			if _, err := parsePrice(rows[i][col]); err == nil {
				count++
			}
		}
		if count > bestCount {
			bestCol, bestCount = col, count
		}
	}

	// Kamida 2 ta qator narx sifatida o'qilsa, shu ustunni narx deb olamiz
	if bestCount >= 2 {
		return bestCol
	}
	return -1
}

func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}

var priceNoise = strings.NewReplacer(",", "", " ", "", "₹", "", "$", "", "€", "", "£", "", "rs.", "", "rs", "", "inr", "", "usd", "")

// parsePrice narxni parse qilish ("₹2,499.00", "Rs 799", "1299")
func parsePrice(priceStr string) (float64, error) {
	priceStr = strings.ToLower(strings.TrimSpace(priceStr))
	if priceStr == "" {
		return 0, fmt.Errorf("empty price")
	}

	cleaned := priceNoise.Replace(priceStr)
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price format: %s", priceStr)
	}
	return price, nil
}

// detectCategory mahsulot nomidan ShopX kategoriyasini aniqlash
func detectCategory(title string) string {
	t := strings.ToLower(title)

	switch {
	case contains(t, "headphone", "speaker", "keyboard", "mouse", "earbud", "charger", "bluetooth", "monitor", "camera", "watch"):
		return "Electronics"
	case contains(t, "wallet", "bottle", "bag", "belt", "sunglasses", "backpack", "case"):
		return "Accessories"
	case contains(t, "chair", "lamp", "blanket", "desk", "pillow", "mug", "table", "curtain"):
		return "Home"
	}
	return DefaultCategory
}
