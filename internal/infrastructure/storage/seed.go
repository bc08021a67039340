package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

// SeedSource seed katalog manbasi nomi
const SeedSource = "seed"

// SeedProducts ShopX ning standart katalogi
func SeedProducts() []entity.Product {
	now := time.Now()
	p := func(id, title string, price, rating float64, category, image string, stock int, desc string) entity.Product {
		return entity.Product{
			ID:          id,
			Title:       title,
			Price:       price,
			Rating:      rating,
			Category:    category,
			Images:      []string{image},
			Stock:       stock,
			Description: desc,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	return []entity.Product{
		p("p1", "Wireless Over-ear Headphones", 2499, 4.5, "Electronics",
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=900&q=80", 15,
			"Premium wireless headphones with 30-hour battery life and active noise cancellation. Perfect for music lovers and professionals."),
		p("p2", "Portable Bluetooth Speaker", 1799, 4.3, "Electronics",
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=900&q=80", 8,
			"Rugged portable speaker with deep bass and water resistance. Take your music anywhere with 12-hour battery life."),
		p("p3", "Classic Leather Wallet", 799, 4.0, "Accessories",
			"https://images.unsplash.com/photo-1627123423710-8fca5ffb5f04?w=900&q=80", 30,
			"Slim RFID-blocking leather wallet with 8 card slots. Handcrafted from genuine leather for lasting durability."),
		p("p4", "Ergonomic Office Chair", 8499, 4.4, "Home",
			"https://images.unsplash.com/photo-1592078615290-033ee584e267?w=900&q=80", 6,
			"Premium office chair with lumbar support and adjustable height. Designed for all-day comfort and productivity."),
		p("p5", "Stainless Steel Water Bottle 1L", 499, 4.2, "Accessories",
			"https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=900&q=80", 0,
			"Vacuum insulated water bottle, keeps drinks cold for 24 hours or hot for 12 hours. BPA-free and eco-friendly."),
		p("p6", "Smart LED Desk Lamp", 1299, 4.1, "Home",
			"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=900&q=80", 12,
			"Adjustable lamp with warm/cool light modes and touch control. Features auto-dimming and eye-care technology."),
		p("p7", "Mechanical Gaming Keyboard", 3299, 4.6, "Electronics",
			"https://images.unsplash.com/photo-1595225476474-87563907a212?w=900&q=80", 10,
			"RGB mechanical keyboard with customizable keys and tactile switches. Built for gaming and productivity."),
		p("p8", "Cotton Blend Throw Blanket", 1199, 4.4, "Home",
			"https://images.unsplash.com/photo-1631679706909-1844bbd07221?w=900&q=80", 18,
			"Soft and cozy throw blanket perfect for any season. Machine washable and available in multiple colors."),
	}
}

// SeedReviews namunaviy sharhlar
func SeedReviews() []entity.Review {
	base := time.Date(2024, 11, 1, 10, 0, 0, 0, time.UTC)
	r := func(n int, productID, author string, rating int, title, body string, verified bool, helpful int) entity.Review {
		return entity.Review{
			ID:        fmt.Sprintf("r%d", n),
			ProductID: productID,
			Author:    author,
			Rating:    rating,
			Title:     title,
			Body:      body,
			Verified:  verified,
			Helpful:   helpful,
			CreatedAt: base.AddDate(0, 0, n),
		}
	}

	return []entity.Review{
		r(1, "p1", "Aarav S.", 5, "Best headphones I have owned", "Noise cancellation is excellent and the battery lasts the whole week.", true, 24),
		r(2, "p1", "Meera K.", 4, "Great sound, slightly heavy", "Sound is rich and detailed. Gets a little heavy after a few hours.", true, 11),
		r(3, "p1", "Rohan P.", 5, "Worth every rupee", "Pairs instantly with my phone and laptop.", false, 6),
		r(4, "p2", "Ishita R.", 4, "Loud and sturdy", "Survived a pool party without a scratch.", true, 9),
		r(5, "p2", "Kabir M.", 3, "Bass could be better", "Good for the price but the bass distorts at max volume.", true, 3),
		r(6, "p3", "Ananya D.", 4, "Slim and elegant", "Fits in my front pocket easily.", true, 7),
		r(7, "p4", "Vikram T.", 5, "My back thanks me", "Lumbar support makes long work days bearable.", true, 15),
		r(8, "p4", "Sneha J.", 4, "Comfortable", "Assembly took 20 minutes, very comfortable.", false, 2),
		r(9, "p7", "Arjun N.", 5, "Clicky heaven", "Tactile switches feel great and the RGB is bright.", true, 18),
		r(10, "p8", "Priya L.", 4, "Very soft", "Washed it twice and it is still soft.", true, 4),
	}
}

// SeedQuestions namunaviy savol-javoblar
func SeedQuestions() []entity.Question {
	base := time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)
	q := func(n int, productID, question, answer, author string) entity.Question {
		return entity.Question{
			ID:        fmt.Sprintf("q%d", n),
			ProductID: productID,
			Question:  question,
			Answer:    answer,
			Author:    author,
			CreatedAt: base.AddDate(0, 0, n),
		}
	}

	return []entity.Question{
		q(1, "p1", "Does it support wired mode?", "Yes, a 3.5mm cable is included in the box.", "ShopX Support"),
		q(2, "p1", "Can I connect two devices at once?", "Multipoint pairing with two devices is supported.", "ShopX Support"),
		q(3, "p2", "Is it fully waterproof?", "It is rated IPX7 and survives submersion up to 1 metre.", "ShopX Support"),
		q(4, "p4", "What is the maximum supported weight?", "The chair supports up to 120 kg.", "ShopX Support"),
		q(5, "p7", "Are the switches hot-swappable?", "Yes, any 3-pin or 5-pin MX style switch fits.", "ShopX Support"),
	}
}

// LoadSeed standart katalogni repository larga yuklash
func LoadSeed(ctx context.Context, products repository.ProductRepository, reviews repository.ReviewRepository) error {
	catalog := entity.ProductCatalog{
		Products:  SeedProducts(),
		UpdatedAt: time.Now(),
		Source:    SeedSource,
	}
	if err := products.UpdateCatalog(ctx, catalog); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if err := reviews.SaveReviews(ctx, SeedReviews()); err != nil {
		return fmt.Errorf("seed reviews: %w", err)
	}
	if err := reviews.SaveQuestions(ctx, SeedQuestions()); err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}
	return nil
}
