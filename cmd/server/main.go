package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/yourusername/shopx-sentinel/config"
	"github.com/yourusername/shopx-sentinel/internal/container"
	"github.com/yourusername/shopx-sentinel/internal/delivery/rest"
	tgdelivery "github.com/yourusername/shopx-sentinel/internal/delivery/telegram"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/email"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/gemini"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/parser"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/storage"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/telegram"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/vision"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.OpenShopDB(cfg.ShopDBPath)
	if err != nil {
		log.Fatalf("Failed to open shop db: %v", err)
	}
	defer db.Close()

	repos := container.Repositories{
		Products: storage.NewMemoryProductRepository(),
		Reviews:  storage.NewMemoryReviewRepository(),
		Carts:    storage.NewSQLiteCartRepository(db),
		Wishlist: storage.NewSQLiteWishlistRepository(db),
		Orders:   storage.NewSQLiteOrderRepository(db),
		Alerts:   storage.NewSQLiteAlertRepository(db),
		Admin:    storage.NewMemoryAdminRepository(),
	}

	if err := storage.LoadSeed(ctx, repos.Products, repos.Reviews); err != nil {
		log.Fatalf("Failed to load seed catalog: %v", err)
	}

	excelParser := parser.NewExcelParser()
	if cfg.CatalogXLSX != "" {
		if err := loadCatalogFile(ctx, excelParser, repos.Products, cfg.CatalogXLSX); err != nil {
			log.Fatalf("Failed to load %s: %v", cfg.CatalogXLSX, err)
		}
	}

	analyzer, closeAnalyzer, err := gemini.NewEmotionClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer closeAnalyzer()

	sender, err := email.NewSender(email.Config{
		From:           cfg.SMTPFrom,
		ResendAPIKey:   cfg.ResendAPIKey,
		SendGridAPIKey: cfg.SendGridAPIKey,
		SMTPHost:       cfg.SMTPHost,
		SMTPPort:       cfg.SMTPPort,
		SMTPUser:       cfg.SMTPUser,
		SMTPPassword:   cfg.SMTPPassword,
	})
	if errors.Is(err, entity.ErrNoEmailProvider) {
		log.Printf("⚠️ %v", err)
	} else if err != nil {
		log.Fatalf("Failed to configure email: %v", err)
	} else {
		log.Printf("📧 Email provider: %s", sender.Name())
	}
	if cfg.GuardianEmail == "" {
		log.Printf("⚠️ GUARDIAN_EMAIL not set, fear alerts will fail")
	}

	var notifier repository.AlertNotifier
	if cfg.TelegramToken != "" && cfg.TelegramAlertChatID != 0 {
		notifier, err = telegram.NewAlertNotifier(cfg.TelegramToken, cfg.TelegramAlertChatID)
		if err != nil {
			log.Fatalf("Failed to create Telegram notifier: %v", err)
		}
	}

	app := container.New(repos, container.Services{
		Analyzer: analyzer,
		Frames:   vision.NewFrameProcessor(vision.DefaultMaxSide),
		Email:    sender,
		Notifier: notifier,
		Parser:   excelParser,
		Exporter: parser.NewOrderExporter(),
	}, container.Settings{
		Monitor: usecase.MonitorConfig{
			Interval: cfg.AnalysisInterval,
			Cooldown: cfg.RateLimitCooldown,
		},
		Alert: usecase.AlertConfig{
			GuardianEmail: cfg.GuardianEmail,
			FearThreshold: cfg.FearThreshold,
			Throttle:      cfg.AlertThrottle,
		},
		Admin: usecase.AdminConfig{
			PasswordHash: cfg.AdminPasswordHash,
			JWTSecret:    cfg.JWTSecret,
		},
	})

	if cfg.TelegramAdminBot {
		bot, err := tgdelivery.NewBotHandler(cfg.TelegramToken, app.Admin, app.Alerts)
		if err != nil {
			log.Fatalf("Failed to create admin bot: %v", err)
		}
		go func() {
			if err := bot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("❌ Admin bot stopped: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           rest.NewRouter(rest.NewHandler(app.RESTDeps()), cfg.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 ShopX server listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server to'xtatilmoqda...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func loadCatalogFile(ctx context.Context, p repository.ExcelParser, products repository.ProductRepository, path string) error {
	items, err := p.ParseProducts(ctx, path)
	if err != nil {
		return err
	}
	log.Printf("📦 Catalog %s: %d products", path, len(items))
	return products.UpdateCatalog(ctx, entity.ProductCatalog{
		Products:  items,
		UpdatedAt: time.Now(),
		Source:    filepath.Base(path),
	})
}
