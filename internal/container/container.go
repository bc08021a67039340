package container

import (
	"github.com/yourusername/shopx-sentinel/internal/delivery/rest"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

// Repositories saqlash qatlami
type Repositories struct {
	Products repository.ProductRepository
	Reviews  repository.ReviewRepository
	Carts    repository.CartRepository
	Wishlist repository.WishlistRepository
	Orders   repository.OrderRepository
	Alerts   repository.AlertRepository
	Admin    repository.AdminRepository
}

// Services tashqi xizmatlar. Email va Notifier nil bo'lishi mumkin.
type Services struct {
	Analyzer repository.EmotionAnalyzer
	Frames   repository.FrameProcessor
	Email    repository.EmailSender
	Notifier repository.AlertNotifier
	Parser   repository.ExcelParser
	Exporter repository.OrderExporter
}

// Settings use case sozlamalari
type Settings struct {
	Monitor usecase.MonitorConfig
	Alert   usecase.AlertConfig
	Admin   usecase.AdminConfig
}

// Container ilovaning use case lari
type Container struct {
	Products usecase.ProductUseCase
	Carts    usecase.CartUseCase
	Wishlist usecase.WishlistUseCase
	Checkout usecase.CheckoutUseCase
	Monitor  usecase.MonitorUseCase
	Alerts   usecase.AlertUseCase
	Admin    usecase.AdminUseCase
}

// New barcha use case larni yig'ish
func New(repos Repositories, services Services, settings Settings) *Container {
	carts := usecase.NewCartUseCase(repos.Carts, repos.Products)
	alerts := usecase.NewAlertUseCase(settings.Alert, services.Email, services.Notifier, repos.Alerts)

	return &Container{
		Products: usecase.NewProductUseCase(repos.Products, repos.Reviews),
		Carts:    carts,
		Wishlist: usecase.NewWishlistUseCase(repos.Wishlist, repos.Products),
		Checkout: usecase.NewCheckoutUseCase(carts, repos.Carts, repos.Products, repos.Orders),
		Monitor:  usecase.NewMonitorUseCase(settings.Monitor, services.Analyzer, services.Frames, alerts),
		Alerts:   alerts,
		Admin: usecase.NewAdminUseCase(
			settings.Admin,
			repos.Admin,
			repos.Products,
			repos.Orders,
			services.Parser,
			services.Exporter,
		),
	}
}

// RESTDeps REST handler uchun bog'liqliklar
func (c *Container) RESTDeps() rest.Deps {
	return rest.Deps{
		Products: c.Products,
		Carts:    c.Carts,
		Wishlist: c.Wishlist,
		Checkout: c.Checkout,
		Monitor:  c.Monitor,
		Alerts:   c.Alerts,
		Admin:    c.Admin,
	}
}
