package rest

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

// 5MB, xuddi Telegram bot kabi
const maxUploadSize = 5 << 20

// Handler REST so'rovlarini use case larga uzatadi
type Handler struct {
	products usecase.ProductUseCase
	carts    usecase.CartUseCase
	wishlist usecase.WishlistUseCase
	checkout usecase.CheckoutUseCase
	monitor  usecase.MonitorUseCase
	alerts   usecase.AlertUseCase
	admin    usecase.AdminUseCase
}

// Deps handler bog'liqliklari
type Deps struct {
	Products usecase.ProductUseCase
	Carts    usecase.CartUseCase
	Wishlist usecase.WishlistUseCase
	Checkout usecase.CheckoutUseCase
	Monitor  usecase.MonitorUseCase
	Alerts   usecase.AlertUseCase
	Admin    usecase.AdminUseCase
}

// NewHandler yangi REST handler yaratish
func NewHandler(d Deps) *Handler {
	return &Handler{
		products: d.Products,
		carts:    d.Carts,
		wishlist: d.Wishlist,
		checkout: d.Checkout,
		monitor:  d.Monitor,
		alerts:   d.Alerts,
		admin:    d.Admin,
	}
}

// statusOf domen xatosini HTTP statusga aylantirish
func statusOf(err error) int {
	switch {
	case errors.Is(err, entity.ErrProductNotFound), errors.Is(err, entity.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrOutOfStock), errors.Is(err, entity.ErrQuantityExceedsStock):
		return http.StatusConflict
	case errors.Is(err, entity.ErrAlertInProgress):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidSort),
		errors.Is(err, entity.ErrEmptyCart),
		errors.Is(err, entity.ErrMissingAddress),
		errors.Is(err, entity.ErrInvalidFrame),
		errors.Is(err, entity.ErrMissingEmailFields),
		errors.Is(err, entity.ErrInvalidEmailHeader):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, entity.ErrPaymentRequired):
		return http.StatusPaymentRequired
	case errors.Is(err, entity.ErrUnauthorized), errors.Is(err, entity.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("❌ %s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func queryFloat(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
