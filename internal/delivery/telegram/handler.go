package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/usecase"
)

// maxFileSize Excel fayl chegarasi (5MB)
const maxFileSize = 5 * 1024 * 1024

type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// BotHandler do'kon adminlari uchun Telegram bot
type BotHandler struct {
	bot          botAPI
	adminUseCase usecase.AdminUseCase
	alertUseCase usecase.AlertUseCase
	httpClient   *http.Client

	mu               sync.RWMutex
	tokens           map[int64]string // userID -> admin JWT
	awaitingPassword map[int64]bool
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(token string, adminUseCase usecase.AdminUseCase, alertUseCase usecase.AlertUseCase) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	log.Printf("🤖 Admin bot @%s ulandi", bot.Self.UserName)
	return newBotHandler(bot, adminUseCase, alertUseCase), nil
}

func newBotHandler(bot botAPI, adminUseCase usecase.AdminUseCase, alertUseCase usecase.AlertUseCase) *BotHandler {
	return &BotHandler{
		bot:              bot,
		adminUseCase:     adminUseCase,
		alertUseCase:     alertUseCase,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
		tokens:           make(map[int64]string),
		awaitingPassword: make(map[int64]bool),
	}
}

// ErrUpdatesClosed yangilanishlar kanali yopilganda Start qaytaradi
var ErrUpdatesClosed = errors.New("telegram updates channel closed")

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot to'xtatilmoqda...")
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				log.Println("⚠️ Telegram updates channel closed")
				return ErrUpdatesClosed
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	userID := message.From.ID

	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	if h.isAwaitingPassword(userID) && !message.IsCommand() {
		h.handlePasswordInput(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	h.sendMessage(message.Chat.ID, "Noma'lum xabar. /help yordam uchun.")
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start", "help":
		h.sendMessage(message.Chat.ID, helpMessage)
	case "admin":
		h.handleAdminCommand(ctx, message)
	case "logout":
		h.handleLogoutCommand(ctx, message)
	case "catalog":
		h.handleCatalogCommand(ctx, message)
	case "orders":
		h.handleOrdersCommand(ctx, message)
	case "alerts":
		h.handleAlertsCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Noma'lum komanda. /help yordam uchun.")
	}
}

const helpMessage = `🛍 ShopX admin bot

/admin - Admin sifatida kirish
/catalog - Katalog haqida ma'lumot
/orders - Buyurtmalarni Excel ko'rinishida olish
/alerts - Oxirgi favqulodda xabarlar
/logout - Chiqish

📤 Katalogni yangilash uchun Excel faylni (maksimal 5MB) yuboring.`

// handleAdminCommand admin login boshlash
func (h *BotHandler) handleAdminCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	if _, ok := h.authorize(ctx, userID); ok {
		h.sendMessage(message.Chat.ID, "Siz allaqachon admin sifatida tizimga kirgansiz!")
		return
	}

	h.setAwaitingPassword(userID, true)
	h.sendMessage(message.Chat.ID, "🔐 Admin parolini kiriting:")
}

// handlePasswordInput parol kiritilganini qayta ishlash
func (h *BotHandler) handlePasswordInput(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	h.setAwaitingPassword(userID, false)

	// Parolli xabar chatda qolmasin
	if _, err := h.bot.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID)); err != nil {
		log.Printf("Parol xabarini o'chirib bo'lmadi: %v", err)
	}

	token, err := h.adminUseCase.Login(ctx, message.Text)
	if err != nil {
		log.Printf("Login error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Noto'g'ri parol!")
		return
	}

	h.mu.Lock()
	h.tokens[userID] = token
	h.mu.Unlock()

	h.sendMessage(message.Chat.ID, "✅ Admin panelga xush kelibsiz!\n\n"+helpMessage)
}

// handleLogoutCommand admin logout
func (h *BotHandler) handleLogoutCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	token, ok := h.authorize(ctx, userID)
	if !ok {
		h.sendMessage(message.Chat.ID, "Siz admin emassiz.")
		return
	}

	if err := h.adminUseCase.Logout(ctx, token); err != nil {
		h.sendMessage(message.Chat.ID, "Logout xatosi.")
		return
	}

	h.mu.Lock()
	delete(h.tokens, userID)
	h.mu.Unlock()

	h.sendMessage(message.Chat.ID, "✅ Admin paneldan chiqdingiz.")
}

// handleCatalogCommand katalog haqida ma'lumot
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	if _, ok := h.authorize(ctx, message.From.ID); !ok {
		h.sendMessage(message.Chat.ID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	info, err := h.adminUseCase.CatalogInfo(ctx)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Katalog topilmadi. Excel fayl yuklang.")
		return
	}

	h.sendMessage(message.Chat.ID, formatCatalogInfo(info))
}

// handleOrdersCommand buyurtmalarni xlsx qilib yuborish
func (h *BotHandler) handleOrdersCommand(ctx context.Context, message *tgbotapi.Message) {
	token, ok := h.authorize(ctx, message.From.ID)
	if !ok {
		h.sendMessage(message.Chat.ID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	data, err := h.adminUseCase.ExportOrders(ctx, token)
	if err != nil {
		log.Printf("Export orders error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Buyurtmalarni eksport qilishda xatolik.")
		return
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, tgbotapi.FileBytes{
		Name:  fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-1504")),
		Bytes: data,
	})
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("Faylni yuborishda xatolik: %v", err)
	}
}

// handleAlertsCommand oxirgi favqulodda xabarlar
func (h *BotHandler) handleAlertsCommand(ctx context.Context, message *tgbotapi.Message) {
	if _, ok := h.authorize(ctx, message.From.ID); !ok {
		h.sendMessage(message.Chat.ID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}

	alerts, err := h.alertUseCase.History(ctx, 10)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Tarixni yuklashda xatolik.")
		return
	}
	h.sendMessage(message.Chat.ID, formatAlerts(alerts))
}

// handleDocumentMessage Excel katalogni qabul qilish
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	token, ok := h.authorize(ctx, message.From.ID)
	if !ok {
		h.sendMessage(message.Chat.ID, "❌ Fayllarni faqat adminlar yuklashi mumkin. /admin komandasi bilan admin bo'ling.")
		return
	}

	doc := message.Document
	if doc.FileSize > maxFileSize {
		h.sendMessage(message.Chat.ID, "❌ Fayl hajmi 5MB dan oshmasligi kerak!")
		return
	}

	name := strings.ToLower(doc.FileName)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		h.sendMessage(message.Chat.ID, "❌ Faqat Excel fayllari (.xlsx, .xls) qabul qilinadi!")
		return
	}

	h.sendMessage(message.Chat.ID, "⏳ Fayl yuklanmoqda va qayta ishlanmoqda...")

	fileBytes, err := h.downloadFile(ctx, doc.FileID)
	if err != nil {
		log.Printf("File download error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Faylni yuklashda xatolik yuz berdi.")
		return
	}

	count, err := h.adminUseCase.UploadCatalog(ctx, token, fileBytes, doc.FileName)
	if err != nil {
		log.Printf("Upload catalog error: %v", err)
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Katalogni yangilashda xatolik: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf("✅ Katalog muvaffaqiyatli yangilandi!\n\n📦 Yuklangan mahsulotlar: %d ta\n📄 Fayl: %s", count, doc.FileName))
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := h.bot.GetFileDirectURL(fileID)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download failed: %s", resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxFileSize+1))
}

// authorize saqlangan token hali amalda bo'lsa qaytaradi
func (h *BotHandler) authorize(ctx context.Context, userID int64) (string, bool) {
	h.mu.RLock()
	token, ok := h.tokens[userID]
	h.mu.RUnlock()
	if !ok {
		return "", false
	}

	if _, err := h.adminUseCase.Authorize(ctx, token); err != nil {
		h.mu.Lock()
		delete(h.tokens, userID)
		h.mu.Unlock()
		return "", false
	}
	return token, true
}

func (h *BotHandler) isAwaitingPassword(userID int64) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.awaitingPassword[userID]
}

func (h *BotHandler) setAwaitingPassword(userID int64, awaiting bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if awaiting {
		h.awaitingPassword[userID] = true
	} else {
		delete(h.awaitingPassword, userID)
	}
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

func formatCatalogInfo(info *usecase.CatalogInfo) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📦 Katalog: %s\n", info.Source))
	sb.WriteString(fmt.Sprintf("📅 Yangilangan: %s\n", info.UpdatedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("📊 Jami mahsulotlar: %d\n", info.Total))
	sb.WriteString(fmt.Sprintf("⚠️ Kam qolgan: %d, tugagan: %d\n\n", info.LowStock, info.OutOfStock))
	sb.WriteString("📂 Kategoriyalar:\n")
	for _, c := range info.Categories {
		sb.WriteString(fmt.Sprintf("  • %s: %d ta\n", c.Category, c.Count))
	}
	return sb.String()
}

func formatAlerts(alerts []entity.AlertRecord) string {
	if len(alerts) == 0 {
		return "✅ Favqulodda xabarlar yo'q."
	}

	var sb strings.Builder
	sb.WriteString("🚨 Oxirgi xabarlar:\n\n")
	for _, a := range alerts {
		status := "✅"
		if !a.Success {
			status = "❌"
		}
		sb.WriteString(fmt.Sprintf("%s %s [%s] %s %.0f%% -> %s\n", status, a.CreatedAt.Format("01-02 15:04"), a.Channel, a.SessionID, a.Confidence, a.Recipient))
		if a.Error != "" {
			sb.WriteString(fmt.Sprintf("   %s\n", a.Error))
		}
	}
	return sb.String()
}
