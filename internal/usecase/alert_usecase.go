package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

const (
	EmergencySubject = "🚨 EMERGENCY ALERT: Fear Detected"
	EmergencyBody    = "EMERGENCY ALERT\nFear detected – Initiating emergency protocol.\nImmediate attention required."

	DefaultFearThreshold = 90.0
	DefaultAlertThrottle = 60 * time.Second
	DefaultHistoryLimit  = 50
)

// AlertConfig favqulodda xabar sozlamalari
type AlertConfig struct {
	GuardianEmail string
	FearThreshold float64
	Throttle      time.Duration
}

// AlertOutcome gate ishlagandan keyingi natija
type AlertOutcome struct {
	Triggered bool                `json:"triggered"`
	Sent      bool                `json:"sent"`
	Error     string              `json:"error,omitempty"`
	Record    *entity.AlertRecord `json:"record,omitempty"`
}

// AlertUseCase qo'rquv aniqlanganda vasiyga xabar yuborish
type AlertUseCase interface {
	// Check gate: fear, ishonch >= chegara, yuz bor va throttle o'tgan bo'lsa yuboradi. Aks holda nil.
	Check(ctx context.Context, sessionID string, data entity.EmotionData) *AlertOutcome

	// SendEmergency vasiyga darhol xabar yuborish
	SendEmergency(ctx context.Context, sessionID string, trigger entity.EmotionData) (*entity.AlertRecord, error)

	// SendEmail ixtiyoriy xat yuborish
	SendEmail(ctx context.Context, msg entity.EmailMessage) error

	// History oxirgi urinishlar
	History(ctx context.Context, limit int) ([]entity.AlertRecord, error)
}

type alertUseCase struct {
	cfg      AlertConfig
	sender   repository.EmailSender
	notifier repository.AlertNotifier
	repo     repository.AlertRepository
	now      func() time.Time

	mu        sync.Mutex
	lastAlert map[string]time.Time
	sending   map[string]bool
}

// NewAlertUseCase yangi AlertUseCase. sender yoki notifier nil bo'lishi mumkin.
func NewAlertUseCase(
	cfg AlertConfig,
	sender repository.EmailSender,
	notifier repository.AlertNotifier,
	repo repository.AlertRepository,
) AlertUseCase {
	return newAlertUseCase(cfg, sender, notifier, repo, time.Now)
}

func newAlertUseCase(
	cfg AlertConfig,
	sender repository.EmailSender,
	notifier repository.AlertNotifier,
	repo repository.AlertRepository,
	now func() time.Time,
) *alertUseCase {
	if cfg.FearThreshold <= 0 {
		cfg.FearThreshold = DefaultFearThreshold
	}
	if cfg.Throttle <= 0 {
		cfg.Throttle = DefaultAlertThrottle
	}
	return &alertUseCase{
		cfg:       cfg,
		sender:    sender,
		notifier:  notifier,
		repo:      repo,
		now:       now,
		lastAlert: make(map[string]time.Time),
		sending:   make(map[string]bool),
	}
}

// Check qo'rquv gate
func (u *alertUseCase) Check(ctx context.Context, sessionID string, data entity.EmotionData) *AlertOutcome {
	if data.Emotion != entity.EmotionFear || data.NoFace || data.Confidence < u.cfg.FearThreshold {
		return nil
	}

	// Vaqt yuborishdan oldin belgilanadi: muvaffaqiyatsiz urinish ham oynani band qiladi
	u.mu.Lock()
	now := u.now()
	if last, ok := u.lastAlert[sessionID]; ok && now.Sub(last) < u.cfg.Throttle {
		u.mu.Unlock()
		return nil
	}
	u.lastAlert[sessionID] = now
	u.mu.Unlock()

	log.Printf("🚨 Fear detected for %s (%.0f%%), alerting guardian", sessionID, data.Confidence)

	outcome := &AlertOutcome{Triggered: true}
	record, err := u.SendEmergency(ctx, sessionID, data)
	outcome.Record = record
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Sent = true
	return outcome
}

// SendEmergency vasiyga xat va (bo'lsa) Telegram nusxasi
func (u *alertUseCase) SendEmergency(ctx context.Context, sessionID string, trigger entity.EmotionData) (*entity.AlertRecord, error) {
	record := entity.AlertRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Emotion:    trigger.Emotion,
		Confidence: trigger.Confidence,
		Recipient:  u.cfg.GuardianEmail,
		Channel:    "email",
		CreatedAt:  u.now(),
	}

	// Bitta sessiya uchun bir vaqtda faqat bitta yuborish
	if !u.acquire(sessionID) {
		record.Error = entity.ErrAlertInProgress.Error()
		u.save(ctx, record)
		return &record, entity.ErrAlertInProgress
	}
	defer u.release(sessionID)

	var sendErr error
	switch {
	case u.cfg.GuardianEmail == "":
		sendErr = entity.ErrGuardianNotConfigured
	case u.sender == nil:
		sendErr = entity.ErrNoEmailProvider
	default:
		sendErr = u.sender.Send(ctx, entity.EmailMessage{
			To:      u.cfg.GuardianEmail,
			Subject: EmergencySubject,
			Body:    EmergencyBody,
		})
	}

	if sendErr != nil {
		record.Error = sendErr.Error()
		log.Printf("❌ Emergency email failed: %v", sendErr)
	} else {
		record.Success = true
		log.Printf("📧 Emergency email sent to %s via %s", u.cfg.GuardianEmail, u.sender.Name())
	}
	u.save(ctx, record)

	if u.notifier != nil {
		u.notifyTelegram(ctx, sessionID, trigger)
	}

	if sendErr != nil {
		return &record, sendErr
	}
	return &record, nil
}

func (u *alertUseCase) acquire(sessionID string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.sending[sessionID] {
		return false
	}
	u.sending[sessionID] = true
	return true
}

func (u *alertUseCase) release(sessionID string) {
	u.mu.Lock()
	delete(u.sending, sessionID)
	u.mu.Unlock()
}

func (u *alertUseCase) notifyTelegram(ctx context.Context, sessionID string, trigger entity.EmotionData) {
	text := fmt.Sprintf("%s\n\nSession: %s\nConfidence: %.0f%%\n%s", EmergencySubject, sessionID, trigger.Confidence, EmergencyBody)

	record := entity.AlertRecord{
		ID:         uuid.New().String(),
		SessionID:  sessionID,
		Emotion:    trigger.Emotion,
		Confidence: trigger.Confidence,
		Recipient:  "telegram",
		Channel:    "telegram",
		CreatedAt:  u.now(),
	}
	if err := u.notifier.Notify(ctx, text); err != nil {
		record.Error = err.Error()
		log.Printf("⚠️ Telegram alert failed: %v", err)
	} else {
		record.Success = true
	}
	u.save(ctx, record)
}

func (u *alertUseCase) save(ctx context.Context, record entity.AlertRecord) {
	if err := u.repo.SaveAlert(ctx, record); err != nil {
		log.Printf("⚠️ Failed to record alert %s: %v", record.ID, err)
	}
}

// SendEmail ixtiyoriy xat
func (u *alertUseCase) SendEmail(ctx context.Context, msg entity.EmailMessage) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	if u.sender == nil {
		return entity.ErrNoEmailProvider
	}
	if err := u.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	log.Printf("📧 Email sent to %s via %s", msg.To, u.sender.Name())
	return nil
}

// History oxirgi urinishlar
func (u *alertUseCase) History(ctx context.Context, limit int) ([]entity.AlertRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	alerts, err := u.repo.ListAlerts(ctx, limit)
	if err != nil {
		return nil, err
	}
	if alerts == nil {
		alerts = []entity.AlertRecord{}
	}
	return alerts, nil
}
