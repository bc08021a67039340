package usecase

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

const (
	DefaultAnalysisInterval  = 2 * time.Second
	DefaultRateLimitCooldown = 30 * time.Second
)

// AnalysisStatus bitta kadr so'rovining natijasi
type AnalysisStatus string

const (
	StatusAnalyzed        AnalysisStatus = "analyzed"
	StatusThrottled       AnalysisStatus = "throttled"
	StatusBusy            AnalysisStatus = "busy"
	StatusCoolingDown     AnalysisStatus = "cooling_down"
	StatusRateLimited     AnalysisStatus = "rate_limited"
	StatusPaymentRequired AnalysisStatus = "payment_required"
	StatusFailed          AnalysisStatus = "failed"
)

// MonitorConfig tahlil tezligi sozlamalari
type MonitorConfig struct {
	Interval time.Duration
	Cooldown time.Duration
}

// Outcome AnalyzeFrame javobi. Data oxirgi ma'lum natija.
type Outcome struct {
	Status   AnalysisStatus      `json:"status"`
	Data     *entity.EmotionData `json:"data,omitempty"`
	Error    string              `json:"error,omitempty"`
	Alert    *AlertOutcome       `json:"alert,omitempty"`
	Playlist Playlist            `json:"playlist"`
	RetryAt  *time.Time          `json:"retryAt,omitempty"`
}

// Snapshot sessiya holati
type Snapshot struct {
	SessionID     string                 `json:"sessionId"`
	Data          *entity.EmotionData    `json:"data,omitempty"`
	Error         string                 `json:"error,omitempty"`
	Histogram     map[entity.Emotion]int `json:"histogram"`
	Analyses      int                    `json:"analyses"`
	LastAnalysis  *time.Time             `json:"lastAnalysis,omitempty"`
	CooldownUntil *time.Time             `json:"cooldownUntil,omitempty"`
}

// MonitorUseCase kamera kadrlari bo'yicha his-tuyg'u kuzatuvi
type MonitorUseCase interface {
	// AnalyzeFrame JPEG kadrni throttle/cooldown dan o'tkazib modelga yuborish
	AnalyzeFrame(ctx context.Context, sessionID string, jpeg []byte, language Language) Outcome

	// Reset sessiya holatini tozalash
	Reset(sessionID string)

	// Snapshot sessiya holati
	Snapshot(sessionID string) Snapshot
}

type monitorSession struct {
	mu            sync.Mutex
	lastRun       time.Time
	inFlight      bool
	cooldownUntil time.Time
	latest        *entity.EmotionData
	lastError     string
	histogram     map[entity.Emotion]int
	analyses      int
}

type monitorUseCase struct {
	cfg      MonitorConfig
	analyzer repository.EmotionAnalyzer
	frames   repository.FrameProcessor
	alerts   AlertUseCase
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*monitorSession
}

// NewMonitorUseCase yangi MonitorUseCase yaratish. frames nil bo'lsa kadr o'zgartirilmaydi.
func NewMonitorUseCase(
	cfg MonitorConfig,
	analyzer repository.EmotionAnalyzer,
	frames repository.FrameProcessor,
	alerts AlertUseCase,
) MonitorUseCase {
	return newMonitorUseCase(cfg, analyzer, frames, alerts, time.Now)
}

func newMonitorUseCase(
	cfg MonitorConfig,
	analyzer repository.EmotionAnalyzer,
	frames repository.FrameProcessor,
	alerts AlertUseCase,
	now func() time.Time,
) *monitorUseCase {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultAnalysisInterval
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = DefaultRateLimitCooldown
	}
	return &monitorUseCase{
		cfg:      cfg,
		analyzer: analyzer,
		frames:   frames,
		alerts:   alerts,
		now:      now,
		sessions: make(map[string]*monitorSession),
	}
}

func (u *monitorUseCase) session(id string) *monitorSession {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, ok := u.sessions[id]
	if !ok {
		s = &monitorSession{histogram: make(map[entity.Emotion]int)}
		u.sessions[id] = s
	}
	return s
}

// AnalyzeFrame kadrni tahlil qilish
func (u *monitorUseCase) AnalyzeFrame(ctx context.Context, sessionID string, jpeg []byte, language Language) Outcome {
	s := u.session(sessionID)

	s.mu.Lock()
	now := u.now()
	outcome := Outcome{Data: s.latest}

	switch {
	case s.inFlight:
		outcome.Status = StatusBusy
	case now.Before(s.cooldownUntil):
		outcome.Status = StatusCoolingDown
		until := s.cooldownUntil
		outcome.RetryAt = &until
	case !s.lastRun.IsZero() && now.Sub(s.lastRun) < u.cfg.Interval:
		outcome.Status = StatusThrottled
	}
	if outcome.Status != "" {
		outcome.Error = s.lastError
		outcome.Playlist = PlaylistFor(language, emotionOf(s.latest))
		s.mu.Unlock()
		return outcome
	}

	s.inFlight = true
	s.lastRun = now
	s.mu.Unlock()

	data, err := u.analyze(ctx, jpeg)

	s.mu.Lock()
	s.inFlight = false
	switch {
	case errors.Is(err, entity.ErrRateLimited):
		s.cooldownUntil = u.now().Add(u.cfg.Cooldown)
		s.lastError = err.Error()
		until := s.cooldownUntil
		outcome.Status = StatusRateLimited
		outcome.RetryAt = &until
		log.Printf("⏳ Rate limited for %s, cooling down until %s", sessionID, until.Format(time.RFC3339))
	case errors.Is(err, entity.ErrPaymentRequired):
		s.lastError = entity.ErrPaymentRequired.Error()
		outcome.Status = StatusPaymentRequired
	case err != nil:
		s.lastError = err.Error()
		outcome.Status = StatusFailed
		log.Printf("❌ Emotion analysis failed for %s: %v", sessionID, err)
	default:
		s.latest = &data
		s.lastError = data.Error
		s.analyses++
		if !data.NoFace {
			s.histogram[data.Emotion]++
		}
		outcome.Status = StatusAnalyzed
	}
	outcome.Data = s.latest
	outcome.Error = s.lastError
	outcome.Playlist = PlaylistFor(language, emotionOf(s.latest))
	s.mu.Unlock()

	if outcome.Status == StatusAnalyzed && u.alerts != nil {
		outcome.Alert = u.alerts.Check(ctx, sessionID, data)
	}
	return outcome
}

func (u *monitorUseCase) analyze(ctx context.Context, jpeg []byte) (entity.EmotionData, error) {
	if u.frames != nil {
		prepared, err := u.frames.Prepare(jpeg)
		if err != nil {
			return entity.EmotionData{}, err
		}
		jpeg = prepared
	}

	data, err := u.analyzer.Analyze(ctx, jpeg)
	if err != nil {
		return entity.EmotionData{}, err
	}
	return data.Normalize(), nil
}

// Reset sessiya holatini tozalash
func (u *monitorUseCase) Reset(sessionID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.sessions, sessionID)
}

// Snapshot sessiya holati
func (u *monitorUseCase) Snapshot(sessionID string) Snapshot {
	s := u.session(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		SessionID: sessionID,
		Error:     s.lastError,
		Histogram: make(map[entity.Emotion]int, len(s.histogram)),
		Analyses:  s.analyses,
	}
	if s.latest != nil {
		data := *s.latest
		snap.Data = &data
	}
	for emotion, n := range s.histogram {
		snap.Histogram[emotion] = n
	}
	if !s.lastRun.IsZero() {
		last := s.lastRun
		snap.LastAnalysis = &last
	}
	if s.cooldownUntil.After(u.now()) {
		until := s.cooldownUntil
		snap.CooldownUntil = &until
	}
	return snap
}

func emotionOf(data *entity.EmotionData) entity.Emotion {
	if data == nil {
		return entity.EmotionNeutral
	}
	return data.Emotion
}
