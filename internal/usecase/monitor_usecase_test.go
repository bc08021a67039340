package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/infrastructure/storage"
)

var testFrame = []byte{0xff, 0xd8, 0xff, 0xe0}

func newTestMonitor(analyzer *fakeAnalyzer, alerts AlertUseCase, clock *fakeClock) *monitorUseCase {
	return newMonitorUseCase(MonitorConfig{Interval: 2 * time.Second, Cooldown: 30 * time.Second}, analyzer, nil, alerts, clock.Now)
}

func TestMonitor_ThrottleAndHistogram(t *testing.T) {
	clock := newFakeClock()
	analyzer := &fakeAnalyzer{data: entity.EmotionData{Emotion: "HAPPY", Confidence: 140, IsSmiling: true}}
	m := newTestMonitor(analyzer, nil, clock)
	ctx := context.Background()

	out := m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusAnalyzed, out.Status)
	require.Equal(t, entity.EmotionHappy, out.Data.Emotion)
	require.Equal(t, 100.0, out.Data.Confidence)

	clock.Advance(time.Second)
	out = m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusThrottled, out.Status)
	require.Equal(t, entity.EmotionHappy, out.Data.Emotion)
	require.Equal(t, 1, analyzer.calls)

	// Boshqa sessiya throttle ga tushmaydi
	out = m.AnalyzeFrame(ctx, "s2", testFrame, LanguageEnglish)
	require.Equal(t, StatusAnalyzed, out.Status)

	clock.Advance(time.Second)
	analyzer.set(entity.DefaultEmotionData(), nil)
	out = m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusAnalyzed, out.Status)
	require.True(t, out.Data.NoFace)

	snap := m.Snapshot("s1")
	require.Equal(t, 2, snap.Analyses)
	require.Equal(t, map[entity.Emotion]int{entity.EmotionHappy: 1}, snap.Histogram)
	require.NotNil(t, snap.LastAnalysis)

	m.Reset("s1")
	snap = m.Snapshot("s1")
	require.Nil(t, snap.Data)
	require.Zero(t, snap.Analyses)
}

func TestMonitor_RateLimitCooldown(t *testing.T) {
	clock := newFakeClock()
	analyzer := &fakeAnalyzer{err: entity.ErrRateLimited}
	m := newTestMonitor(analyzer, nil, clock)
	ctx := context.Background()

	out := m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusRateLimited, out.Status)
	require.NotNil(t, out.RetryAt)
	require.Equal(t, entity.ErrRateLimited.Error(), out.Error)

	analyzer.set(entity.EmotionData{Emotion: entity.EmotionSad, Confidence: 70}, nil)
	clock.Advance(10 * time.Second)
	out = m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusCoolingDown, out.Status)
	require.NotNil(t, m.Snapshot("s1").CooldownUntil)

	clock.Advance(20 * time.Second)
	out = m.AnalyzeFrame(ctx, "s1", testFrame, LanguageEnglish)
	require.Equal(t, StatusAnalyzed, out.Status)
	require.Equal(t, entity.EmotionSad, out.Data.Emotion)
	require.Empty(t, out.Error)
}

func TestMonitor_ErrorsKeepPreviousData(t *testing.T) {
	clock := newFakeClock()
	analyzer := &fakeAnalyzer{data: entity.EmotionData{Emotion: entity.EmotionNeutral, Confidence: 80}}
	m := newTestMonitor(analyzer, nil, clock)
	ctx := context.Background()

	require.Equal(t, StatusAnalyzed, m.AnalyzeFrame(ctx, "s1", testFrame, "").Status)

	clock.Advance(3 * time.Second)
	analyzer.set(entity.EmotionData{}, entity.ErrPaymentRequired)
	out := m.AnalyzeFrame(ctx, "s1", testFrame, "")
	require.Equal(t, StatusPaymentRequired, out.Status)
	require.Equal(t, "AI credits exhausted, please add funds", out.Error)
	require.Equal(t, entity.EmotionNeutral, out.Data.Emotion)

	clock.Advance(3 * time.Second)
	analyzer.set(entity.EmotionData{}, errors.New("connection reset"))
	out = m.AnalyzeFrame(ctx, "s1", testFrame, "")
	require.Equal(t, StatusFailed, out.Status)
	require.Contains(t, out.Error, "connection reset")
	require.Equal(t, 80.0, out.Data.Confidence)
}

func TestMonitor_Busy(t *testing.T) {
	clock := newFakeClock()
	analyzer := &fakeAnalyzer{data: entity.EmotionData{Emotion: entity.EmotionHappy}, block: make(chan struct{})}
	m := newTestMonitor(analyzer, nil, clock)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		m.AnalyzeFrame(ctx, "s1", testFrame, "")
	}()

	require.Eventually(t, func() bool {
		s := m.session("s1")
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.inFlight
	}, time.Second, 5*time.Millisecond)

	clock.Advance(5 * time.Second)
	out := m.AnalyzeFrame(ctx, "s1", testFrame, "")
	require.Equal(t, StatusBusy, out.Status)

	close(analyzer.block)
	wg.Wait()
	require.Equal(t, 1, analyzer.calls)
}

func TestMonitor_FearTriggersAlertOncePerWindow(t *testing.T) {
	clock := newFakeClock()
	sender := &fakeSender{}
	alerts := newAlertUseCase(AlertConfig{GuardianEmail: "g@example.com"}, sender, nil, storage.NewMemoryAlertRepository(), clock.Now)
	analyzer := &fakeAnalyzer{data: entity.EmotionData{Emotion: entity.EmotionFear, Confidence: 93}}
	m := newTestMonitor(analyzer, alerts, clock)
	ctx := context.Background()

	out := m.AnalyzeFrame(ctx, "s1", testFrame, "")
	require.NotNil(t, out.Alert)
	require.True(t, out.Alert.Sent)

	for i := 0; i < 10; i++ {
		clock.Advance(5 * time.Second)
		out = m.AnalyzeFrame(ctx, "s1", testFrame, "")
		require.Equal(t, StatusAnalyzed, out.Status)
		require.Nil(t, out.Alert)
	}
	// 50s o'tdi, hali bitta xat
	require.Equal(t, 1, sender.count())

	clock.Advance(10 * time.Second)
	out = m.AnalyzeFrame(ctx, "s1", testFrame, "")
	require.NotNil(t, out.Alert)
	require.Equal(t, 2, sender.count())
}

func TestPlaylistFor(t *testing.T) {
	p := PlaylistFor(LanguageHindi, entity.EmotionAngry)
	require.True(t, p.Calming)
	require.Equal(t, "37i9dQZF1DWTbX3R4Lh9zJ", p.ID)
	require.Contains(t, p.EmbedURL, p.ID)

	p = PlaylistFor("klingon", entity.EmotionHappy)
	require.Equal(t, LanguageEnglish, p.Language)
	require.False(t, p.Calming)
	require.Equal(t, "37i9dQZF1DXcBWIGoYBM5M", p.ID)

	p = PlaylistFor(ParseLanguage(" Telugu "), entity.EmotionSad)
	require.Equal(t, "37i9dQZF1DWWylE7aaeade", p.ID)
}
