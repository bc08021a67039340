package repository

import (
	"context"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// EmotionAnalyzer tashqi vision modeli bilan ishlash uchun interface
type EmotionAnalyzer interface {
	// Analyze JPEG kadrni tahlil qilish
	Analyze(ctx context.Context, jpeg []byte) (entity.EmotionData, error)
}

// FrameProcessor kadrni modelga yuborishdan oldin tayyorlash
type FrameProcessor interface {
	Prepare(jpeg []byte) ([]byte, error)
}
