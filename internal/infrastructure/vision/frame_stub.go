//go:build !gocv
// +build !gocv

package vision

import "github.com/yourusername/shopx-sentinel/internal/domain/repository"

type FrameProcessor struct {
	MaxSide int
}

// NewFrameProcessor OpenCV siz sborka uchun: kadr o'zgarishsiz uzatiladi.
func NewFrameProcessor(maxSide int) *FrameProcessor {
	return &FrameProcessor{MaxSide: maxSide}
}

// Prepare kadrni o'zgartirmasdan qaytaradi.
func (p *FrameProcessor) Prepare(jpeg []byte) ([]byte, error) {
	return jpeg, nil
}

var _ repository.FrameProcessor = (*FrameProcessor)(nil)
