//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type FrameProcessor struct {
	MaxSide     int
	JPEGQuality int
}

// NewFrameProcessor katta kadrlarni kichraytiradigan protsessor yaratadi.
func NewFrameProcessor(maxSide int) *FrameProcessor {
	if maxSide <= 0 {
		maxSide = DefaultMaxSide
	}
	return &FrameProcessor{
		MaxSide:     maxSide,
		JPEGQuality: 80,
	}
}

// Prepare kadrni MaxSide gacha kichraytirib qayta JPEG ga kodlaydi.
func (p *FrameProcessor) Prepare(jpeg []byte) ([]byte, error) {
	mat, err := gocv.IMDecode(jpeg, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode frame: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, errors.New("empty frame")
	}

	// Kichik kadr o'zgarishsiz ketadi
	if mat.Cols() <= p.MaxSide && mat.Rows() <= p.MaxSide {
		return jpeg, nil
	}

	scale := float64(p.MaxSide) / float64(maxInt(mat.Cols(), mat.Rows()))
	newW := int(float64(mat.Cols()) * scale)
	newH := int(float64(mat.Rows()) * scale)

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)

	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, resized, []int{gocv.IMWriteJpegQuality, p.JPEGQuality})
	if err != nil {
		return nil, fmt.Errorf("encode frame: %w", err)
	}
	defer buf.Close()

	out := make([]byte, len(buf.GetBytes()))
	copy(out, buf.GetBytes())
	return out, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

var _ repository.FrameProcessor = (*FrameProcessor)(nil)
