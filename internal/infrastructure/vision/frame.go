package vision

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

// DefaultMaxSide kadrning eng katta tomoni (piksel)
const DefaultMaxSide = 640

var jpegMagic = []byte{0xff, 0xd8, 0xff}

// DecodeFrame base64 (yoki data: URL) dan JPEG baytlarini olish
func DecodeFrame(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, "data:") {
		// data:image/jpeg;base64,....
		idx := strings.Index(encoded, ",")
		if idx < 0 {
			return nil, fmt.Errorf("%w: malformed data url", entity.ErrInvalidFrame)
		}
		encoded = encoded[idx+1:]
	}
	if encoded == "" {
		return nil, fmt.Errorf("%w: no image data provided", entity.ErrInvalidFrame)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// ba'zi brauzerlar padding siz yuboradi
		data, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidFrame, err)
		}
	}

	if !bytes.HasPrefix(data, jpegMagic) {
		return nil, fmt.Errorf("%w: not a jpeg image", entity.ErrInvalidFrame)
	}
	return data, nil
}
