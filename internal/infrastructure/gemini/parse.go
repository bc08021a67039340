package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

var jsonBlock = regexp.MustCompile(`(?s)\{.*\}`)

type rawEmotion struct {
	Age         *float64 `json:"age"`
	Emotion     *string  `json:"emotion"`
	Confidence  *float64 `json:"confidence"`
	IsSmiling   *bool    `json:"isSmiling"`
	IsEmergency *bool    `json:"isEmergency"`
	NoFace      *bool    `json:"noFace"`
}

// ParseEmotionResponse model matnidan EmotionData ni ajratib olish.
// Avval to'g'ridan-to'g'ri JSON, keyin matn ichidagi birinchi {...} blok sinab ko'riladi.
// Muvaffaqiyatsiz bo'lsa, Error to'ldirilgan standart natija qaytadi.
func ParseEmotionResponse(content string) entity.EmotionData {
	raw, err := decodeEmotion(content)
	if err != nil {
		data := entity.DefaultEmotionData()
		data.Error = fmt.Sprintf("Failed to parse response: %v", err)
		return data
	}

	data := entity.EmotionData{
		Emotion: entity.Emotion(*raw.Emotion),
	}
	if raw.Age != nil {
		age := int(math.Round(*raw.Age))
		data.Age = &age
	}
	if raw.Confidence != nil {
		data.Confidence = *raw.Confidence
	}
	if raw.IsSmiling != nil {
		data.IsSmiling = *raw.IsSmiling
	}
	if raw.IsEmergency != nil {
		data.IsEmergency = *raw.IsEmergency
	}
	if raw.NoFace != nil {
		data.NoFace = *raw.NoFace
	}
	return data.Normalize()
}

func decodeEmotion(content string) (*rawEmotion, error) {
	content = strings.TrimSpace(content)

	var raw rawEmotion
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		block := jsonBlock.FindString(content)
		if block == "" {
			return nil, errors.New("no JSON found in response")
		}
		raw = rawEmotion{}
		if err := json.Unmarshal([]byte(block), &raw); err != nil {
			return nil, err
		}
	}

	if raw.Emotion == nil || strings.TrimSpace(*raw.Emotion) == "" {
		return nil, errors.New("invalid response format: missing emotion")
	}
	return &raw, nil
}
