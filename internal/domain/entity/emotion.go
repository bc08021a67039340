package entity

import "strings"

// Emotion model qaytaradigan his-tuyg'u
type Emotion string

const (
	EmotionHappy    Emotion = "happy"
	EmotionNeutral  Emotion = "neutral"
	EmotionSad      Emotion = "sad"
	EmotionAngry    Emotion = "angry"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionDisgust  Emotion = "disgust"
)

// AllEmotions barcha qo'llab-quvvatlanadigan qiymatlar
var AllEmotions = []Emotion{
	EmotionHappy, EmotionNeutral, EmotionSad, EmotionAngry,
	EmotionFear, EmotionSurprise, EmotionDisgust,
}

// ParseEmotion matnni Emotion ga aylantirish. Noma'lum qiymat neutral bo'ladi.
func ParseEmotion(raw string) Emotion {
	e := Emotion(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range AllEmotions {
		if e == known {
			return e
		}
	}
	return EmotionNeutral
}

// EmotionData bitta kadr tahlili natijasi
type EmotionData struct {
	Age         *int    `json:"age"`
	Emotion     Emotion `json:"emotion"`
	Confidence  float64 `json:"confidence"`
	IsSmiling   bool    `json:"isSmiling"`
	IsEmergency bool    `json:"isEmergency"`
	NoFace      bool    `json:"noFace"`
	Error       string  `json:"error,omitempty"`
}

// DefaultEmotionData yuz topilmagan holat
func DefaultEmotionData() EmotionData {
	return EmotionData{
		Emotion:    EmotionNeutral,
		Confidence: 0,
		NoFace:     true,
	}
}

// Normalize emotion va confidence ni ruxsat etilgan oraliqqa keltirish
func (d EmotionData) Normalize() EmotionData {
	d.Emotion = ParseEmotion(string(d.Emotion))
	if d.Confidence < 0 {
		d.Confidence = 0
	}
	if d.Confidence > 100 {
		d.Confidence = 100
	}
	if d.Age != nil && *d.Age < 0 {
		d.Age = nil
	}
	return d
}
