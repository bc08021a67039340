package gemini

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultModel tahlil uchun standart model
const DefaultModel = "gemini-1.5-flash"

const emotionPrompt = `Analyze the facial expression in this image and return ONLY a valid JSON object with these exact fields:

{
  "age": <estimated age as number or null>,
  "emotion": "<one of: happy, neutral, sad, angry, fear, surprise, disgust>",
  "confidence": <confidence level 0-100>,
  "isSmiling": <true or false>,
  "isEmergency": <true or false>,
  "noFace": <true if no face detected, false otherwise>
}

Important:
- Return ONLY the JSON object, no other text
- The emotion should be the most prominent emotion visible
- Confidence should reflect how certain you are about the emotion (0-100)
- If the person appears happy or smiling, set emotion to "happy" and isSmiling to true
- Only set noFace to true if no human face is visible in the image

Example response:
{"age": 30, "emotion": "happy", "confidence": 90, "isSmiling": true, "isEmergency": false, "noFace": false}`

// generator *genai.GenerativeModel ning bizga kerakli qismi
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type emotionClient struct {
	client *genai.Client
	model  generator
	sem    chan struct{}
	mu     sync.Mutex
	last   time.Time
	delay  time.Duration
}

// NewEmotionClient yangi Gemini vision client yaratish
func NewEmotionClient(ctx context.Context, apiKey, modelName string) (repository.EmotionAnalyzer, func() error, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = DefaultModel
	}
	model := client.GenerativeModel(modelName)

	// Qisqa va barqaror JSON javob uchun
	model.SetTemperature(0.4)
	model.SetMaxOutputTokens(150)

	c := newEmotionClient(model)
	c.client = client
	return c, client.Close, nil
}

func newEmotionClient(model generator) *emotionClient {
	return &emotionClient{
		model: model,
		sem:   make(chan struct{}, 3), // bir vaqtda 3 ta so'rovdan oshirma
		delay: 350 * time.Millisecond, // minimal interval
	}
}

// Analyze JPEG kadrni modelga yuborish va natijani olish
func (g *emotionClient) Analyze(ctx context.Context, jpeg []byte) (entity.EmotionData, error) {
	release, err := g.acquire(ctx)
	if err != nil {
		return entity.EmotionData{}, err
	}
	defer release()

	resp, err := g.model.GenerateContent(ctx, genai.Text(emotionPrompt), genai.ImageData("jpeg", jpeg))
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return entity.EmotionData{}, classifyError(err)
	}

	if len(resp.Candidates) == 0 {
		return entity.EmotionData{}, fmt.Errorf("no response candidates")
	}

	content := extractText(resp)
	if strings.TrimSpace(content) == "" {
		return entity.EmotionData{}, entity.ErrEmptyResponse
	}

	data := ParseEmotionResponse(content)
	if data.Error != "" {
		log.Printf("⚠️ Failed to parse AI response: %q", content)
	}
	return data, nil
}

// classifyError API xatolarini domen xatolariga aylantirish
func classifyError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %v", entity.ErrRateLimited, err)
		case http.StatusPaymentRequired:
			return fmt.Errorf("%w: %v", entity.ErrPaymentRequired, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %v", entity.ErrInvalidAPIKey, err)
		}
	}

	switch status.Code(err) {
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %v", entity.ErrRateLimited, err)
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %v", entity.ErrInvalidAPIKey, err)
	}

	return fmt.Errorf("gemini request failed: %w", err)
}

// extractText birinchi nomzodning matn qismlarini yig'ish
func extractText(resp *genai.GenerateContentResponse) string {
	var result strings.Builder
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			result.WriteString(string(text))
		}
	}
	return result.String()
}

func (g *emotionClient) acquire(ctx context.Context) (func(), error) {
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now()
	if !g.last.IsZero() {
		if sleep := g.delay - now.Sub(g.last); sleep > 0 {
			time.Sleep(sleep)
			now = time.Now()
		}
	}
	g.last = now

	return func() {
		<-g.sem
	}, nil
}
