package gemini

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
)

type fakeGenerator struct {
	text  string
	err   error
	parts []genai.Part
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(f.text)}},
		}},
	}, nil
}

func TestEmotionClient_Analyze(t *testing.T) {
	gen := &fakeGenerator{text: `{"emotion": "sad", "confidence": 64, "noFace": false}`}
	client := newEmotionClient(gen)

	data, err := client.Analyze(context.Background(), []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	require.Equal(t, entity.EmotionSad, data.Emotion)
	require.Equal(t, 64.0, data.Confidence)

	require.Len(t, gen.parts, 2)
	blob, ok := gen.parts[1].(genai.Blob)
	require.True(t, ok)
	require.Equal(t, "image/jpeg", blob.MIMEType)
}

func TestEmotionClient_EmptyContent(t *testing.T) {
	client := newEmotionClient(&fakeGenerator{text: "  "})

	_, err := client.Analyze(context.Background(), []byte{1})
	require.ErrorIs(t, err, entity.ErrEmptyResponse)
}

func TestClassifyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"http 429", &googleapi.Error{Code: http.StatusTooManyRequests}, entity.ErrRateLimited},
		{"http 402", &googleapi.Error{Code: http.StatusPaymentRequired}, entity.ErrPaymentRequired},
		{"http 403", &googleapi.Error{Code: http.StatusForbidden}, entity.ErrInvalidAPIKey},
		{"grpc exhausted", status.Error(codes.ResourceExhausted, "quota"), entity.ErrRateLimited},
		{"grpc unauthenticated", status.Error(codes.Unauthenticated, "key"), entity.ErrInvalidAPIKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, classifyError(tc.err), tc.want)
		})
	}

	other := classifyError(errors.New("boom"))
	require.False(t, errors.Is(other, entity.ErrRateLimited))
	require.Contains(t, other.Error(), "boom")
}
