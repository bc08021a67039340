package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCart_Recalculate(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Quantity: 2, Product: &Product{Price: 100}},
		{ProductID: "b", Quantity: 1, Product: &Product{Price: 49.5}},
		{ProductID: "c", Quantity: 3},
	}}
	cart.Recalculate()

	require.Equal(t, 6, cart.TotalItems)
	require.InDelta(t, 249.5, cart.Subtotal, 0.001)
}

func TestStockStatusOf(t *testing.T) {
	require.Equal(t, StockOut, StockStatusOf(Product{Stock: 0}))
	require.Equal(t, StockLow, StockStatusOf(Product{Stock: 1}))
	require.Equal(t, StockLow, StockStatusOf(Product{Stock: LowStockLimit}))
	require.Equal(t, StockIn, StockStatusOf(Product{Stock: LowStockLimit + 1}))
}

func TestParseEmotion(t *testing.T) {
	require.Equal(t, EmotionFear, ParseEmotion(" FEAR "))
	require.Equal(t, EmotionHappy, ParseEmotion("happy"))
	require.Equal(t, EmotionNeutral, ParseEmotion("bored"))
	require.Equal(t, EmotionNeutral, ParseEmotion(""))
}

func TestEmotionData_Normalize(t *testing.T) {
	age := -3
	got := EmotionData{Emotion: "Angry", Confidence: 140, Age: &age}.Normalize()
	require.Equal(t, EmotionAngry, got.Emotion)
	require.Equal(t, float64(100), got.Confidence)
	require.Nil(t, got.Age)

	got = EmotionData{Emotion: "???", Confidence: -5}.Normalize()
	require.Equal(t, EmotionNeutral, got.Emotion)
	require.Zero(t, got.Confidence)
}

func TestDefaultEmotionData(t *testing.T) {
	d := DefaultEmotionData()
	require.Equal(t, EmotionNeutral, d.Emotion)
	require.True(t, d.NoFace)
	require.Zero(t, d.Confidence)
}

func TestEmailMessage_Validate(t *testing.T) {
	require.NoError(t, EmailMessage{To: "a@b.c", Subject: "s", Body: "b"}.Validate())
	require.ErrorIs(t, EmailMessage{To: " ", Subject: "s", Body: "b"}.Validate(), ErrMissingEmailFields)
	require.ErrorIs(t, EmailMessage{To: "a@b.c", Body: "b"}.Validate(), ErrMissingEmailFields)
}

func TestEmailMessage_ValidateRejectsHeaderBreaks(t *testing.T) {
	msg := EmailMessage{To: "a@b.c", Subject: "hi\r\nBcc: victim@evil.com", Body: "b"}
	require.ErrorIs(t, msg.Validate(), ErrInvalidEmailHeader)

	msg = EmailMessage{To: "a@b.c\nBcc: victim@evil.com", Subject: "hi", Body: "b"}
	require.ErrorIs(t, msg.Validate(), ErrInvalidEmailHeader)

	// Body ichidagi qator ko'chishi odatiy
	require.NoError(t, EmailMessage{To: "a@b.c", Subject: "hi", Body: "line one\r\nline two"}.Validate())
}
