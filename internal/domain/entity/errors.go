package entity

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOutOfStock           = errors.New("product is out of stock")
	ErrQuantityExceedsStock = errors.New("quantity exceeds available stock")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidSort          = errors.New("unknown sort order")
	ErrMissingAddress       = errors.New("shipping address is required")

	ErrInvalidFrame    = errors.New("frame is not a valid base64 jpeg")
	ErrRateLimited     = errors.New("rate limit exceeded, please try again later")
	ErrPaymentRequired = errors.New("AI credits exhausted, please add funds")
	ErrInvalidAPIKey   = errors.New("invalid or missing Gemini API key")
	ErrEmptyResponse   = errors.New("empty response from Gemini API")

	ErrAlertInProgress       = errors.New("email is already being sent")
	ErrGuardianNotConfigured = errors.New("guardian email not configured, set GUARDIAN_EMAIL")
	ErrNoEmailProvider       = errors.New("no email configuration found, set RESEND_API_KEY, SENDGRID_API_KEY or SMTP credentials")
	ErrMissingEmailFields    = errors.New("missing required fields: to, subject, body")
	ErrInvalidEmailHeader    = errors.New("to and subject must not contain line breaks")

	ErrUnauthorized = errors.New("unauthorized")
)
