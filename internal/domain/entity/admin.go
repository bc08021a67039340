package entity

import "time"

// AdminSession admin sessiya (JWT ID bo'yicha)
type AdminSession struct {
	ID           string
	IsAdmin      bool
	LoginTime    time.Time
	LastActivity time.Time
}

// AdminAction admin harakatlari
type AdminAction struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Action    string    `json:"action"` // "login", "logout", "upload_catalog", "export_orders"
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}
