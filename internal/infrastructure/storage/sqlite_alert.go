package storage

import (
	"context"
	"database/sql"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type sqliteAlertRepository struct {
	db *sql.DB
}

// NewSQLiteAlertRepository SQLite asosidagi alert tarixi
func NewSQLiteAlertRepository(db *sql.DB) repository.AlertRepository {
	return &sqliteAlertRepository{db: db}
}

// SaveAlert alert yozuvini saqlash
func (s *sqliteAlertRepository) SaveAlert(ctx context.Context, alert entity.AlertRecord) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO alerts (id, session_id, emotion, confidence, recipient, channel, success, error, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		alert.ID, alert.SessionID, string(alert.Emotion), alert.Confidence, alert.Recipient,
		alert.Channel, alert.Success, alert.Error, alert.CreatedAt)
	return err
}

// ListAlerts oxirgi alertlar
func (s *sqliteAlertRepository) ListAlerts(ctx context.Context, limit int) ([]entity.AlertRecord, error) {
	query := `SELECT id, session_id, emotion, confidence, recipient, channel, success, error, created_at FROM alerts ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []entity.AlertRecord{}
	for rows.Next() {
		var (
			a       entity.AlertRecord
			emotion string
		)
		if err := rows.Scan(&a.ID, &a.SessionID, &emotion, &a.Confidence, &a.Recipient, &a.Channel, &a.Success, &a.Error, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Emotion = entity.Emotion(emotion)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
