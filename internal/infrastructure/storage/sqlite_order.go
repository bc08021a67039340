package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type sqliteOrderRepository struct {
	db *sql.DB
}

// NewSQLiteOrderRepository SQLite asosidagi buyurtmalar repository
func NewSQLiteOrderRepository(db *sql.DB) repository.OrderRepository {
	return &sqliteOrderRepository{db: db}
}

// SaveOrder buyurtmani saqlash
func (s *sqliteOrderRepository) SaveOrder(ctx context.Context, order entity.Order) error {
	lines, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("order lines encode: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (id, session_id, address, lines, total, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		order.ID, order.SessionID, order.Address, string(lines), order.Total, string(order.Status), order.CreatedAt)
	return err
}

// GetOrder ID bo'yicha buyurtma
func (s *sqliteOrderRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, session_id, address, lines, total, status, created_at FROM orders WHERE id = ?`, id)
	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", entity.ErrOrderNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListBySession sessiya buyurtmalari (yangilari birinchi)
func (s *sqliteOrderRepository) ListBySession(ctx context.Context, sessionID string) ([]entity.Order, error) {
	return s.list(ctx,
		`SELECT id, session_id, address, lines, total, status, created_at FROM orders WHERE session_id = ? ORDER BY created_at DESC`,
		sessionID)
}

// ListAll barcha buyurtmalar (admin eksporti uchun)
func (s *sqliteOrderRepository) ListAll(ctx context.Context) ([]entity.Order, error) {
	return s.list(ctx, `SELECT id, session_id, address, lines, total, status, created_at FROM orders ORDER BY created_at DESC`)
}

func (s *sqliteOrderRepository) list(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var (
		order  entity.Order
		lines  string
		status string
	)
	if err := row.Scan(&order.ID, &order.SessionID, &order.Address, &lines, &order.Total, &status, &order.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(lines), &order.Lines); err != nil {
		return nil, fmt.Errorf("order lines decode: %w", err)
	}
	order.Status = entity.OrderStatus(status)
	return &order, nil
}
