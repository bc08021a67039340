package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/yourusername/shopx-sentinel/internal/domain/entity"
	"github.com/yourusername/shopx-sentinel/internal/domain/repository"
)

type sqliteCartRepository struct {
	db *sql.DB
}

// NewSQLiteCartRepository SQLite asosidagi savat repository
func NewSQLiteCartRepository(db *sql.DB) repository.CartRepository {
	return &sqliteCartRepository{db: db}
}

// GetItems savat qatorlarini olish
func (s *sqliteCartRepository) GetItems(ctx context.Context, sessionID string) ([]entity.CartItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id, quantity, added_at FROM cart_items WHERE session_id = ? ORDER BY added_at, product_id`,
		sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []entity.CartItem{}
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetQuantity qator sonini o'rnatish (upsert, added_at saqlanadi)
func (s *sqliteCartRepository) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO cart_items (session_id, product_id, quantity, added_at) VALUES (?, ?, ?, ?)
ON CONFLICT (session_id, product_id) DO UPDATE SET quantity = excluded.quantity`,
		sessionID, productID, quantity, time.Now())
	return err
}

// RemoveItem qatorni o'chirish
func (s *sqliteCartRepository) RemoveItem(ctx context.Context, sessionID, productID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = ? AND product_id = ?`, sessionID, productID)
	return err
}

// Clear savatni tozalash
func (s *sqliteCartRepository) Clear(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = ?`, sessionID)
	return err
}

type sqliteWishlistRepository struct {
	db *sql.DB
}

// NewSQLiteWishlistRepository SQLite asosidagi istaklar ro'yxati
func NewSQLiteWishlistRepository(db *sql.DB) repository.WishlistRepository {
	return &sqliteWishlistRepository{db: db}
}

func (s *sqliteWishlistRepository) Add(ctx context.Context, sessionID, productID string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO wishlist_items (session_id, product_id, added_at) VALUES (?, ?, ?)`,
		sessionID, productID, time.Now())
	return err
}

func (s *sqliteWishlistRepository) Remove(ctx context.Context, sessionID, productID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM wishlist_items WHERE session_id = ? AND product_id = ?`, sessionID, productID)
	return err
}

func (s *sqliteWishlistRepository) Contains(ctx context.Context, sessionID, productID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM wishlist_items WHERE session_id = ? AND product_id = ?`,
		sessionID, productID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *sqliteWishlistRepository) List(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT product_id FROM wishlist_items WHERE session_id = ? ORDER BY added_at, product_id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
