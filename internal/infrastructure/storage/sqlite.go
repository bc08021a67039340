package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// OpenShopDB sqlite faylini ochish va sxemani yaratish.
// Bitta fayl savat, istaklar, buyurtmalar va alertlar uchun ishlatiladi.
func OpenShopDB(dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("db path bo'sh bo'lmasligi kerak")
	}

	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("db papkasini yaratib bo'lmadi: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("sqlite ochilmadi: %w", err)
	}
	// sqlite bitta yozuvchi bilan yaxshi ishlaydi
	db.SetMaxOpenConns(1)

	if err := createShopSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createShopSchema(db *sql.DB) error {
	const schema = `
CREATE TABLE IF NOT EXISTS cart_items (
	session_id TEXT NOT NULL,
	product_id TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	added_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, product_id)
);
CREATE TABLE IF NOT EXISTS wishlist_items (
	session_id TEXT NOT NULL,
	product_id TEXT NOT NULL,
	added_at TIMESTAMP NOT NULL,
	PRIMARY KEY (session_id, product_id)
);
CREATE TABLE IF NOT EXISTS orders (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	address TEXT,
	lines TEXT NOT NULL,
	total REAL NOT NULL,
	status TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_session ON orders (session_id, created_at);
CREATE TABLE IF NOT EXISTS alerts (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	emotion TEXT,
	confidence REAL,
	recipient TEXT,
	channel TEXT,
	success INTEGER NOT NULL,
	error TEXT,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts (created_at);
`
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("schema yaratib bo'lmadi: %w", err)
	}
	return nil
}
