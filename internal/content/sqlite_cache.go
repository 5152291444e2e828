package content

import (
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// SQLiteCache persists the blobId -> hash memo across process runs, at
// <workdir>/.mvcs/contents/.hashcache.db. It uses ncruces/go-sqlite3, a
// pure-Go (WASM-backed) driver, so the module needs no cgo toolchain.
type SQLiteCache struct {
	db *sql.DB
}

// NewSQLiteCache opens (creating if needed) the hash cache database at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open hash cache %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blob_hash (
		blob_id TEXT PRIMARY KEY,
		hash    TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init hash cache schema: %w", err)
	}
	return &SQLiteCache{db: db}, nil
}

// Get returns the cached hash for blobID, if any.
func (c *SQLiteCache) Get(blobID string) (string, bool) {
	var hash string
	err := c.db.QueryRow(`SELECT hash FROM blob_hash WHERE blob_id = ?`, blobID).Scan(&hash)
	if err != nil {
		return "", false
	}
	return hash, true
}

// Set stores blobID's hash, overwriting any prior value.
func (c *SQLiteCache) Set(blobID, hash string) {
	_, _ = c.db.Exec(`INSERT INTO blob_hash (blob_id, hash) VALUES (?, ?)
		ON CONFLICT(blob_id) DO UPDATE SET hash = excluded.hash`, blobID, hash)
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error { return c.db.Close() }
