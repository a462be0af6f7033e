package format

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"wfst/internal/fst"
)

// SymbolCache persists named SymbolTables in a SQLite database, so a long
// lived symbol vocabulary (an alphabet shared by many compiles) doesn't
// need to be redeclared from a text file every run.
type SymbolCache struct {
	db *sql.DB
}

// OpenSymbolCache opens (creating if necessary) a SQLite-backed cache at
// path, driven through modernc.org/sqlite's pure-Go driver.
func OpenSymbolCache(path string) (*SymbolCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("format: opening symbol cache: %w", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS symbols (
		table_name TEXT NOT NULL,
		symbol     TEXT NOT NULL,
		label      INTEGER NOT NULL,
		PRIMARY KEY (table_name, symbol)
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("format: initializing symbol cache schema: %w", err)
	}
	return &SymbolCache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *SymbolCache) Close() error { return c.db.Close() }

// Save persists every symbol currently in st under tableName, replacing
// whatever was previously saved under that name.
func (c *SymbolCache) Save(tableName string, st *SymbolTable) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("format: starting symbol cache transaction: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM symbols WHERE table_name = ?`, tableName); err != nil {
		tx.Rollback()
		return fmt.Errorf("format: clearing prior symbol cache entry: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO symbols (table_name, symbol, label) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("format: preparing symbol cache insert: %w", err)
	}
	defer stmt.Close()
	for lbl, sym := range st.Slice() {
		if sym == "" {
			continue
		}
		if _, err := stmt.Exec(tableName, sym, lbl); err != nil {
			tx.Rollback()
			return fmt.Errorf("format: writing symbol cache entry: %w", err)
		}
	}
	return tx.Commit()
}

// Load rebuilds the SymbolTable previously saved under tableName. A
// tableName with no saved entries yields an empty table, not an error.
func (c *SymbolCache) Load(tableName string) (*SymbolTable, error) {
	rows, err := c.db.Query(`SELECT symbol, label FROM symbols WHERE table_name = ? ORDER BY label`, tableName)
	if err != nil {
		return nil, fmt.Errorf("format: reading symbol cache: %w", err)
	}
	defer rows.Close()

	st := NewSymbolTable()
	for rows.Next() {
		var sym string
		var lbl int64
		if err := rows.Scan(&sym, &lbl); err != nil {
			return nil, fmt.Errorf("format: scanning symbol cache row: %w", err)
		}
		label := fst.Label(lbl)
		st.toLabel[sym] = label
		st.toSymbol[label] = sym
		if label >= st.next {
			st.next = label + 1
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("format: iterating symbol cache rows: %w", err)
	}
	return st, nil
}
