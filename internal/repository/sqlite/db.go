package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewDB opens (creating if absent) the single-file SQLite database at
// path and ensures the schema exists. SQLite serializes writes at the
// file level; a single connection avoids SQLITE_BUSY churn between
// concurrent handlers.
func NewDB(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func initSchema(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password TEXT NOT NULL,
			phone TEXT DEFAULT '',
			dateOfBirth TEXT DEFAULT '',
			bloodGroup TEXT DEFAULT '',
			emergencyContactName TEXT DEFAULT '',
			emergencyContactPhone TEXT DEFAULT '',
			emergencyContactRelationship TEXT DEFAULT '',
			createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS doctors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			specialty TEXT NOT NULL,
			experience INTEGER DEFAULT 0,
			rating REAL DEFAULT 0,
			availableSlots TEXT DEFAULT '[]',
			image TEXT DEFAULT '',
			createdAt DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS appointments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			userId INTEGER NOT NULL,
			doctorName TEXT NOT NULL,
			specialty TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			duration INTEGER DEFAULT 60,
			status TEXT DEFAULT 'confirmed',
			notes TEXT DEFAULT '',
			createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (userId) REFERENCES users (id)
		)`,
		`CREATE TABLE IF NOT EXISTS wait_times (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			department TEXT NOT NULL,
			currentWait INTEGER NOT NULL,
			status TEXT NOT NULL,
			updatedAt DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS payments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			userId INTEGER NOT NULL,
			amount REAL NOT NULL,
			description TEXT NOT NULL,
			status TEXT DEFAULT 'pending',
			paymentMethod TEXT DEFAULT '',
			dueDate TEXT DEFAULT '',
			date TEXT DEFAULT '',
			createdAt DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (userId) REFERENCES users (id)
		)`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
