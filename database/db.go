package database

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

var DB *sql.DB

func InitDB() error {
	var dbPath string
	if os.Getenv("TEST_DB") == "1" {
		// We're running tests, use in-memory database
		dbPath = ":memory:"
	} else if p := os.Getenv("DB_PATH"); p != "" {
		dbPath = p
	} else {
		// Local development
		dbPath = "./database.db"
	}

	var err error
	// Add connection parameters to better handle concurrency
	dsn := dbPath + "?_journal=WAL&_timeout=10000&_busy_timeout=10000"
	DB, err = sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}

	// Configure database connection
	if dbPath == ":memory:" {
		// An in-memory database exists per connection, so the pool must
		// stay on a single one.
		DB.SetMaxOpenConns(1)
	} else {
		DB.SetMaxOpenConns(5)
		DB.SetMaxIdleConns(5)
		DB.SetConnMaxLifetime(time.Minute * 5)
	}

	// Execute PRAGMA statements for better concurrency handling
	_, err = DB.Exec("PRAGMA journal_mode=WAL;")
	if err != nil {
		return err
	}

	_, err = DB.Exec("PRAGMA busy_timeout=5000;")
	if err != nil {
		return err
	}

	// Test the connection
	err = DB.Ping()
	if err != nil {
		return err
	}

	return createSchema()
}

func createSchema() error {
	// Create users table
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		monthly_budget REAL NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`
	_, err := DB.Exec(createUsersTable)
	if err != nil {
		return err
	}

	// Expenses and incomes share the same shape; they live in separate
	// tables because their category sets differ.
	for _, table := range []string{"expenses", "incomes"} {
		createRecordsTable := `
		CREATE TABLE IF NOT EXISTS ` + table + ` (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			amount REAL NOT NULL,
			category TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			date DATETIME NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
		`
		_, err = DB.Exec(createRecordsTable)
		if err != nil {
			return err
		}

		// Index for faster queries by user and date
		_, err = DB.Exec("CREATE INDEX IF NOT EXISTS idx_" + table + "_user_date ON " + table + " (user_id, date DESC);")
		if err != nil {
			return err
		}
	}

	return nil
}
