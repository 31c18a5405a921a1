package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "bigfive_user")
	password := getEnv("DB_PASSWORD", "bigfive_password")
	dbname := getEnv("DB_NAME", "bigfive_cat")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id                TEXT PRIMARY KEY,
		name              VARCHAR(255) NOT NULL,
		gender            VARCHAR(50),
		birth_year        INT,
		education_level   VARCHAR(100),
		marital_status    VARCHAR(50),
		status            VARCHAR(20) NOT NULL DEFAULT 'active',
		current_dimension VARCHAR(30) NOT NULL,
		total_answered    INT NOT NULL DEFAULT 0,
		state             JSONB NOT NULL,
		created_at        TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		completed_at      TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_status ON sessions(status);
	CREATE INDEX IF NOT EXISTS idx_sessions_created ON sessions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_sessions_name ON sessions(name);

	CREATE TABLE IF NOT EXISTS item_cache (
		cache_key  VARCHAR(255) PRIMARY KEY,
		items      JSONB NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	// Idempotent for databases created before demographics were extracted
	// into columns.
	alterStatements := []string{
		`ALTER TABLE sessions ADD COLUMN IF NOT EXISTS gender VARCHAR(50)`,
		`ALTER TABLE sessions ADD COLUMN IF NOT EXISTS birth_year INT`,
		`ALTER TABLE sessions ADD COLUMN IF NOT EXISTS education_level VARCHAR(100)`,
		`ALTER TABLE sessions ADD COLUMN IF NOT EXISTS marital_status VARCHAR(50)`,
	}
	for _, stmt := range alterStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("alter table failed: %w", err)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
