package database

import (
	"database/sql"
	stdlog "log"

	"github.com/username/taxclarity/backend/src/logger"
	_ "modernc.org/sqlite"
)

var DB *sql.DB

func InitDB(databasePath string) {
	db, err := sql.Open("sqlite", databasePath)
	if err != nil {
		stdlog.Fatalf("failed to open database at %s: %v", databasePath, err)
	}

	DB = db

	if logger.L != nil {
		logger.L.Info("Checking database migrations", "databasePath", databasePath)
	} else {
		stdlog.Println("Checking database migrations for:", databasePath)
	}
	migrateUserTable()
	migrateCalculationsTable()

	createTableStatement := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		auth_provider TEXT DEFAULT 'local',
		is_email_verified BOOLEAN DEFAULT FALSE,
		email_verification_token TEXT,
		email_verification_token_expires_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		token TEXT NOT NULL,
		refresh_token TEXT NOT NULL,
		user_agent TEXT,
		client_ip TEXT,
		is_blocked BOOLEAN DEFAULT FALSE,
		expires_at TIMESTAMP,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);

	CREATE TABLE IF NOT EXISTS tax_calculations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		tax_year INTEGER NOT NULL,
		filing_status TEXT NOT NULL,
		total_income REAL,
		agi REAL,
		taxable_income REAL,
		total_tax REAL,
		refund_or_owed REAL,
		input_json TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY(user_id) REFERENCES users(id)
	);
	`

	_, err = DB.Exec(createTableStatement)
	if err != nil {
		if logger.L != nil {
			logger.L.Error("failed to create tables", "error", err)
		}
		stdlog.Fatalf("failed to create tables: %v", err)
	}
	if logger.L != nil {
		logger.L.Info("Database tables ensured/created.")
	} else {
		stdlog.Println("Database tables ensured/created.")
	}
}

func tableColumns(tableName string) (map[string]bool, bool) {
	var name string
	err := DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", tableName).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			if logger.L != nil {
				logger.L.Info("table does not exist, no migration needed as table will be created", "table", tableName)
			} else {
				stdlog.Printf("table %q does not exist, no migration needed as table will be created.", tableName)
			}
			return nil, false
		}
		if logger.L != nil {
			logger.L.Error("Error checking for table", "table", tableName, "error", err)
		} else {
			stdlog.Printf("Error checking for table %q: %v", tableName, err)
		}
		return nil, false
	}

	rows, err := DB.Query("PRAGMA table_info(" + tableName + ")")
	if err != nil {
		if logger.L != nil {
			logger.L.Error("Error querying table schema", "table", tableName, "error", err)
		} else {
			stdlog.Printf("Error querying table schema for %q: %v", tableName, err)
		}
		return nil, false
	}
	defer rows.Close()

	columnExists := make(map[string]bool)
	for rows.Next() {
		var cid, pk int
		var colName, dataType string
		var notnullVal int
		var dfltValue interface{}

		if err := rows.Scan(&cid, &colName, &dataType, &notnullVal, &dfltValue, &pk); err != nil {
			if logger.L != nil {
				logger.L.Error("Error scanning column info", "table", tableName, "error", err)
			} else {
				stdlog.Printf("Error scanning column info for %q: %v", tableName, err)
			}
			return nil, false
		}
		columnExists[colName] = true
	}
	if err = rows.Err(); err != nil {
		if logger.L != nil {
			logger.L.Error("Error iterating over column info", "table", tableName, "error", err)
		} else {
			stdlog.Printf("Error iterating over column info for %q: %v", tableName, err)
		}
		return nil, false
	}
	return columnExists, true
}

func addColumnIfMissing(columnExists map[string]bool, tableName, columnName, definition string) {
	if _, ok := columnExists[columnName]; ok {
		return
	}
	_, err := DB.Exec("ALTER TABLE " + tableName + " ADD COLUMN " + columnName + " " + definition)
	if err != nil {
		logger.L.Error("Error adding column", "table", tableName, "column", columnName, "error", err)
	} else {
		logger.L.Info("Added column", "table", tableName, "column", columnName)
	}
}

func migrateUserTable() {
	columnExists, ok := tableColumns("users")
	if !ok {
		return
	}

	addColumnIfMissing(columnExists, "users", "email", "TEXT NOT NULL DEFAULT ''")
	addColumnIfMissing(columnExists, "users", "is_email_verified", "BOOLEAN DEFAULT FALSE")
	addColumnIfMissing(columnExists, "users", "email_verification_token", "TEXT")
	addColumnIfMissing(columnExists, "users", "email_verification_token_expires_at", "TIMESTAMP")
	addColumnIfMissing(columnExists, "users", "auth_provider", "TEXT DEFAULT 'local'")
	addColumnIfMissing(columnExists, "users", "created_at", "TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
	addColumnIfMissing(columnExists, "users", "updated_at", "TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
}

func migrateCalculationsTable() {
	columnExists, ok := tableColumns("tax_calculations")
	if !ok {
		return
	}

	// tax_year arrived after the first schema version; older rows are all 2024.
	if _, exists := columnExists["tax_year"]; !exists {
		_, err := DB.Exec("ALTER TABLE tax_calculations ADD COLUMN tax_year INTEGER NOT NULL DEFAULT 2024")
		if err != nil {
			logger.L.Error("Error adding column", "table", "tax_calculations", "column", "tax_year", "error", err)
		} else {
			logger.L.Info("Added column", "table", "tax_calculations", "column", "tax_year")
		}
	}
	addColumnIfMissing(columnExists, "tax_calculations", "refund_or_owed", "REAL")
}
