package storage

import (
	"net/url"
	"strings"

	"github.com/ryancast1/reservations/internal/storage/postgres"
	"github.com/ryancast1/reservations/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed Provider rooted at path.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(path)
}

// NewPostgresStore creates a PostgreSQL-backed Provider for the given
// connection string.
func NewPostgresStore(connStr string) Provider {
	return postgres.New(connStr)
}

// IsPostgresConnString reports whether s looks like a PostgreSQL connection
// string rather than a filesystem path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a PostgreSQL connection string
// carries a password. Credentials belong in the environment, .pgpass, or the
// OS keyring, never in the string itself.
func HasEmbeddedCredentials(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			return true
		}
	}
	// DSN-style space-separated key=value pairs
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}
