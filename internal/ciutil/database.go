package ciutil

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/phrazzld/workboard-api/internal/redact"
)

const (
	// StandardCIUser is the standard username used in CI environments
	StandardCIUser = "postgres"

	// StandardCIPassword is the standard password used in CI environments
	StandardCIPassword = "postgres"

	// StandardCIPort is the standard port used in CI environments
	StandardCIPort = "5432"

	// StandardCIDatabase is the standard database name used in CI environments
	StandardCIDatabase = "workboard_test"

	// StandardCIOptions contains standard connection options for CI environments
	StandardCIOptions = "sslmode=disable"
)

// TestDatabaseURL returns the PostgreSQL URL integration tests should use,
// or "" when none is configured. WORKBOARD_TEST_DB_URL wins over
// DATABASE_URL; non-PostgreSQL URLs are ignored. In CI the URL is
// standardized to the postgres:postgres service credentials.
func TestDatabaseURL(logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}

	var dbURL, source string
	for _, envVar := range []string{EnvTestDBURL, EnvDatabaseURL} {
		if val := strings.TrimSpace(os.Getenv(envVar)); val != "" {
			dbURL, source = val, envVar
			break
		}
	}
	if dbURL == "" {
		return ""
	}
	if !isPostgresURL(dbURL) {
		logger.Debug("ignoring non-postgres test database URL", "var", source)
		return ""
	}

	if IsCI() {
		standardized, err := standardizeDatabaseURL(dbURL)
		if err != nil {
			logger.Warn("failed to standardize database URL",
				"error", err,
				"url", redact.URL(dbURL))
			return dbURL
		}
		dbURL = standardized
	}

	logger.Info("using external test database", "var", source, "url", redact.URL(dbURL))
	return dbURL
}

func isPostgresURL(raw string) bool {
	return strings.HasPrefix(raw, "postgres://") || strings.HasPrefix(raw, "postgresql://")
}

// standardizeDatabaseURL replaces the credentials with the CI defaults and
// fills in a missing port, database name and options for local hosts.
func standardizeDatabaseURL(dbURL string) (string, error) {
	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse database URL: %w", err)
	}

	standardized := *parsed
	standardized.User = url.UserPassword(StandardCIUser, StandardCIPassword)

	host := parsed.Hostname()
	if (host == "" || host == "localhost" || host == "127.0.0.1") && parsed.Port() == "" {
		if host == "" {
			host = "localhost"
		}
		standardized.Host = host + ":" + StandardCIPort
	}
	if strings.TrimPrefix(parsed.Path, "/") == "" {
		standardized.Path = "/" + StandardCIDatabase
	}
	if parsed.RawQuery == "" {
		standardized.RawQuery = StandardCIOptions
	}

	return standardized.String(), nil
}
