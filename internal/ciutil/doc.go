// Package ciutil locates the external database used by integration tests
// and detects CI environments.
//
// Integration tests run against PostgreSQL only when a test database URL is
// configured; otherwise they are skipped and the SQLite suite stands alone.
package ciutil
