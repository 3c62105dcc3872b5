// Package testdb provides database helpers for tests.
//
// Open returns a freshly migrated in-memory SQLite database per call, so
// tests never share rows. WithTx runs a function inside a transaction that
// is always rolled back, for tests that only need isolation within one
// database. OpenPostgres returns a migrated connection to the PostgreSQL database named
// by WORKBOARD_TEST_DB_URL and skips the test when none is configured.
//
//	func TestBoardStore(t *testing.T) {
//	    db := testdb.Open(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *gorm.DB) {
//	        boards := gormstore.NewBoardStore(tx, nil)
//	        ...
//	    })
//	}
package testdb
