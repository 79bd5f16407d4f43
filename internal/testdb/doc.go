//go:build integration

// Package testdb provides helpers for tests that run against a real
// PostgreSQL database.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can run in parallel without cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        categories := postgres.NewPostgresCategoryStore(tx)
//	        // ...
//	    })
//	}
//
// GetTestDBWithT skips the test when DATABASE_URL (or
// PACIFICAWAY_TEST_DB_URL) is not set. The base tables are migrated with the
// embedded goose migrations and the catalog tables are brought up through
// the schema routine, once per connection.
package testdb
