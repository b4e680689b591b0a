// Package database provides the preference storage for ghexplorer.
//
// The [Store] interface is a small key-value contract: the application keeps
// a single slot, the theme, but the store does not know that.
//
// The backend is selected at build time using build tags:
//   - Default: BoltDB ([NewBolt])
//   - With -tags sqlite: SQLite via modernc.org/sqlite
//
// [Memory] is an in-process fallback used when the database file is locked
// by another ghexplorer instance, and by tests.
package database
