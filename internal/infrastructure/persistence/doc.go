// Package persistence provides the GORM-backed key set repository and the database
// connection helpers for SQLite and PostgreSQL.
package persistence
