// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to record key pair and signature metadata
// in SQLite or PostgreSQL. The key material itself never enters the
// database; it stays in the key files written by the connector package.
package persistence
