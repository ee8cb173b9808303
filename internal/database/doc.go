// Package database owns the GORM connection and schema migration. The
// per-domain repositories live in subpackages (users, items, pots, logs) and
// receive the shared *gorm.DB.
package database
