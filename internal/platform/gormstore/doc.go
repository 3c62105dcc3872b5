// Package gormstore implements the store interfaces on top of gorm.
//
// One connection URL selects the backend: sqlite://, sqlite://:memory: and
// file: URLs open an embedded SQLite database through mattn/go-sqlite3, while
// postgres:// and postgresql:// URLs open PostgreSQL through pgx. The schema
// is owned by goose migrations embedded per dialect; Migrate applies them.
//
// Cascading deletes are enforced by the schema's ON DELETE CASCADE foreign
// keys, so SQLite connections always run with foreign keys enabled.
package gormstore
