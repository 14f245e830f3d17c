// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered account on the billboard.
//
// WHY ID int64?
// The database assigns ids via INTEGER PRIMARY KEY AUTOINCREMENT, and SQLite
// rowids are 64-bit. Using int64 means LastInsertId() maps directly onto the
// field with no conversion.
//
// WHY Password HOLDS A HASH?
// The plaintext password never reaches this struct. The service layer hashes
// it before constructing a User, so everything downstream (repository, logs,
// JSON responses) only ever sees the digest. The column is capped at 60
// characters — wide enough for both the 32-char legacy digest and a 60-char
// bcrypt hash.
type User struct {
	ID               int64     `json:"id"                db:"id"`
	UserName         string    `json:"user_name"         db:"user_name"` // unique across all users
	Email            string    `json:"email"             db:"email"`     // unique across all users
	Password         string    `json:"password"          db:"password"`  // stored hash, never plaintext
	RegistrationTime time.Time `json:"registration_time" db:"registration_time"`
}
