package models

import "github.com/google/uuid"

// User is a row in the users table. The password column stores the
// bcrypt hash, not the plaintext; the column name is historical.
type User struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
}
