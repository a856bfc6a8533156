package models

// User defines the user model based on the 'users' table. Users are
// created at bootstrap (seed admin); there is no in-app registration.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsAdmin      bool   `json:"isAdmin" db:"is_admin"`
}
