package model

import "time"

// User is a local account. It is independent of the sync lifecycle and is
// only ever created through signup.
type User struct {
	ID           int32     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FPLEntryID   int32     `json:"fpl_entry_id"`
	Created      time.Time `json:"created_at"`
	Updated      time.Time `json:"updated_at"`
}
