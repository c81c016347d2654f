package model

import "time"

// Profile groups the editable metadata of a user account.
type Profile struct {
	DisplayName      string
	Phone            string
	Company          string
	DeliveryLocation string
}

// User is an authenticated account. Admin gates staff-only operations in the
// HTTP layer.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Profile      Profile
	Admin        bool
	CreatedAt    time.Time
}
