package models

import "time"

// User is an account record. Identity fields (ID, Email) are immutable after
// signup; Email is stored lowercased and is unique case-insensitively.
// PasswordHash is a bcrypt hash computed once at signup.
type User struct {
	ID           string
	UserName     string
	FamilyName   string
	Email        string
	PasswordHash string
	Sex          string
	Color        string
	Age          string
	CreatedAt    time.Time
}
