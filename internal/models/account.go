// Package models defines the core data types of the companion layer.
package models

// Account is a registered user identity. Email is the identity key,
// case-sensitive and unique across all accounts. ID is assigned at creation
// and immutable.
type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
