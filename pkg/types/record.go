package types

import (
	"errors"
	"strings"
)

// TableUsers is the only table a RecordStore manages.
const TableUsers = "users"

// Record is a single user row. ID is assigned by the store on insert and
// never reused after deletion.
type Record struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Field validation errors raised at the presentation boundary.
var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
)

// NewRecordInput trims name and email and checks that both are non-empty.
// The name check runs first, so when both are empty ErrNameRequired wins.
func NewRecordInput(name, email string) (string, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return "", "", ErrNameRequired
	}
	if email == "" {
		return "", "", ErrEmailRequired
	}
	return name, email, nil
}
