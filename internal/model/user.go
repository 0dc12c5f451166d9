// Package model defines the records the service persists and serves.
package model

// User is an identity record. The password hash is never serialized into
// responses; only the store sees it.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Clone returns a copy of the user so store internals never leak a pointer
// that handlers could mutate in place.
func (u *User) Clone() *User {
	c := *u
	return &c
}
