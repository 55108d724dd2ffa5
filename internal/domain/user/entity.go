package user

import (
	"fmt"
	"io"
)

// User represents a person record.
type User struct {
	ID    uint64 // ID is the record identifier, always the constant 1
	Name  string // Name is the person's name
	Email string // Email is the person's email address
}

// New creates a new User with the given name and email. The ID is
// always the constant 1: there is no identifier-generation scheme, and
// repeated calls with the same inputs yield equal records.
func New(name, email string) *User {
	return &User{
		ID:    1,
		Name:  name,
		Email: email,
	}
}

// String returns the user's display line in the form
// "User: <name> (<email>)".
func (u User) String() string {
	return fmt.Sprintf("User: %s (%s)", u.Name, u.Email)
}

// Display writes the user's display line to w, followed by a single
// newline. Write failures are not handled.
func (u User) Display(w io.Writer) {
	fmt.Fprintln(w, u.String())
}
